package property

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"homeRental/internal/models"
	"homeRental/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("property not found")
	ErrOwnerNotFound = errors.New("owner not found")
	ErrEmptyTitle    = errors.New("title is required")
	ErrNegativePrice = errors.New("price per night must not be negative")
)

type Storage interface {
	SaveProperty(ctx context.Context, p models.Property) error
	PropertyByID(ctx context.Context, id string) (models.Property, error)
	Properties(ctx context.Context) ([]models.Property, error)
}

type Service struct {
	log     *slog.Logger
	storage Storage
	now     func() time.Time
}

func New(log *slog.Logger, storage Storage) *Service {
	return &Service{
		log:     log,
		storage: storage,
		now:     time.Now,
	}
}

type CreateInput struct {
	Title         string
	Description   string
	Location      string
	PricePerNight int64
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (models.Property, error) {
	const op = "services.property.Create"

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Property{}, fmt.Errorf("%s: %w", op, ErrEmptyTitle)
	}
	if in.PricePerNight < 0 {
		return models.Property{}, fmt.Errorf("%s: %w", op, ErrNegativePrice)
	}

	p := models.Property{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		Title:         title,
		Description:   strings.TrimSpace(in.Description),
		Location:      strings.TrimSpace(in.Location),
		PricePerNight: in.PricePerNight,
		CreatedAt:     s.now(),
	}

	if err := s.storage.SaveProperty(ctx, p); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.Property{}, fmt.Errorf("%s: %w", op, ErrOwnerNotFound)
		}
		return models.Property{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("property created",
		slog.String("op", op),
		slog.String("property_id", p.ID),
		slog.String("owner_id", ownerID),
	)

	return p, nil
}

func (s *Service) List(ctx context.Context) ([]models.Property, error) {
	const op = "services.property.List"

	properties, err := s.storage.Properties(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return properties, nil
}

func (s *Service) Get(ctx context.Context, id string) (models.Property, error) {
	const op = "services.property.Get"

	p, err := s.storage.PropertyByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrPropertyNotFound) {
			return models.Property{}, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return models.Property{}, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}
