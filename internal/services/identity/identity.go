package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"homeRental/internal/lib/logger/sl"
	"homeRental/internal/mailer"
	"homeRental/internal/models"
	"homeRental/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const ResetTokenTTL = 15 * time.Minute

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already used")
	ErrInvalidToken       = errors.New("invalid or expired reset token")
	ErrInvalidRole        = errors.New("invalid role")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
)

type Storage interface {
	SaveUser(ctx context.Context, user models.User) error
	UserByEmail(ctx context.Context, email string) (models.User, error)
	SetResetToken(ctx context.Context, userID, token string, expire time.Time) error
	UserByResetToken(ctx context.Context, token string, now time.Time) (models.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

type Sessions interface {
	Create(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

type Mailer interface {
	SendTemplate(ctx context.Context, to, subject, name string, data any) error
}

type Service struct {
	log      *slog.Logger
	storage  Storage
	sessions Sessions
	mailer   Mailer
	baseURL  string
	cost     int
	now      func() time.Time
}

func New(log *slog.Logger, storage Storage, sessions Sessions, mailer Mailer, baseURL string) *Service {
	return &Service{
		log:      log,
		storage:  storage,
		sessions: sessions,
		mailer:   mailer,
		baseURL:  strings.TrimRight(baseURL, "/"),
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Signup(ctx context.Context, name, email, password string, role models.Role) (models.User, error) {
	const op = "services.identity.Signup"

	log := s.log.With(slog.String("op", op))

	if role == "" {
		role = models.RoleRenter
	}
	if role != models.RoleRenter && role != models.RoleOwner {
		return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidRole)
	}

	email = NormalizeEmail(email)

	hash, err := s.hashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}

	if err = s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user signed up", slog.String("user_id", user.ID))

	data := mailer.WelcomeData{
		Name:          user.Name,
		PropertiesURL: s.baseURL + "/properties",
		Year:          s.now().Year(),
	}
	if err = s.mailer.SendTemplate(ctx, user.Email, "Welcome to Home Rental!", mailer.TemplateWelcome, data); err != nil {
		log.Error("failed to send welcome email", sl.Err(err))
	}

	return user, nil
}

// Login checks the credentials and opens a session. Unknown emails and wrong
// passwords fail the same way.
func (s *Service) Login(ctx context.Context, email, password string) (string, models.User, error) {
	const op = "services.identity.Login"

	user, err := s.storage.UserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return "", models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	sessionID, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return sessionID, user, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	const op = "services.identity.Logout"

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// IssueResetToken stores a fresh reset token for the account and mails the link.
// It reports success whether or not an account matched, so callers cannot
// learn which emails are registered.
func (s *Service) IssueResetToken(ctx context.Context, email string) error {
	const op = "services.identity.IssueResetToken"

	log := s.log.With(slog.String("op", op))

	user, err := s.storage.UserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Info("password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	token, err := newResetToken()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = s.storage.SetResetToken(ctx, user.ID, token, s.now().Add(ResetTokenTTL)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	data := mailer.ResetPasswordData{
		Name:      user.Name,
		ResetLink: s.baseURL + "/auth/reset-password/" + token,
	}
	if err = s.mailer.SendTemplate(ctx, user.Email, "Reset Your Password - Home Rental", mailer.TemplateResetPassword, data); err != nil {
		log.Error("failed to send reset email", slog.String("user_id", user.ID), sl.Err(err))
	}

	return nil
}

func (s *Service) CheckResetToken(ctx context.Context, token string) error {
	const op = "services.identity.CheckResetToken"

	if _, err := s.userByToken(ctx, token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) RedeemToken(ctx context.Context, token, newPassword string) error {
	const op = "services.identity.RedeemToken"

	log := s.log.With(slog.String("op", op))

	user, err := s.userByToken(ctx, token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	hash, err := s.hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = s.storage.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("password reset", slog.String("user_id", user.ID))

	data := mailer.PasswordChangedData{Name: user.Name}
	if err = s.mailer.SendTemplate(ctx, user.Email, "Password Changed Successfully", mailer.TemplatePasswordChanged, data); err != nil {
		log.Error("failed to send password changed email", sl.Err(err))
	}

	return nil
}

func (s *Service) PurgeExpiredResetTokens(ctx context.Context) (int64, error) {
	const op = "services.identity.PurgeExpiredResetTokens"

	n, err := s.storage.ClearExpiredResetTokens(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// hashPassword rejects passwords bcrypt cannot hash, which is anything over
// 72 bytes, with ErrPasswordTooLong.
func (s *Service) hashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return hash, nil
}

func (s *Service) userByToken(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrInvalidToken
	}

	user, err := s.storage.UserByResetToken(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, storage.ErrResetTokenNotFound) {
			return models.User{}, ErrInvalidToken
		}
		return models.User{}, err
	}

	return user, nil
}

func newResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	return hex.EncodeToString(b), nil
}
