package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"homeRental/internal/config"
	"homeRental/internal/models"
	"homeRental/internal/storage"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	const op = "storage.postgres.InitDB"

	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("%s: failed to apply schema: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return pqErr.Code == uniqueViolation && (constraint == "" || pqErr.Constraint == constraint)
}

func (s *Storage) SaveUser(ctx context.Context, user models.User) error {
	const op = "storage.postgres.SaveUser"

	query := `
		INSERT INTO users (id, email, name, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.DB.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.Role,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return fmt.Errorf("%s: failed to save user: %w", op, err)
	}

	return nil
}

const userColumns = `id, email, name, role, password_hash, COALESCE(reset_token, ''), reset_token_expire, created_at`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var (
		user   models.User
		expire sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Role,
		&user.PasswordHash,
		&user.ResetToken,
		&expire,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if expire.Valid {
		user.ResetTokenExpire = &expire.Time
	}

	return user, nil
}

func (s *Storage) UserByID(ctx context.Context, id string) (models.User, error) {
	const op = "storage.postgres.UserByID"

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	return user, nil
}

func (s *Storage) UserByEmail(ctx context.Context, email string) (models.User, error) {
	const op = "storage.postgres.UserByEmail"

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(s.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	return user, nil
}

func (s *Storage) SetResetToken(ctx context.Context, userID, token string, expire time.Time) error {
	const op = "storage.postgres.SetResetToken"

	query := `
		UPDATE users
		SET reset_token = $1, reset_token_expire = $2
		WHERE id = $3`

	res, err := s.DB.ExecContext(ctx, query, token, expire, userID)
	if err != nil {
		return fmt.Errorf("%s: failed to set reset token: %w", op, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	return nil
}

// UserByResetToken returns the user holding token only while the token is still valid at now.
func (s *Storage) UserByResetToken(ctx context.Context, token string, now time.Time) (models.User, error) {
	const op = "storage.postgres.UserByResetToken"

	query := `SELECT ` + userColumns + ` FROM users WHERE reset_token = $1 AND reset_token_expire > $2`

	user, err := scanUser(s.DB.QueryRowContext(ctx, query, token, now))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrResetTokenNotFound)
		}
		return models.User{}, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	return user, nil
}

// UpdatePassword replaces the password hash and clears any pending reset token.
func (s *Storage) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	const op = "storage.postgres.UpdatePassword"

	query := `
		UPDATE users
		SET password_hash = $1, reset_token = NULL, reset_token_expire = NULL
		WHERE id = $2`

	res, err := s.DB.ExecContext(ctx, query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("%s: failed to update password: %w", op, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	return nil
}

func (s *Storage) ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	const op = "storage.postgres.ClearExpiredResetTokens"

	query := `
		UPDATE users
		SET reset_token = NULL, reset_token_expire = NULL
		WHERE reset_token IS NOT NULL AND reset_token_expire <= $1`

	res, err := s.DB.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to clear expired reset tokens: %w", op, err)
	}

	n, _ := res.RowsAffected()

	return n, nil
}

func (s *Storage) SaveProperty(ctx context.Context, p models.Property) error {
	const op = "storage.postgres.SaveProperty"

	query := `
		INSERT INTO properties (id, owner_id, title, description, location, price_per_night, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.DB.ExecContext(ctx, query,
		p.ID,
		p.OwnerID,
		p.Title,
		p.Description,
		p.Location,
		p.PricePerNight,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to save property: %w", op, err)
	}

	return nil
}

const propertyColumns = `p.id, p.owner_id, p.title, p.description, p.location, p.price_per_night, p.created_at`

func scanProperty(row interface{ Scan(...any) error }, p *models.Property) error {
	return row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.Location,
		&p.PricePerNight,
		&p.CreatedAt,
	)
}

func (s *Storage) PropertyByID(ctx context.Context, id string) (models.Property, error) {
	const op = "storage.postgres.PropertyByID"

	query := `SELECT ` + propertyColumns + ` FROM properties p WHERE p.id = $1`

	var p models.Property
	if err := scanProperty(s.DB.QueryRowContext(ctx, query, id), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Property{}, fmt.Errorf("%s: %w", op, storage.ErrPropertyNotFound)
		}
		return models.Property{}, fmt.Errorf("%s: failed to get property: %w", op, err)
	}

	return p, nil
}

func (s *Storage) Properties(ctx context.Context) ([]models.Property, error) {
	const op = "storage.postgres.Properties"

	query := `SELECT ` + propertyColumns + ` FROM properties p ORDER BY p.created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get properties: %w", op, err)
	}
	defer rows.Close()

	properties := make([]models.Property, 0)
	for rows.Next() {
		var p models.Property
		if err = scanProperty(rows, &p); err != nil {
			return nil, fmt.Errorf("%s: failed to scan property: %w", op, err)
		}
		properties = append(properties, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating properties: %w", op, err)
	}

	return properties, nil
}

func (s *Storage) PropertyIDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	const op = "storage.postgres.PropertyIDsByOwner"

	rows, err := s.DB.QueryContext(ctx, `SELECT id FROM properties WHERE owner_id = $1`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get properties: %w", op, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: failed to scan property id: %w", op, err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating properties: %w", op, err)
	}

	return ids, nil
}

func (s *Storage) ActiveBookingExists(ctx context.Context, renterID, propertyID string) (bool, error) {
	const op = "storage.postgres.ActiveBookingExists"

	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE renter_id = $1 AND property_id = $2 AND status = ANY($3)
		)`

	var exists bool
	err := s.DB.QueryRowContext(ctx, query, renterID, propertyID, pq.Array(activeStatuses())).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: failed to check existing booking: %w", op, err)
	}

	return exists, nil
}

// SaveBooking inserts a new booking. The partial unique index on active bookings
// turns a lost race between two creators into ErrActiveBookingExists.
func (s *Storage) SaveBooking(ctx context.Context, b models.Booking) error {
	const op = "storage.postgres.SaveBooking"

	query := `
		INSERT INTO bookings (id, property_id, renter_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.DB.ExecContext(ctx, query,
		b.ID,
		b.PropertyID,
		b.RenterID,
		b.Status,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "bookings_one_active_per_renter") {
			return fmt.Errorf("%s: %w", op, storage.ErrActiveBookingExists)
		}
		return fmt.Errorf("%s: failed to create booking: %w", op, err)
	}

	return nil
}

func (s *Storage) BookingByID(ctx context.Context, id string) (models.Booking, error) {
	const op = "storage.postgres.BookingByID"

	query := `
		SELECT id, property_id, renter_id, status, created_at, updated_at
		FROM bookings
		WHERE id = $1`

	var b models.Booking
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID,
		&b.PropertyID,
		&b.RenterID,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}
		return models.Booking{}, fmt.Errorf("%s: failed to get booking: %w", op, err)
	}

	return b, nil
}

// UpdateBookingStatus moves a booking from one status to another. The update is
// conditional on the current status, so two racing transitions cannot both win.
func (s *Storage) UpdateBookingStatus(
	ctx context.Context,
	id string,
	from, to models.BookingStatus,
	at time.Time,
) error {
	const op = "storage.postgres.UpdateBookingStatus"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var current models.BookingStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM bookings WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}
		return fmt.Errorf("%s: failed to lock booking: %w", op, err)
	}

	if current != from {
		return fmt.Errorf("%s: %w", op, storage.ErrBookingStatusChanged)
	}

	_, err = tx.ExecContext(ctx, `UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`, to, at, id)
	if err != nil {
		return fmt.Errorf("%s: failed to update booking status: %w", op, err)
	}

	return tx.Commit()
}

func (s *Storage) BookingsByRenter(ctx context.Context, renterID string) ([]models.BookingWithProperty, error) {
	const op = "storage.postgres.BookingsByRenter"

	query := `
		SELECT b.id, b.property_id, b.renter_id, b.status, b.created_at, b.updated_at, ` + propertyColumns + `
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		WHERE b.renter_id = $1
		ORDER BY b.created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, renterID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get bookings: %w", op, err)
	}
	defer rows.Close()

	bookings := make([]models.BookingWithProperty, 0)
	for rows.Next() {
		var b models.BookingWithProperty
		err = rows.Scan(
			&b.ID,
			&b.PropertyID,
			&b.RenterID,
			&b.Status,
			&b.CreatedAt,
			&b.UpdatedAt,
			&b.Property.ID,
			&b.Property.OwnerID,
			&b.Property.Title,
			&b.Property.Description,
			&b.Property.Location,
			&b.Property.PricePerNight,
			&b.Property.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan booking: %w", op, err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating bookings: %w", op, err)
	}

	return bookings, nil
}

func (s *Storage) BookingsByProperties(ctx context.Context, propertyIDs []string) ([]models.BookingWithParties, error) {
	const op = "storage.postgres.BookingsByProperties"

	bookings := make([]models.BookingWithParties, 0)
	if len(propertyIDs) == 0 {
		return bookings, nil
	}

	query := `
		SELECT b.id, b.property_id, b.renter_id, b.status, b.created_at, b.updated_at, ` + propertyColumns + `,
			u.id, u.name, u.email
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		JOIN users u ON u.id = b.renter_id
		WHERE b.property_id = ANY($1)
		ORDER BY b.created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, pq.Array(propertyIDs))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get bookings: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var b models.BookingWithParties
		err = rows.Scan(
			&b.ID,
			&b.PropertyID,
			&b.RenterID,
			&b.Status,
			&b.CreatedAt,
			&b.UpdatedAt,
			&b.Property.ID,
			&b.Property.OwnerID,
			&b.Property.Title,
			&b.Property.Description,
			&b.Property.Location,
			&b.Property.PricePerNight,
			&b.Property.CreatedAt,
			&b.Renter.ID,
			&b.Renter.Name,
			&b.Renter.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan booking: %w", op, err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating bookings: %w", op, err)
	}

	return bookings, nil
}

func (s *Storage) SaveNotification(ctx context.Context, n models.Notification) error {
	const op = "storage.postgres.SaveNotification"

	query := `
		INSERT INTO notifications (id, receiver_id, property_id, message, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.DB.ExecContext(ctx, query, n.ID, n.ReceiverID, n.PropertyID, n.Message, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: failed to save notification: %w", op, err)
	}

	return nil
}

func (s *Storage) NotificationsByReceiver(ctx context.Context, receiverID string) ([]models.Notification, error) {
	const op = "storage.postgres.NotificationsByReceiver"

	query := `
		SELECT id, receiver_id, property_id, message, created_at
		FROM notifications
		WHERE receiver_id = $1
		ORDER BY created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, receiverID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get notifications: %w", op, err)
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		var n models.Notification
		if err = rows.Scan(&n.ID, &n.ReceiverID, &n.PropertyID, &n.Message, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: failed to scan notification: %w", op, err)
		}
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating notifications: %w", op, err)
	}

	return notifications, nil
}

func activeStatuses() []string {
	statuses := make([]string, 0, len(models.ActiveStatuses))
	for _, st := range models.ActiveStatuses {
		statuses = append(statuses, string(st))
	}
	return statuses
}
