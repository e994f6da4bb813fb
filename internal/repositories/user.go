package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/abertanha/movie-diary/internal/logger"
	"github.com/abertanha/movie-diary/internal/models"
)

// ErrUniqueViolation is returned when an insert hits a unique constraint,
// e.g. a duplicate email. Uniqueness is enforced by the store, not checked
// up front.
var ErrUniqueViolation = errors.New("unique constraint violation")

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password, "isEmailVerified", "emailVerificationToken"
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("user lookup",
		"query", strings.Join(strings.Fields(query), " "),
		"email", email,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByVerificationToken returns the user holding the given live verification
// token, or nil when no user matches (token unknown or already consumed).
func (r *UserReadRepository) GetByVerificationToken(ctx context.Context, token string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password, "isEmailVerified", "emailVerificationToken"
		FROM users
		WHERE "emailVerificationToken" = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, token)

	logger.Log.Infow("verification token lookup",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored record. A duplicate email
// surfaces as ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, email, password, verificationToken string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (email, password, "emailVerificationToken")
		VALUES ($1, $2, $3)
		RETURNING id, email, password, "isEmailVerified", "emailVerificationToken"
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email, password, verificationToken)

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"email", email,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return nil, ErrUniqueViolation
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// MarkVerified flips the verified flag and clears the token, making the
// token single-use.
func (r *UserWriteRepository) MarkVerified(ctx context.Context, userID uuid.UUID) error {
	const query = `
		UPDATE users
		SET "isEmailVerified" = TRUE, "emailVerificationToken" = ''
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user mark verified",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"rows", rowsAffected,
		"error", err,
	)

	return err
}
