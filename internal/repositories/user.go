package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/course-platform/internal/models"
)

const userColumns = `id, full_name, email, phone, password_hash, is_verified, created_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmailOrPhone returns any user holding the email or the phone, or nil.
func (r *UserReadRepository) GetByEmailOrPhone(ctx context.Context, email, phone string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR phone = $2 LIMIT 1`
	return r.getOne(ctx, query, email, phone)
}

// GetByEmail returns the user with the given email, or nil.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

// GetByID returns the user with the given id, or nil.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, query, args...)

	// password_hash stays out of the log
	var found any
	if err == nil {
		found = user.ID
	}
	logQuery(query, args, found, err)

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

// Save inserts an unverified user and returns its id and email.
func (r *UserWriteRepository) Save(ctx context.Context, fullName, email, phone, passwordHash string) (*models.RegisteredUser, error) {
	const query = `
		INSERT INTO users (full_name, email, phone, password_hash, is_verified)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id, email
	`

	var user models.RegisteredUser
	err := r.db.GetContext(ctx, &user, query, fullName, email, phone, passwordHash)

	logQuery(query, []any{fullName, email, phone, "[REDACTED]"}, user, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}
