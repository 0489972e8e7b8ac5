package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/channelchat/channelchat-go/internal/model"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when an insert collides with a unique key.
var ErrAlreadyExists = errors.New("already exists")

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// FindByUsername returns a single user by username.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT username, password_hash, email, first_name, last_name, created_at
		FROM users
		WHERE username = $1`

	var u model.User
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&u.Username, &u.PasswordHash, &u.Email, &u.FirstName, &u.LastName, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. Username collisions map to ErrAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (username, password_hash, email, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		u.Username, u.PasswordHash, u.Email, u.FirstName, u.LastName, u.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}
	return err
}

// Count returns the total number of registered users.
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
