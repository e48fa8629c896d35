package repositories

import (
	"city-explorer-service/internal/domain"
	"city-explorer-service/internal/platform/obs"
	"city-explorer-service/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// Postgres-backed implementation of the UserRepository port.
type PostgresUserRepository struct{ DB *sql.DB }

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

func (s *PostgresUserRepository) CreateUser(
	ctx context.Context,
	email string,
	passwordHash string,
) (_ *domain.User, err error) {
	defer obs.Time(ctx, "users.CreateUser")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres user repository: DB is nil")
	}

	query := `
	INSERT INTO users (email, password_hash)
	VALUES ($1, $2)
	RETURNING id, created_at;
	`

	u := &domain.User{Email: email, PasswordHash: passwordHash}
	if err := s.DB.QueryRowContext(ctx, query, email, passwordHash).Scan(&u.ID, &u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("create user %q: %w", email, ports.ErrEmailTaken)
		}
		return nil, fmt.Errorf("create user: insert users row: %w", err)
	}

	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
