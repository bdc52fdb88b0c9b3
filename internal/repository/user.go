package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/digiedu/backend/internal/db"
	"github.com/digiedu/backend/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

func newUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
	INSERT INTO user
	(id, name, surname, email, position, access_level, password_hash)
	VALUES(uuid_to_bin(?), ?, ?, ?, ?, ?, ?);
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx failed: %w", err)
	}

	result, err := tx.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Surname,
		user.Email,
		user.Position,
		user.AccessLevel,
		user.PasswordHash,
	)
	if err != nil {
		_ = tx.Rollback()
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rowsAffected == 0 {
		_ = tx.Rollback()
		return domain.ErrNoRowsAffected
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx failed: %w", err)
	}

	return nil
}

// GetAll never projects password_hash.
func (r *userRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	const query = `
	SELECT id, name, surname, email, position, access_level, created_at, updated_at FROM user ORDER BY created_at ASC, id ASC;
	`
	var users []domain.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("select all users failed: %w", err)
	}
	return users, nil
}

func (r *userRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
	SELECT id, name, surname, email, position, access_level, created_at, updated_at FROM user WHERE id = uuid_to_bin(?);
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by id failed: %w", err)
	}
	return &user, nil
}

// GetByEmail is the only read that returns password_hash; it backs the
// login flow exclusively.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
	SELECT id, name, surname, email, position, access_level, password_hash, created_at, updated_at FROM user WHERE email = ?;
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by email failed: %w", err)
	}
	return &user, nil
}
