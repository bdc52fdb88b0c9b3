package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/digiedu/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type regionRepository struct {
	db *sqlx.DB
}

func newRegionRepository(db *sqlx.DB) *regionRepository {
	return &regionRepository{
		db: db,
	}
}

func (r *regionRepository) Create(ctx context.Context, region *domain.Region) error {
	const query = `
	INSERT INTO region (id, name) VALUES (uuid_to_bin(?), ?);
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx failed: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, region.ID, region.Name)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("db insert region: %w", err)
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

func (r *regionRepository) GetAll(ctx context.Context) ([]domain.Region, error) {
	const query = `
	SELECT id, name, created_at, updated_at FROM region ORDER BY created_at ASC, id ASC;
	`
	var regions []domain.Region
	if err := r.db.SelectContext(ctx, &regions, query); err != nil {
		return nil, fmt.Errorf("select all regions failed: %w", err)
	}
	return regions, nil
}

func (r *regionRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Region, error) {
	const query = `
	SELECT id, name, created_at, updated_at FROM region WHERE id = uuid_to_bin(?);
	`
	var region domain.Region
	if err := r.db.GetContext(ctx, &region, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from region by id failed: %w", err)
	}
	return &region, nil
}
