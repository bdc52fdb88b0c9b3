package repository

import (
	"context"

	"github.com/digiedu/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Users   Users
	Regions Regions
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Users:   newUserRepository(db),
		Regions: newRegionRepository(db),
	}
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetAll(ctx context.Context) ([]domain.User, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type Regions interface {
	Create(ctx context.Context, region *domain.Region) error
	GetAll(ctx context.Context) ([]domain.Region, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Region, error)
}
