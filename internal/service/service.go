package service

import (
	"context"

	"github.com/digiedu/backend/internal/config"
	"github.com/digiedu/backend/internal/domain"
	"github.com/digiedu/backend/internal/repository"
	"github.com/digiedu/backend/pkg/hash"

	"github.com/google/uuid"
)

type Services struct {
	Users   Users
	Regions Regions
}

type Deps struct {
	Config *config.Config
	Hasher hash.PasswordHasher
	Repos  *repository.Repositories
}

func NewServices(deps Deps) *Services {
	return &Services{
		Users:   newUserService(deps.Repos.Users, deps.Hasher),
		Regions: newRegionService(deps.Repos.Regions),
	}
}

// CreateUserInput carries the client-supplied account fields. Absent body
// fields arrive as empty strings; the store is the only place uniqueness
// and presence are enforced.
type CreateUserInput struct {
	Name        string
	Surname     string
	Email       string
	Position    string
	Password    string
	AccessLevel string
}

type Users interface {
	Create(ctx context.Context, input CreateUserInput) error
	GetAll(ctx context.Context) ([]domain.User, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Login(ctx context.Context, email string, password string) error
}

type Regions interface {
	Create(ctx context.Context, name string) error
	GetAll(ctx context.Context) ([]domain.Region, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Region, error)
}
