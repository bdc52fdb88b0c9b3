package service

import (
	"context"

	"github.com/digiedu/backend/internal/domain"
	"github.com/digiedu/backend/internal/repository"
	"github.com/digiedu/backend/pkg/hash"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type userService struct {
	userRepository repository.Users
	hasher         hash.PasswordHasher
}

func newUserService(userRepository repository.Users, hasher hash.PasswordHasher) *userService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
	}
}

func (s *userService) Create(ctx context.Context, input CreateUserInput) error {
	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "hash password failed")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "generate user id failed")
	}

	user := &domain.User{
		ID:           id,
		Name:         input.Name,
		Surname:      input.Surname,
		Email:        input.Email,
		Position:     input.Position,
		AccessLevel:  input.AccessLevel,
		PasswordHash: passwordHash,
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return err
		}
		return errors.Wrap(err, "create user failed")
	}

	return nil
}

func (s *userService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.GetAll(ctx)
}

func (s *userService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepository.GetOneByID(ctx, id)
}

// Login checks the credentials and nothing more; no session is created.
func (s *userService) Login(ctx context.Context, email string, password string) error {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return errors.Wrap(err, "get user by email failed")
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return ErrInvalidPassword
	}

	return nil
}
