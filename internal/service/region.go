package service

import (
	"context"

	"github.com/digiedu/backend/internal/domain"
	"github.com/digiedu/backend/internal/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type regionService struct {
	regionRepository repository.Regions
}

func newRegionService(regionRepository repository.Regions) *regionService {
	return &regionService{
		regionRepository: regionRepository,
	}
}

func (s *regionService) Create(ctx context.Context, name string) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "generate region id failed")
	}

	region := &domain.Region{
		ID:   id,
		Name: name,
	}

	if err := s.regionRepository.Create(ctx, region); err != nil {
		return errors.Wrap(err, "create region failed")
	}

	return nil
}

func (s *regionService) GetAll(ctx context.Context) ([]domain.Region, error) {
	return s.regionRepository.GetAll(ctx)
}

func (s *regionService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Region, error) {
	return s.regionRepository.GetOneByID(ctx, id)
}
