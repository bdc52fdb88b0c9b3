package service

import (
	"context"
	"testing"

	"github.com/digiedu/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRegionRepo struct {
	regions []domain.Region
	err     error
}

func (r *stubRegionRepo) Create(_ context.Context, region *domain.Region) error {
	if r.err != nil {
		return r.err
	}
	r.regions = append(r.regions, *region)
	return nil
}

func (r *stubRegionRepo) GetAll(_ context.Context) ([]domain.Region, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.regions, nil
}

func (r *stubRegionRepo) GetOneByID(_ context.Context, id uuid.UUID) (*domain.Region, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.regions {
		if r.regions[i].ID == id {
			clone := r.regions[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func TestRegionService_Create(t *testing.T) {
	repo := &stubRegionRepo{}
	svc := newRegionService(repo)

	err := svc.Create(context.Background(), "North")
	require.NoError(t, err)

	require.Len(t, repo.regions, 1)
	assert.Equal(t, "North", repo.regions[0].Name)
	assert.NotEqual(t, uuid.Nil, repo.regions[0].ID)
}

func TestRegionService_GetOneByID(t *testing.T) {
	repo := &stubRegionRepo{}
	svc := newRegionService(repo)

	require.NoError(t, svc.Create(context.Background(), "North"))
	id := repo.regions[0].ID

	region, err := svc.GetOneByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "North", region.Name)

	missing, err := uuid.NewV7()
	require.NoError(t, err)
	_, err = svc.GetOneByID(context.Background(), missing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegionService_GetAll(t *testing.T) {
	repo := &stubRegionRepo{}
	svc := newRegionService(repo)

	regions, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, regions)

	require.NoError(t, svc.Create(context.Background(), "North"))
	require.NoError(t, svc.Create(context.Background(), "South"))

	regions, err = svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, regions, 2)
}
