package service

import (
	"context"
	"testing"

	"github.com/digiedu/backend/internal/domain"
	"github.com/digiedu/backend/pkg/hash"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
	err   error                   // forced failure for every call
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.err != nil {
		return r.err
	}
	if _, exists := r.users[user.Email]; exists {
		return domain.ErrDuplicateEntry
	}
	clone := *user
	r.users[user.Email] = &clone
	return nil
}

func (r *stubUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) GetOneByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if u, ok := r.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func newTestUserService(repo *stubUserRepo) *userService {
	return newUserService(repo, hash.NewBcryptHasher(bcrypt.MinCost))
}

func testCreateInput() CreateUserInput {
	return CreateUserInput{
		Name:        "A",
		Surname:     "B",
		Email:       "a@b.com",
		Position:    "eng",
		Password:    "secret",
		AccessLevel: "admin",
	}
}

func TestUserService_Create(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	err := svc.Create(context.Background(), testCreateInput())
	require.NoError(t, err)

	stored, ok := repo.users["a@b.com"]
	require.True(t, ok)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.Equal(t, "A", stored.Name)
	assert.Equal(t, "B", stored.Surname)
	assert.Equal(t, "eng", stored.Position)
	assert.Equal(t, "admin", stored.AccessLevel)

	// Password is stored hashed, never as plaintext.
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	require.NoError(t, svc.Create(context.Background(), testCreateInput()))

	err := svc.Create(context.Background(), testCreateInput())
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
	assert.Len(t, repo.users, 1)
}

func TestUserService_Create_EmptyFieldsAccepted(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	// Presence is not enforced here; the store decides.
	err := svc.Create(context.Background(), CreateUserInput{Email: "x@y.com"})
	require.NoError(t, err)

	stored := repo.users["x@y.com"]
	require.NotNil(t, stored)
	assert.Empty(t, stored.Name)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestUserService_Login(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	require.NoError(t, svc.Create(context.Background(), testCreateInput()))

	assert.NoError(t, svc.Login(context.Background(), "a@b.com", "secret"))
	assert.ErrorIs(t, svc.Login(context.Background(), "a@b.com", "wrong"), ErrInvalidPassword)
	assert.ErrorIs(t, svc.Login(context.Background(), "nobody@b.com", "secret"), domain.ErrNotFound)
}

func TestUserService_GetOneByID(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	require.NoError(t, svc.Create(context.Background(), testCreateInput()))
	id := repo.users["a@b.com"].ID

	user, err := svc.GetOneByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)

	missing, err := uuid.NewV7()
	require.NoError(t, err)
	_, err = svc.GetOneByID(context.Background(), missing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserService_GetAll(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	users, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)

	require.NoError(t, svc.Create(context.Background(), testCreateInput()))

	users, err = svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
