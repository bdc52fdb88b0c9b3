package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	password := "secret"
	h, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, h)
	assert.NotEqual(t, password, h)
	assert.True(t, hasher.Check(password, h))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret")
	assert.NoError(t, err)
	second, err := hasher.Hash("secret")
	assert.NoError(t, err)

	// Fresh salt per call, both hashes still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret", first))
	assert.True(t, hasher.Check("secret", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	h, err := hasher.Hash("secret")
	assert.NoError(t, err)

	assert.True(t, hasher.Check("secret", h))
	assert.False(t, hasher.Check("wrong", h))
	assert.False(t, hasher.Check("", h))
	assert.False(t, hasher.Check("secret", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("secret", ""))
}

func TestBcryptHasher_Cost(t *testing.T) {
	hasher := NewBcryptHasher(6)

	h, err := hasher.Hash("secret")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(h))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	hasher := NewBcryptHasher(100)

	h, err := hasher.Hash("secret")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(h))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
