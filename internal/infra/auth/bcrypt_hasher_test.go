package auth

import (
	"testing"

	"subhub/config"

	"github.com/stretchr/testify/assert"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	hash, err := hasher.HashPassword("s3cret-password")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, hasher.VerifyPassword(hash, "s3cret-password"))
	assert.Error(t, hasher.VerifyPassword(hash, "wrong-password"))
}

func TestBcryptHasher_UniqueSalts(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	first, err := hasher.HashPassword("same-password")
	assert.NoError(t, err)
	second, err := hasher.HashPassword("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
