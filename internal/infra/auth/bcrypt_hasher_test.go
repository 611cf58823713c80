package auth

import (
	"testing"

	"asana/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "tree-pose-2024"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Correct password verifies, wrong ones do not.
	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-password", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "not-a-bcrypt-digest"))
}

func TestBcryptHasher_SaltedDigestsDiffer(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same-plaintext")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-plaintext")
	assert.NoError(t, err)

	// A fresh random salt per call means equal inputs never collide.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-plaintext", first))
	assert.True(t, hasher.Check("same-plaintext", second))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("any-password")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	// No auth section configured: the hasher falls back to cost 12.
	hasher := NewBcryptHasher(&config.Config{})

	bh, ok := hasher.(*bcryptHasher)
	assert.True(t, ok)
	assert.Equal(t, 12, bh.cost)
}
