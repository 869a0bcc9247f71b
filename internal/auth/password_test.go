package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Secret1!")
	assert.NoError(t, err)
	assert.NotEqual(t, "Secret1!", hash)

	// salted: same input, different hash
	again, err := HashPassword("Secret1!")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, again)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secret1!")
	assert.NoError(t, err)

	assert.True(t, CheckPassword("Secret1!", hash))
	assert.False(t, CheckPassword("secret1!", hash))
	assert.False(t, CheckPassword("", hash))
	assert.False(t, CheckPassword("Secret1!", "not-a-bcrypt-hash"))
}
