package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tasker/internal/errors"
)

func TestName(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		expectedError error
	}{
		{"latin letters", "Ann", nil},
		{"cyrillic letters", "Анна", nil},
		{"hyphenated", "Anne-Marie", nil},
		{"empty", "", errors.ErrEmptyField},
		{"contains space", "Ann Lee", errors.ErrLettersOnly},
		{"contains digit", "Ann1", errors.ErrLettersOnly},
		{"contains symbol", "Ann!", errors.ErrLettersOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedError, Name(tt.value))
		})
	}
}

func TestContent(t *testing.T) {
	assert.NoError(t, Content("buy milk, eggs and bread"))
	assert.Equal(t, errors.ErrEmptyField, Content(""))
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		expectedError error
	}{
		{"valid", "ann@example.com", nil},
		{"subdomain", "ann@mail.example.com", nil},
		{"empty", "", errors.ErrInvalidEmail},
		{"no at sign", "ann.example.com", errors.ErrInvalidEmail},
		{"no domain", "ann@", errors.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedError, Email(tt.value))
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		expectedError error
	}{
		{"meets policy", "Secret1!", nil},
		{"letters and digits only", "Passw0rdd", nil},
		{"too short", "Sh0rt!", errors.ErrWeakPassword},
		{"no uppercase", "secret1!", errors.ErrWeakPassword},
		{"no lowercase", "SECRET1!", errors.ErrWeakPassword},
		{"no digit", "Secretly!", errors.ErrWeakPassword},
		{"disallowed character", "Secret1! ", errors.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedError, Password(tt.value))
		})
	}
}
