package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := &BcryptHasher{Cost: bcrypt.MinCost}

	tests := []struct {
		name        string
		credential  string
		expectError error
	}{
		{
			name:       "Valid credential",
			credential: "postback-secret",
		},
		{
			name:        "Empty credential",
			credential:  "",
			expectError: ErrEmptyCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.credential)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Empty(t, hash)
				return
			}
			assert.NoError(t, err)
			assert.NotEqual(t, tt.credential, hash)
		})
	}
}

func TestBcryptHasher_Compare(t *testing.T) {
	hasher := &BcryptHasher{Cost: bcrypt.MinCost}
	hash, err := hasher.Hash("postback-secret")
	assert.NoError(t, err)

	tests := []struct {
		name        string
		credential  string
		expectMatch bool
	}{
		{name: "Matching credential", credential: "postback-secret", expectMatch: true},
		{name: "Wrong credential", credential: "other", expectMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectMatch, hasher.Compare(hash, tt.credential))
		})
	}
}
