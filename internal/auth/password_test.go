package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "too short", password: "short1A", wantErr: ErrPasswordTooShort},
		{name: "no uppercase", password: "alllowercase1", wantErr: ErrPasswordNoUpper},
		{name: "no lowercase", password: "ALLUPPER1", wantErr: ErrPasswordNoLower},
		{name: "no digit", password: "NoDigitsHere", wantErr: ErrPasswordNoDigit},
		{name: "valid", password: "Valid1Password", wantErr: nil},
		{name: "empty", password: "", wantErr: ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePasswordFirstFailureOnly(t *testing.T) {
	// Violates every rule; the length check is reported first.
	assert.ErrorIs(t, ValidatePassword("!!!"), ErrPasswordTooShort)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Valid1Password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "Valid1Password")

	assert.True(t, CheckPassword(hash, "Valid1Password"))
	assert.False(t, CheckPassword(hash, "Wrong1Password"))
}
