package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"plain gmail", "alice@gmail.com", true},
		{"dots and plus", "a.b+tag@gmail.com", true},
		{"digits and specials", "user_99%x-y@gmail.com", true},
		{"empty", "", false},
		{"missing local part", "@gmail.com", false},
		{"other provider", "alice@yahoo.com", false},
		{"subdomain", "alice@mail.gmail.com", false},
		{"uppercase domain", "alice@GMAIL.COM", false},
		{"trailing text", "alice@gmail.com.evil.com", false},
		{"no at sign", "alicegmail.com", false},
		{"space in local part", "al ice@gmail.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"ten digits", "9876543210", true},
		{"all zeros", "0000000000", true},
		{"empty", "", false},
		{"nine digits", "987654321", false},
		{"eleven digits", "98765432101", false},
		{"contains letter", "98765x3210", false},
		{"contains dash", "987-654321", false},
		{"leading plus", "+919876543", false},
		{"whitespace", "98765 3210", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhone(tt.phone))
		})
	}
}

func TestNewValidatedUser(t *testing.T) {
	t.Run("valid identity", func(t *testing.T) {
		user := NewUser("alice@gmail.com", "9876543210")
		validated, err := NewValidatedUser(user)
		require.NoError(t, err)
		assert.Equal(t, user, validated.GetUser())
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("bad email domain", func(t *testing.T) {
		_, err := NewValidatedUser(NewUser("alice@outlook.com", "9876543210"))
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("bad phone", func(t *testing.T) {
		_, err := NewValidatedUser(NewUser("alice@gmail.com", "12345"))
		assert.ErrorIs(t, err, ErrInvalidPhone)
	})
}
