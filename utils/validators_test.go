package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
}

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		fullName string
		fields   []string
	}{
		{"valid", "a@b.com", "pass123", "Alice", nil},
		{"empty email", "", "pass123", "Alice", []string{"email"}},
		{"no at sign", "ab.com", "pass123", "Alice", []string{"email"}},
		{"no dot in domain", "a@bcom", "pass123", "Alice", []string{"email"}},
		{"short password", "a@b.com", "a1", "Alice", []string{"password"}},
		{"letters only", "a@b.com", "abcdef", "Alice", []string{"password"}},
		{"digits only", "a@b.com", "123456", "Alice", []string{"password"}},
		{"empty name", "a@b.com", "pass123", "  ", []string{"full_name"}},
		{"everything wrong", "nope", "x", "", []string{"email", "password", "full_name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateSignup(tt.email, tt.password, tt.fullName)
			if len(tt.fields) == 0 {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.Len(t, verr.Fields, len(tt.fields))
			for _, field := range tt.fields {
				assert.Contains(t, verr.Fields, field)
			}
		})
	}
}

func TestValidateRequired(t *testing.T) {
	assert.Nil(t, ValidateRequired("value", "email"))

	verr := ValidateRequired("  ", "email")
	require.NotNil(t, verr)
	assert.Equal(t, "Email is required.", verr.Fields["email"])
}
