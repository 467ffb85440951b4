package utils

import (
	"regexp"
	"strings"

	"github.com/saranyasailakshmi/DIV-Tech/apperrors"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	hasLetter    = regexp.MustCompile(`[A-Za-z]`)
	hasDigit     = regexp.MustCompile(`\d`)
)

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateSignup checks email format, password strength and full name,
// collecting every failing field.
func ValidateSignup(email, password, fullName string) *apperrors.ValidationError {
	verr := &apperrors.ValidationError{}

	switch {
	case strings.TrimSpace(email) == "":
		verr.Add("email", "Email is required.")
	case !emailPattern.MatchString(strings.TrimSpace(email)):
		verr.Add("email", "Enter a valid email address.")
	}

	switch {
	case password == "":
		verr.Add("password", "Password is required.")
	case len(password) < 6:
		verr.Add("password", "Password must be at least 6 characters long.")
	case !hasLetter.MatchString(password) || !hasDigit.MatchString(password):
		verr.Add("password", "Password must contain both letters and numbers.")
	}

	if strings.TrimSpace(fullName) == "" {
		verr.Add("full_name", "Full_name is required.")
	}

	if verr.Empty() {
		return nil
	}
	return verr
}

// ValidateRequired reports a missing field in the validators' message style.
func ValidateRequired(value, field string) *apperrors.ValidationError {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidation(field, capitalize(field)+" is required.")
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
