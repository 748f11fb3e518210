package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateUsername checks registration username rules: at least 5 characters
// with at least one uppercase and one lowercase letter
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ValidationError{Field: "username", Message: "username is required"}
	}
	if len(username) < 5 {
		return ValidationError{Field: "username", Message: "username must be at least 5 characters long"}
	}

	hasUpper := false
	hasLower := false
	for _, c := range username {
		if unicode.IsUpper(c) {
			hasUpper = true
		}
		if unicode.IsLower(c) {
			hasLower = true
		}
	}
	if !hasUpper {
		return ValidationError{Field: "username", Message: "username must contain at least one uppercase letter"}
	}
	if !hasLower {
		return ValidationError{Field: "username", Message: "username must contain at least one lowercase letter"}
	}

	return nil
}

// passwordSpecials is the set of special characters a password must draw from
const passwordSpecials = "$%*@"

// ValidatePassword checks password rules: at least 5 characters including one
// letter, one digit, and one of $ % * @
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 5 {
		return ValidationError{Field: "password", Message: "password must be at least 5 characters long"}
	}

	hasLetter := false
	hasDigit := false
	hasSpecial := false
	for _, c := range password {
		switch {
		case unicode.IsLetter(c):
			hasLetter = true
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, c):
			hasSpecial = true
		}
	}
	if !hasLetter {
		return ValidationError{Field: "password", Message: "password must contain at least one letter"}
	}
	if !hasDigit {
		return ValidationError{Field: "password", Message: "password must contain at least one digit"}
	}
	if !hasSpecial {
		return ValidationError{Field: "password", Message: "password must contain at least one of: $ % * @"}
	}

	return nil
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// NormalizeWord uppercases a word or guess and validates that it is exactly
// 5 ASCII letters. Returns the normalized text
func NormalizeWord(text string) (string, error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if len(text) != 5 {
		return "", ValidationError{Field: "word", Message: "must be exactly 5 letters"}
	}
	for i := 0; i < len(text); i++ {
		if text[i] < 'A' || text[i] > 'Z' {
			return "", ValidationError{Field: "word", Message: "must contain only letters"}
		}
	}
	return text, nil
}
