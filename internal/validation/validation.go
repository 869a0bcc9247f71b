package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"tasker/internal/errors"
)

// namePattern allows Latin and Cyrillic letters plus hyphens.
var namePattern = regexp.MustCompile(`^[а-яА-Яa-zA-Z-]+$`)

// passwordSymbols is the set of special characters accepted in passwords.
const passwordSymbols = "!@£$%^&*()_+={}?:~[]"

const minPasswordLength = 8

var validate = validator.New()

// Name checks that value is non-empty and contains only letters and hyphens.
func Name(value string) error {
	if value == "" {
		return errors.ErrEmptyField
	}
	if !namePattern.MatchString(value) {
		return errors.ErrLettersOnly
	}
	return nil
}

// Content checks that value is non-empty.
func Content(value string) error {
	if value == "" {
		return errors.ErrEmptyField
	}
	return nil
}

// Email checks that value is a well-formed email address.
func Email(value string) error {
	if err := validate.Var(value, "required,email"); err != nil {
		return errors.ErrInvalidEmail
	}
	return nil
}

// Password enforces the complexity policy: at least eight characters with a
// lowercase letter, an uppercase letter and a digit, drawn from letters,
// digits and the accepted symbol set.
func Password(value string) error {
	if len(value) < minPasswordLength {
		return errors.ErrWeakPassword
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range value {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
		default:
			return errors.ErrWeakPassword
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		return errors.ErrWeakPassword
	}
	return nil
}
