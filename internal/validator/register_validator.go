package validator

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrInvalidEmail    = errors.New("correo inválido")
	ErrPasswordTooWeak = errors.New("la contraseña debe tener al menos 8 caracteres, con letras y números")
	ErrPasswordCommon  = errors.New("esta contraseña es demasiado común")
	ErrNameRequired    = errors.New("el nombre es obligatorio")
)

// ValidatePassword applies the registration policy: minimum 8 characters,
// at least one letter and one digit, and not in the common-password list.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooWeak
	}

	hasLetter := false
	hasDigit := false
	for _, r := range password {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return ErrPasswordTooWeak
	}

	common := map[string]struct{}{
		"12345678":  {},
		"123456789": {},
		"password":  {},
		"qwerty":    {},
		"abc12345":  {},
	}
	if _, ok := common[strings.ToLower(password)]; ok {
		return ErrPasswordCommon
	}

	return nil
}

func ValidateRegister(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if !EmailLike(email) {
		return ErrInvalidEmail
	}
	return ValidatePassword(password)
}
