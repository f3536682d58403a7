package validator

import (
	"errors"
	"strings"
)

// Chilean phone numbers normalize to the +56 international form:
//
//	912345678   -> +56912345678  (mobile, 9 digits starting with 9)
//	22345678    -> +5622345678   (landline, 8 digits)
//	56912345678 -> +56912345678  (already country-prefixed)
//
// Anything else is rejected.
var (
	ErrPhoneRequired = errors.New("el teléfono es obligatorio")
	ErrPhoneInvalid  = errors.New("formato de teléfono inválido (móvil: 9 dígitos, fijo: 8 dígitos)")
)

func NormalizePhone(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	if d == "" {
		return "", ErrPhoneRequired
	}

	switch len(d) {
	case 9:
		if !strings.HasPrefix(d, "9") {
			return "", ErrPhoneInvalid
		}
		return "+56" + d, nil
	case 11:
		if !strings.HasPrefix(d, "569") {
			return "", ErrPhoneInvalid
		}
		return "+" + d, nil
	case 8:
		return "+56" + d, nil
	default:
		return "", ErrPhoneInvalid
	}
}
