package validator

import (
	"fmt"
	"net/mail"
	"strings"

	"tienda/internal/domain/model"
)

// CheckoutInput carries the contact and shipping fields posted to /api/checkout.
type CheckoutInput struct {
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	Address          string
	Region           string
	Comuna           string
	PostalCode       string
	AddressReference string
	Notes            string
	PaymentMethod    string
}

// FieldError reports which field failed so handlers can return a structured
// 400 body.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateCheckout trims and validates all fields, normalizing the phone.
// It returns the cleaned input or the first field error found.
func ValidateCheckout(in CheckoutInput) (CheckoutInput, error) {
	out := in
	out.CustomerName = strings.TrimSpace(in.CustomerName)
	out.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	out.Address = strings.TrimSpace(in.Address)
	out.Region = strings.TrimSpace(in.Region)
	out.Comuna = strings.TrimSpace(in.Comuna)
	out.PostalCode = strings.TrimSpace(in.PostalCode)
	out.AddressReference = strings.TrimSpace(in.AddressReference)
	out.Notes = strings.TrimSpace(in.Notes)

	if out.CustomerName == "" {
		return out, &FieldError{Field: "nombre_cliente", Message: "es obligatorio"}
	}
	if len(out.CustomerName) > 255 {
		return out, &FieldError{Field: "nombre_cliente", Message: "demasiado largo"}
	}
	if !EmailLike(out.CustomerEmail) {
		return out, &FieldError{Field: "correo_cliente", Message: "correo inválido"}
	}

	phone, err := NormalizePhone(in.CustomerPhone)
	if err != nil {
		return out, &FieldError{Field: "telefono_cliente", Message: err.Error()}
	}
	out.CustomerPhone = phone

	if out.Address == "" {
		return out, &FieldError{Field: "direccion", Message: "es obligatoria"}
	}
	if out.Region == "" {
		return out, &FieldError{Field: "region", Message: "es obligatoria"}
	}
	if out.Comuna == "" {
		return out, &FieldError{Field: "comuna", Message: "es obligatoria"}
	}

	if strings.TrimSpace(in.PaymentMethod) == "" {
		out.PaymentMethod = string(model.PaymentTransfer)
	}
	if !model.ValidPaymentMethod(model.PaymentMethod(out.PaymentMethod)) {
		return out, &FieldError{Field: "metodo_pago", Message: "método de pago inválido"}
	}

	return out, nil
}

func EmailLike(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}
