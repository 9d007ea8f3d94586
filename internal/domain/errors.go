package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrCountryNotFound    = errors.New("país no encontrado")
	ErrCountryUnsupported = errors.New("país no soportado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrDraftNotFound      = errors.New("no hay borrador de alta para esta sesión")
	ErrStepOutOfOrder     = errors.New("paso del asistente fuera de orden")
	ErrStepNotSkippable   = errors.New("el paso no se puede omitir")
	ErrUnknownStep        = errors.New("paso del asistente desconocido")
	ErrFirstStep          = errors.New("ya está en el primer paso")
)

// FieldError error de validación asociado a un campo del borrador.
// Se compara con errors.Is contra ErrInvalidInput.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *FieldError) Unwrap() error { return ErrInvalidInput }

// NewFieldError construye un error de campo.
func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// FieldErrors aplana un error (posiblemente unido con errors.Join) y devuelve los errores de campo.
func FieldErrors(err error) []*FieldError {
	if err == nil {
		return nil
	}
	var out []*FieldError
	var fe *FieldError
	if errors.As(err, &fe) {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				out = append(out, FieldErrors(e)...)
			}
			return out
		}
		return []*FieldError{fe}
	}
	return nil
}
