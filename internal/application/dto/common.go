package dto

// ErrorResponse cuerpo de error HTTP.
// Details se completa solo con errores de validación por campo.
type ErrorResponse struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Details []FieldErrorResponse `json:"details,omitempty"`
}

// FieldErrorResponse error de validación de un campo del borrador.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
