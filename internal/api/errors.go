package api

import (
	"errors"
	"fmt"
)

// ErrCode is a typed error code enum for consistent error identification
// across the client, service and store layers.
type ErrCode string

const (
	// ─── Transport ─────────────────────────────────────────────────────
	ErrNetwork ErrCode = "NETWORK_ERROR"

	// ─── HTTP ──────────────────────────────────────────────────────────
	ErrSessionExpired ErrCode = "SESSION_EXPIRED"
	ErrForbidden      ErrCode = "FORBIDDEN"
	ErrNotFound       ErrCode = "NOT_FOUND"
	ErrServer         ErrCode = "SERVER_ERROR"
	ErrHTTP           ErrCode = "HTTP_ERROR"

	// ─── Client-side checks ────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"

	// ─── Business rules ────────────────────────────────────────────────
	ErrDuplicateEnrollment ErrCode = "DUPLICATE_ENROLLMENT"
	ErrRoleReserved        ErrCode = "ROLE_RESERVED"
	ErrRoleInUse           ErrCode = "ROLE_IN_USE"
)

// GetMessage returns a human-readable message for a given error code.
// Messages are in Spanish, the language of the backend and its operators.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrNetwork:
		return "Error de red. Sin respuesta del servidor."
	case ErrSessionExpired:
		return "Su sesión ha expirado. Inicie sesión nuevamente."
	case ErrForbidden:
		return "Acceso denegado. Permisos insuficientes."
	case ErrNotFound:
		return "Recurso no encontrado."
	case ErrServer:
		return "Error interno del servidor."
	case ErrHTTP:
		return "La solicitud fue rechazada por el servidor."
	case ErrValidation:
		return "Validación fallida. Revise los campos ingresados."
	case ErrDuplicateEnrollment:
		return "El estudiante ya está inscrito en este curso."
	case ErrRoleReserved:
		return "Los roles del sistema no pueden ser eliminados."
	case ErrRoleInUse:
		return "El rol no puede ser eliminado porque tiene usuarios asignados."
	default:
		return "Ocurrió un error inesperado."
	}
}

// Error is the normalized shape every backend-originating failure is
// converted into before it reaches a store or the terminal UI.
type Error struct {
	Code    ErrCode
	Message string
	// Status is the HTTP status code, zero when no response was received.
	Status int
	// Fields maps field name → message for validation failures.
	Fields map[string]string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError builds a normalized error with the code's default message.
func NewError(code ErrCode) *Error {
	return &Error{Code: code, Message: GetMessage(code)}
}

// NewValidationError builds a client-side validation error carrying
// per-field messages. It is never sent to the backend.
func NewValidationError(fields map[string]string) *Error {
	return &Error{Code: ErrValidation, Message: GetMessage(ErrValidation), Fields: fields}
}

// AsError extracts the normalized *Error from err, or wraps err into one
// so callers always observe the common shape.
func AsError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &Error{Code: ErrNetwork, Message: err.Error()}
}

// IsBusinessRule reports whether err is one of the client-side business
// rule rejections (duplicate enrollment, role deletion guards).
func IsBusinessRule(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case ErrDuplicateEnrollment, ErrRoleReserved, ErrRoleInUse:
		return true
	}
	return false
}

// IsCode reports whether err is a normalized error with the given code.
func IsCode(err error, code ErrCode) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}
