package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los casos de uso los
// devuelven directamente o envueltos con %w; los handlers HTTP los traducen
// a códigos de respuesta con errors.Is.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrValidation         = errors.New("datos de entrada inválidos")
	ErrInvalidInput       = errors.New("argumento inválido")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente en bodega origen")
	ErrDataIntegrity      = errors.New("inconsistencia referencial en el ledger")
)
