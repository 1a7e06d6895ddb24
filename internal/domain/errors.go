package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")

	// ErrUnroutableInput señala una entrada que ningún paso de asistente ni
	// manejador reclama para la sesión actual. Hacia el usuario la respuesta
	// es silencio; hacia los tests queda como resultado observable.
	ErrUnroutableInput = errors.New("entrada sin ruta para la sesión")
)
