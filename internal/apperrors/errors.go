package apperrors

import "errors"

// Errores sentinela compartidos entre servicios y handlers. Se comparan con
// errors.Is; las capas de storage los envuelven con %w para agregar contexto.
var (
	// ErrNotReady indica que el catálogo todavía no terminó de poblarse.
	ErrNotReady = errors.New("catálogo no está listo")

	// ErrNotFound indica que la entidad referida no existe.
	ErrNotFound = errors.New("no encontrado")

	// ErrInvalidInput indica parámetros fuera de rango o incompletos.
	ErrInvalidInput = errors.New("input inválido")

	// ErrOutOfOrder indica una operación de sesión fuera de secuencia.
	ErrOutOfOrder = errors.New("operación fuera de orden")
)
