package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnavailable   = errors.New("servicio no disponible")
	ErrStore         = errors.New("error de almacenamiento")
	ErrSubmitPending = errors.New("hay un envío en curso")
)
