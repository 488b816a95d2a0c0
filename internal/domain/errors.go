package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidID        = errors.New("identificador inválido")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidReference = errors.New("referencia a recurso inexistente")
	ErrNoFieldsToUpdate = errors.New("no hay campos para actualizar")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrConflict         = errors.New("conflicto con el estado actual")
)

// UpstreamError respuesta no exitosa de una API externa; Status se reenvía al cliente.
type UpstreamError struct {
	Status int
	Body   []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream respondió con estado %d", e.Status)
}
