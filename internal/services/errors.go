package services

import (
	"errors"

	"github.com/sjperalta/fintera-amortization/internal/statemachine"
	"gorm.io/gorm"
)

// Common service errors
var (
	ErrNotFound       = errors.New("registro no encontrado")
	ErrInvalidState   = statemachine.ErrInvalidTransition
	ErrValidation     = errors.New("datos inválidos")
	ErrScheduleLocked = errors.New("el calendario ya tiene pagos o asientos registrados")
	ErrAlreadyPosted  = errors.New("los asientos de amortización ya fueron generados")
)

// notFound maps gorm's missing-row error to ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
