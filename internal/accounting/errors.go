package accounting

import "errors"

// Calculation errors. Callers match them with errors.Is; the wrapped message
// carries the offending value.
var (
	ErrInvalidDateFormat     = errors.New("formato de fecha inválido, se espera yyyy-MM o yyyy-MM-dd")
	ErrInvalidRange          = errors.New("el período final es anterior al período inicial")
	ErrInvalidAmount         = errors.New("el monto total debe ser al menos 0.01")
	ErrPreconditionViolation = errors.New("falta un resultado previo requerido")
)
