package apperror

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is the only kind of rejection a game reports. Every
// cause below wraps it, so callers can treat all of them as a no-op.
var ErrInvalidOperation = errors.New("invalid operation")

var (
	ErrGameFinished     = fmt.Errorf("%w: game is already finished", ErrInvalidOperation)
	ErrCellOccupied     = fmt.Errorf("%w: cell is already occupied", ErrInvalidOperation)
	ErrInvalidCell      = fmt.Errorf("%w: invalid cell index", ErrInvalidOperation)
	ErrInvalidMoveIndex = fmt.Errorf("%w: invalid move index", ErrInvalidOperation)
)
