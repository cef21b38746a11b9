package match3

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is returned when a select is rejected. The engine state is left
// untouched; callers are free to ignore it.
var ErrInvalidMove = errors.New("match3: invalid move")

var (
	// ErrOutOfBounds rejects selects outside the board.
	ErrOutOfBounds = fmt.Errorf("%w: position out of bounds", ErrInvalidMove)

	// ErrBusy rejects input while a swap or cascade is being resolved.
	ErrBusy = fmt.Errorf("%w: cascade in progress", ErrInvalidMove)
)

// ErrInvalidConfig is returned by New for impossible board settings.
var ErrInvalidConfig = errors.New("match3: invalid config")

// InvariantError reports a programming defect inside the engine, such as a cell
// still empty after a refill. The engine panics with it; it is never retried.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("match3: invariant violated in %s: %s", e.Op, e.Detail)
}

func invariant(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
