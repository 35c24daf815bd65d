package mem

import (
	"errors"

	"github.com/ezrec/seqio/translate"
)

var f = translate.From

var (
	// Capacity errors
	ErrEmpty = errors.New(f("buffer empty"))
	ErrFull  = errors.New(f("buffer full"))

	// Cursor errors
	ErrBoundary = errors.New(f("cursor at boundary"))

	// Access errors
	ErrReadOnly  = errors.New(f("not writable"))
	ErrWriteOnly = errors.New(f("not readable"))

	// Lifecycle errors
	ErrStopped      = errors.New(f("stopped"))
	ErrReadStopped  = errors.New(f("read half stopped"))
	ErrWriteStopped = errors.New(f("write half stopped"))

	// Reserve/commit errors
	ErrNotReserved = errors.New(f("no slot reserved"))
)
