package stream

import (
	"errors"
	"io"

	"github.com/ezrec/seqio/producer"
	"github.com/ezrec/seqio/translate"
)

var f = translate.From

var (
	// ErrNoSlot is returned when committing without a reservation.
	ErrNoSlot = errors.New(f("no slot reserved"))
)

// FaultError is an internal state change caused by the underlying
// transport.
type FaultError struct {
	Op  string
	Err error
}

func (err *FaultError) Error() string {
	return f("%v: %v", err.Op, err.Err)
}

func (err *FaultError) Unwrap() error {
	return err.Err
}

// signal converts a transport error into the producer's internal state
// change: end of input is exhaustion, anything else a fault.
func signal(op string, err error) error {
	if errors.Is(err, io.EOF) {
		return producer.ErrExhausted
	}

	return &FaultError{Op: op, Err: err}
}

// closeIfCloser closes v when it is an io.Closer.
func closeIfCloser(v any) (err error) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}

	if cerr := c.Close(); cerr != nil {
		err = &FaultError{Op: "close", Err: cerr}
	}
	return
}
