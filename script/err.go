package script

import (
	"errors"

	"github.com/ezrec/seqio/translate"
)

var f = translate.From

var (
	ErrStopped  = errors.New(f("iteration stopped"))
	ErrClosed   = errors.New(f("list closed"))
	ErrNoResult = errors.New(f("script did not set result"))
)

// ErrNotIterable reports a script result that cannot be produced from.
type ErrNotIterable string

func (err ErrNotIterable) Error() string {
	return f("%v is not iterable", string(err))
}
