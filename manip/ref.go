package manip

import (
	"github.com/ezrec/seqio/ref"
)

// WriteRefInLong writes the item *item at the cursor. The manipulator may
// keep item after the call.
type WriteRefInLong[T any] interface {
	WriteRefInLong(item *T) (err error)
}

// WriteRefIn writes the referenced item at the cursor without keeping the
// reference past the call. Anything that honours the short form can honour
// the long one.
type WriteRefIn[T any] interface {
	WriteRefInLong[T]
	WriteRefIn(item ref.Ref[T]) (err error)
}

// ReadRefInLong reads the item at the cursor into *dst. The manipulator may
// keep dst after the call.
type ReadRefInLong[T any] interface {
	ReadRefInLong(dst *T) (err error)
}

// ReadRefIn reads the item at the cursor into dst without keeping dst past
// the call.
type ReadRefIn[T any] interface {
	ReadRefInLong[T]
	ReadRefIn(dst ref.Ref[T]) (err error)
}

// WriteRefOut hands out the initialised item at the cursor for the caller
// to overwrite.
type WriteRefOut[T any] interface {
	WriteRefOut() (slot ref.Slot[T], err error)
}

// WriteRefOutLong hands out the item at the cursor as a plain pointer.
type WriteRefOutLong[T any] interface {
	WriteRefOut[T]
	WriteRefOutLong() (item *T, err error)
}

// ReadRefOut hands out the item at the cursor for the caller to read.
type ReadRefOut[T any] interface {
	ReadRefOut() (slot ref.Slot[T], err error)
}

// ReadRefOutLong hands out the item at the cursor as a plain pointer the
// caller must only read through.
type ReadRefOutLong[T any] interface {
	ReadRefOut[T]
	ReadRefOutLong() (item *T, err error)
}

// WriteIn moves *src into the manipulator at the cursor. On success *src is
// left moved-from (zeroed); on error it is untouched.
type WriteIn[T any] interface {
	WriteIn(src *T) (err error)
}

// ReadIn copies the item at the cursor into *dst, which need not hold a
// meaningful value beforehand. The item stays in place.
type ReadIn[T any] interface {
	ReadIn(dst *T) (err error)
}

// WriteOut reserves an uninitialised slot at the cursor. The caller must
// fill it before calling the manipulator again.
type WriteOut[T any] interface {
	WriteOut() (slot ref.Slot[T], err error)
}

// ReadOut hands out the item at the cursor for the caller to move out with
// Slot.Take.
type ReadOut[T any] interface {
	ReadOut() (slot ref.Slot[T], err error)
}

// WriteBorrowed writes item through the short form.
func WriteBorrowed[T any](m WriteRefIn[T], item T) (err error) {
	return ref.Borrow(&item, m.WriteRefIn)
}

// ReadBorrowed reads the item at the cursor through the short form.
func ReadBorrowed[T any](m ReadRefIn[T]) (item T, err error) {
	err = ref.Borrow(&item, m.ReadRefIn)
	return
}
