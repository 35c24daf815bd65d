package manip

import (
	"github.com/ezrec/seqio/loaf"
	"github.com/ezrec/seqio/ref"
)

// The bulk capabilities transfer a run of items starting at the cursor and
// return how many were transferred. The count is never zero but may be less
// than asked for; partial progress is not an error.

// WriteRefInLongMany1 writes a prefix of items at the cursor. The
// manipulator may keep items after the call.
type WriteRefInLongMany1[T any] interface {
	WriteRefInLong[T]
	WriteRefInLongMany1(items loaf.Loaf[T]) (n int, err error)
}

// WriteRefInMany1 writes a prefix of the referenced items without keeping
// them past the call.
type WriteRefInMany1[T any] interface {
	WriteRefInLongMany1[T]
	WriteRefInMany1(items ref.Ref[loaf.Loaf[T]]) (n int, err error)
}

// ReadRefInLongMany1 reads items at the cursor into a prefix of dst. The
// manipulator may keep dst after the call.
type ReadRefInLongMany1[T any] interface {
	ReadRefInLong[T]
	ReadRefInLongMany1(dst loaf.Loaf[T]) (n int, err error)
}

// ReadRefInMany1 reads items at the cursor into a prefix of the referenced
// loaf without keeping it past the call.
type ReadRefInMany1[T any] interface {
	ReadRefInLongMany1[T]
	ReadRefInMany1(dst ref.Ref[loaf.Loaf[T]]) (n int, err error)
}

// WriteInMany1 moves a prefix of src into the manipulator, leaving those
// slots moved-from.
type WriteInMany1[T any] interface {
	WriteIn[T]
	WriteInMany1(src loaf.Loaf[T]) (n int, err error)
}

// ReadInMany1 copies items from the cursor onward into a prefix of dst.
type ReadInMany1[T any] interface {
	ReadIn[T]
	ReadInMany1(dst loaf.Loaf[T]) (n int, err error)
}

// WriteRefOutMany1 hands out the initialised items at the cursor.
type WriteRefOutMany1[T any] interface {
	WriteRefOut[T]
	WriteRefOutMany1() (items ref.Span[T], err error)
}

// WriteRefOutLongMany1 hands out the items at the cursor as a loaf view.
type WriteRefOutLongMany1[T any] interface {
	WriteRefOutMany1[T]
	WriteRefOutLongMany1() (items loaf.Loaf[T], err error)
}

// ReadRefOutMany1 hands out the items at the cursor for reading.
type ReadRefOutMany1[T any] interface {
	ReadRefOut[T]
	ReadRefOutMany1() (items ref.Span[T], err error)
}

// ReadRefOutLongMany1 hands out the items at the cursor as a loaf view the
// caller must only read through.
type ReadRefOutLongMany1[T any] interface {
	ReadRefOutMany1[T]
	ReadRefOutLongMany1() (items loaf.Loaf[T], err error)
}

// WriteOutMany1 reserves uninitialised slots at the cursor; the caller
// must fill all of them before calling the manipulator again.
type WriteOutMany1[T any] interface {
	WriteOut[T]
	WriteOutMany1() (slots ref.Span[T], err error)
}

// ReadOutMany1 hands out the items at the cursor for the caller to move
// out with Span.Take.
type ReadOutMany1[T any] interface {
	ReadOut[T]
	ReadOutMany1() (items ref.Span[T], err error)
}

// WriteRefInAll writes items through the short form, borrowing them only
// for the duration of the call.
func WriteRefInAll[T any](m WriteRefInMany1[T], items loaf.Loaf[T]) (n int, err error) {
	err = ref.Borrow(&items, func(r ref.Ref[loaf.Loaf[T]]) (err error) {
		n, err = m.WriteRefInMany1(r)
		return
	})
	return
}

// ReadRefInAll reads into dst through the short form.
func ReadRefInAll[T any](m ReadRefInMany1[T], dst loaf.Loaf[T]) (n int, err error) {
	err = ref.Borrow(&dst, func(r ref.Ref[loaf.Loaf[T]]) (err error) {
		n, err = m.ReadRefInMany1(r)
		return
	})
	return
}
