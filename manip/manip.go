// Package manip is the bidirectional half of the seqio algebra: small
// capabilities for manipulators whose cursor can step either way and that
// move items by value, by reference or through manipulator-owned slots.
//
// Every capability is over an item type T, and every failing call returns
// an error (the internal state change) that leaves the manipulator exactly
// as it was. Read and Write act at the cursor without moving it; the bulk
// forms act on the positions starting at the cursor.
//
// The In/Out naming is about who supplies storage, not about direction:
// In means the caller supplies it, Out means the manipulator hands it out.
//
// Reference lifetimes:
//
//   - Long forms take a plain pointer or loaf.Loaf, which the manipulator
//     may keep after the call.
//   - Short forms take a ref.Ref, which stops working when the call returns.
//   - Out forms return a ref.Slot or ref.Span that goes stale on the next
//     call to the manipulator.
package manip

import (
	"github.com/ezrec/seqio/loaf"
)

// Next steps the cursor forward by one.
type Next interface {
	Next() (err error)
}

// Prev steps the cursor backward by one.
type Prev interface {
	Prev() (err error)
}

// NextMany1 steps forward by up to amount and returns how far it moved,
// 1 <= moved <= amount.
type NextMany1 interface {
	Next
	NextMany1(amount int) (moved int, err error)
}

// PrevMany1 steps backward by up to amount and returns how far it moved,
// 1 <= moved <= amount.
type PrevMany1 interface {
	Prev
	PrevMany1(amount int) (moved int, err error)
}

// StepNext steps forward by up to amount. Without a NextMany1
// implementation it moves by exactly one. It panics if amount < 1.
func StepNext(m Next, amount int) (moved int, err error) {
	loaf.MustCount(amount)
	if nm, ok := m.(NextMany1); ok {
		return nm.NextMany1(amount)
	}

	err = m.Next()
	if err != nil {
		return
	}

	moved = 1
	return
}

// StepPrev steps backward by up to amount. Without a PrevMany1
// implementation it moves by exactly one. It panics if amount < 1.
func StepPrev(m Prev, amount int) (moved int, err error) {
	loaf.MustCount(amount)
	if pm, ok := m.(PrevMany1); ok {
		return pm.PrevMany1(amount)
	}

	err = m.Prev()
	if err != nil {
		return
	}

	moved = 1
	return
}

// Read returns the item at the cursor by value.
type Read[T any] interface {
	Read() (item T, err error)
}

// Write stores item at the cursor by value.
type Write[T any] interface {
	Write(item T) (err error)
}

// FlushPrev commits buffered work behind the cursor without blocking.
type FlushPrev interface {
	FlushPrev() (err error)
}

// FlushNext commits buffered work ahead of the cursor without blocking.
type FlushNext interface {
	FlushNext() (err error)
}

// SlurpPrev refills buffered data behind the cursor without blocking.
type SlurpPrev interface {
	SlurpPrev() (err error)
}

// SlurpNext refills buffered data ahead of the cursor without blocking.
type SlurpNext interface {
	SlurpNext() (err error)
}

// StopRead halts the read half with a typed reason.
type StopRead[R any] interface {
	StopRead(reason R) (err error)
}

// StopWrite halts the write half with a typed reason.
type StopWrite[W any] interface {
	StopWrite(reason W) (err error)
}

// Cursor is a manipulator that can step both ways.
type Cursor interface {
	Next
	Prev
}

// ReadWriter moves single items by value at the cursor.
type ReadWriter[T any] interface {
	Read[T]
	Write[T]
}
