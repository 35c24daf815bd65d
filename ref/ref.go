// Package ref expresses the two reference lifetimes of the capability
// algebra without raw addresses.
//
// A plain Go pointer is a long reference: the receiver may keep it for as
// long as it likes. A Ref is a short reference: it is only usable while the
// call that received it is running. Slot and Span are handles into storage
// owned by a manipulator; they go stale as soon as the manipulator is
// called again.
package ref

import (
	"errors"

	"github.com/ezrec/seqio/translate"
)

var f = translate.From

var (
	// ErrExpired is the panic value for use of a Ref after its call returned.
	ErrExpired = errors.New(f("reference used after its call returned"))
	// ErrStale is the panic value for use of a Slot or Span after its owner moved on.
	ErrStale = errors.New(f("slot used after its owner was called again"))
)

type borrow[T any] struct {
	p    *T
	live bool
}

// Ref is a call-scoped view of a caller-owned value.
type Ref[T any] struct {
	b *borrow[T]
}

// Borrow lends p to fn as a Ref that stops working once fn returns.
func Borrow[T any](p *T, fn func(Ref[T]) error) error {
	b := &borrow[T]{p: p, live: true}
	defer func() {
		b.live = false
		b.p = nil
	}()

	return fn(Ref[T]{b: b})
}

// Valid reports whether the Ref may still be used.
func (r Ref[T]) Valid() bool {
	return r.b != nil && r.b.live
}

// Get returns the referenced value.
func (r Ref[T]) Get() T {
	r.check()
	return *r.b.p
}

// Set overwrites the referenced value.
func (r Ref[T]) Set(v T) {
	r.check()
	*r.b.p = v
}

func (r Ref[T]) check() {
	if !r.Valid() {
		panic(ErrExpired)
	}
}
