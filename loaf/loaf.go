// Package loaf provides the batch buffer used by every bulk operation: an
// ordered, contiguous, never-empty run of items or item slots.
package loaf

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ezrec/seqio/translate"
)

var f = translate.From

var (
	// ErrEmpty is returned when a loaf would hold no items.
	ErrEmpty = errors.New(f("loaf empty"))
)

// Loaf is a non-empty view over a slice. Copies of a Loaf share storage.
//
// The zero Loaf is not valid; build one with New, Make or Of.
type Loaf[T any] struct {
	items []T
}

// New returns a loaf holding a copy of items.
func New[T any](items ...T) (lf Loaf[T], err error) {
	if len(items) == 0 {
		err = ErrEmpty
		return
	}

	lf.items = make([]T, len(items))
	copy(lf.items, items)
	return
}

// Make returns a loaf of n zero-valued slots, ready to be filled.
// It panics if n < 1.
func Make[T any](n int) Loaf[T] {
	MustCount(n)
	return Loaf[T]{items: make([]T, n)}
}

// Of views an existing slice as a loaf without copying.
func Of[T any](items []T) (lf Loaf[T], err error) {
	if len(items) == 0 {
		err = ErrEmpty
		return
	}

	lf.items = items
	return
}

// MustCount panics unless n is a valid non-zero count.
func MustCount(n int) {
	if n < 1 {
		panic(fmt.Sprintf("loaf: count %d is not positive", n))
	}
}

// Len is the number of items in the loaf, always at least one.
func (lf Loaf[T]) Len() int {
	return len(lf.items)
}

// At returns the item at index i.
func (lf Loaf[T]) At(i int) T {
	return lf.items[i]
}

// Ptr returns the address of slot i.
func (lf Loaf[T]) Ptr(i int) *T {
	return &lf.items[i]
}

// Set stores v at index i.
func (lf Loaf[T]) Set(i int, v T) {
	lf.items[i] = v
}

// Items exposes the backing slice. Writes through it are visible to every
// copy of the loaf.
func (lf Loaf[T]) Items() []T {
	return lf.items
}

// Head returns a view of the first n items. It panics unless 1 <= n <= Len.
func (lf Loaf[T]) Head(n int) Loaf[T] {
	MustCount(n)
	return Loaf[T]{items: lf.items[:n]}
}

// Tail returns a view starting at index i, or false if nothing remains.
func (lf Loaf[T]) Tail(i int) (rest Loaf[T], ok bool) {
	if i >= len(lf.items) {
		return
	}

	rest.items = lf.items[i:]
	ok = true
	return
}

// Clear zeroes the first n slots, leaving them moved-from.
func (lf Loaf[T]) Clear(n int) {
	clear(lf.items[:n])
}

// All iterates over index/item pairs in order.
func (lf Loaf[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range lf.items {
			if !yield(i, item) {
				return
			}
		}
	}
}
