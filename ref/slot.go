package ref

// Epoch counts the mutating calls of a manipulator. Handles stamped with an
// older count are stale.
type Epoch struct {
	n uint64
}

// Advance invalidates every handle issued so far.
func (e *Epoch) Advance() {
	e.n++
}

// Slot is a handle to a single item owned by a manipulator.
type Slot[T any] struct {
	p     *T
	epoch *Epoch
	at    uint64
}

// NewSlot issues a handle to *p valid until e advances.
func NewSlot[T any](p *T, e *Epoch) Slot[T] {
	return Slot[T]{p: p, epoch: e, at: e.n}
}

// Valid reports whether the handle may still be used.
func (s Slot[T]) Valid() bool {
	return s.p != nil && s.epoch.n == s.at
}

// Get reads the item.
func (s Slot[T]) Get() T {
	s.check()
	return *s.p
}

// Set writes the item.
func (s Slot[T]) Set(v T) {
	s.check()
	*s.p = v
}

// Take moves the item out, leaving the slot zeroed.
func (s Slot[T]) Take() (v T) {
	s.check()
	v = *s.p
	var zero T
	*s.p = zero
	return
}

func (s Slot[T]) check() {
	if !s.Valid() {
		panic(ErrStale)
	}
}

// Span is a handle to a contiguous, non-empty run of items owned by a
// manipulator.
type Span[T any] struct {
	items []T
	epoch *Epoch
	at    uint64
}

// NewSpan issues a handle to items valid until e advances.
func NewSpan[T any](items []T, e *Epoch) Span[T] {
	return Span[T]{items: items, epoch: e, at: e.n}
}

// Valid reports whether the handle may still be used.
func (s Span[T]) Valid() bool {
	return s.epoch != nil && s.epoch.n == s.at
}

// Len is the number of items in the span.
func (s Span[T]) Len() int {
	return len(s.items)
}

// At reads item i.
func (s Span[T]) At(i int) T {
	s.check()
	return s.items[i]
}

// Set writes item i.
func (s Span[T]) Set(i int, v T) {
	s.check()
	s.items[i] = v
}

// Take moves item i out, leaving it zeroed.
func (s Span[T]) Take(i int) (v T) {
	s.check()
	v = s.items[i]
	var zero T
	s.items[i] = zero
	return
}

func (s Span[T]) check() {
	if !s.Valid() {
		panic(ErrStale)
	}
}
