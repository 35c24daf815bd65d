package producer

// Option is a producer of at most one item.
//
// It tolerates calls after an internal state change: producing from an
// empty Option keeps returning ErrExhausted.
type Option[T any] struct {
	value T
	some  bool
}

var _ Producer[int, struct{}] = (*Option[int])(nil)

// Some returns an Option holding v.
func Some[T any](v T) *Option[T] {
	return &Option[T]{value: v, some: true}
}

// None returns an empty Option.
func None[T any]() *Option[T] {
	return &Option[T]{}
}

// IsSome reports whether the Option still holds its item.
func (o *Option[T]) IsSome() bool {
	return o.some
}

// Produce moves the item out of the Option, or returns ErrExhausted if it
// is empty.
func (o *Option[T]) Produce() (item T, err error) {
	if !o.some {
		err = ErrExhausted
		return
	}

	item = o.value
	var zero T
	o.value = zero
	o.some = false
	return
}

// Slurp is a no-op.
func (o *Option[T]) Slurp() (err error) {
	return
}

// Stop is a no-op; nothing is transmitted.
func (o *Option[T]) Stop(struct{}) (err error) {
	return
}
