package producer

import (
	"errors"
	"iter"
)

// All returns an iterator over the items of p. Iteration ends quietly at
// ErrExhausted; any other internal state change is yielded once, with a
// zero item, and ends the iteration.
func All[T any](p Source[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			item, err := p.Produce()
			if err != nil {
				if !errors.Is(err, ErrExhausted) {
					var zero T
					yield(zero, err)
				}
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Collect produces every remaining item of p.
func Collect[T any](p Source[T]) (items []T, err error) {
	for item, perr := range All(p) {
		if perr != nil {
			err = perr
			return
		}
		items = append(items, item)
	}
	return
}

// Seq adapts a Go iterator into a Producer.
type Seq[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

var _ Producer[int, struct{}] = (*Seq[int])(nil)

// FromSeq returns a producer yielding the values of seq, then ErrExhausted.
// Stop must be called if the producer is abandoned early.
func FromSeq[T any](seq iter.Seq[T]) *Seq[T] {
	next, stop := iter.Pull(seq)
	return &Seq[T]{next: next, stop: stop}
}

// Produce pulls the next value from the iterator.
func (s *Seq[T]) Produce() (item T, err error) {
	if s.done {
		err = ErrExhausted
		return
	}

	item, ok := s.next()
	if !ok {
		s.done = true
		err = ErrExhausted
	}
	return
}

// Slurp is a no-op; the iterator has no buffer.
func (s *Seq[T]) Slurp() (err error) {
	return
}

// Stop releases the iterator.
func (s *Seq[T]) Stop(struct{}) (err error) {
	s.done = true
	s.stop()
	return
}

// Chain produces from each source in turn, moving on when one reports
// ErrExhausted. Any other internal state change is returned unchanged.
type Chain[T any] struct {
	sources []Source[T]
}

var _ Producer[int, struct{}] = (*Chain[int])(nil)

// Concat chains sources into a single producer.
func Concat[T any](sources ...Source[T]) *Chain[T] {
	return &Chain[T]{sources: sources}
}

// Produce yields the next item of the first source that still has one.
func (c *Chain[T]) Produce() (item T, err error) {
	for len(c.sources) > 0 {
		item, err = c.sources[0].Produce()
		if !errors.Is(err, ErrExhausted) {
			return
		}
		c.sources = c.sources[1:]
	}

	err = ErrExhausted
	return
}

// Slurp slurps the current source, if it can be slurped.
func (c *Chain[T]) Slurp() (err error) {
	if len(c.sources) == 0 {
		return
	}

	if s, ok := c.sources[0].(Slurper); ok {
		err = s.Slurp()
	}
	return
}

// Stop stops every remaining source that can be stopped, returning the
// first error. The chain is exhausted afterwards.
func (c *Chain[T]) Stop(struct{}) (err error) {
	for _, src := range c.sources {
		s, ok := src.(Stopper[struct{}])
		if !ok {
			continue
		}
		serr := s.Stop(struct{}{})
		if err == nil {
			err = serr
		}
	}

	c.sources = nil
	return
}
