// Package consumer defines the push side of the seqio algebra, the mirror
// image of package producer.
//
// Consume either accepts the item or returns an error (the internal state
// change) with nothing accepted. Flush is the non-blocking commit hint and
// Close the voluntary terminator. Optional capabilities are discovered by
// the helper functions with type assertions.
package consumer

import (
	"github.com/ezrec/seqio/loaf"
	"github.com/ezrec/seqio/ref"
)

// Sink accepts one item.
type Sink[T any] interface {
	Consume(item T) (err error)
}

// Flusher commits buffered items without blocking. It never changes the
// logical sequence.
type Flusher interface {
	Flush() (err error)
}

// Closer ends the interaction voluntarily, handing over ex.
type Closer[Ex any] interface {
	Close(ex Ex) (err error)
}

// FlushSink is a Sink that can also be flushed.
type FlushSink[T any] interface {
	Sink[T]
	Flusher
}

// Consumer is the full push-side capability set.
type Consumer[T, Ex any] interface {
	Sink[T]
	Flusher
	Closer[Ex]
}

// ConsumeFlusher is implemented by consumers that can consume and commit in
// one step. It must be observationally equivalent to Consume then Flush.
type ConsumeFlusher[T any] interface {
	ConsumeFlush(item T) (err error)
}

// ConsumeFlush consumes item and then flushes, using the consumer's own
// ConsumeFlush when it has one.
func ConsumeFlush[T any](c FlushSink[T], item T) (err error) {
	if cf, ok := c.(ConsumeFlusher[T]); ok {
		return cf.ConsumeFlush(item)
	}

	err = c.Consume(item)
	if err != nil {
		return
	}

	return c.Flush()
}

// ConsumerFrom is implemented by consumers that move an item directly out
// of caller storage. On success *src is left moved-from (zeroed) and must
// not be reused; on error *src is untouched.
type ConsumerFrom[T any] interface {
	ConsumeFrom(src *T) (err error)
}

// ConsumeFrom moves *src into c.
func ConsumeFrom[T any](c Sink[T], src *T) (err error) {
	if cf, ok := c.(ConsumerFrom[T]); ok {
		return cf.ConsumeFrom(src)
	}

	err = c.Consume(*src)
	if err != nil {
		return
	}

	var zero T
	*src = zero
	return
}

// ConsumeFromFlush moves *src into c and then flushes.
func ConsumeFromFlush[T any](c FlushSink[T], src *T) (err error) {
	err = ConsumeFrom(c, src)
	if err != nil {
		return
	}

	return c.Flush()
}

// ConsumerFromMany1 moves a prefix of src into the consumer and returns its
// length n, 1 <= n <= src.Len(). The first n slots of src are left
// moved-from; the rest remain the caller's.
type ConsumerFromMany1[T any] interface {
	ConsumeFromMany1(src loaf.Loaf[T]) (n int, err error)
}

// ConsumeFromMany1 moves a prefix of src into c, using c's own
// ConsumeFromMany1 when it has one and moving a single item otherwise.
func ConsumeFromMany1[T any](c Sink[T], src loaf.Loaf[T]) (n int, err error) {
	if cm, ok := c.(ConsumerFromMany1[T]); ok {
		return cm.ConsumeFromMany1(src)
	}

	err = ConsumeFrom(c, src.Ptr(0))
	if err != nil {
		return
	}

	n = 1
	return
}

// ConsumeFromMany1Flush moves a prefix of src into c and then flushes.
// A flush failure is reported with the count already moved.
func ConsumeFromMany1Flush[T any](c interface {
	ConsumerFromMany1[T]
	Flusher
}, src loaf.Loaf[T]) (n int, err error) {
	n, err = c.ConsumeFromMany1(src)
	if err != nil {
		return
	}

	err = c.Flush()
	return
}

// ConsumerTo is the two-phase reserve/commit protocol.
//
// ConsumeTo reserves a slot owned by the consumer; ok is false when no slot
// is free, which is not a failure and changes nothing. The caller writes
// exactly one item into the slot and then calls DoConsumeTo, after which the
// state is as if Consume had been called with that item. The slot goes stale
// at the commit.
type ConsumerTo[T any] interface {
	ConsumeTo() (slot ref.Slot[T], ok bool)
	DoConsumeTo() (err error)
}

// DoConsumeToFlush commits the reserved slot and then flushes.
func DoConsumeToFlush[T any](c interface {
	ConsumerTo[T]
	Flusher
}) (err error) {
	err = c.DoConsumeTo()
	if err != nil {
		return
	}

	return c.Flush()
}

// ConsumerToMany1 is the bulk reserve/commit protocol.
//
// ConsumeToMany1 reserves between 1 and max slots; ok is false when none are
// free. The caller fills a prefix of filled slots and calls
// DoConsumeToMany1, which commits and returns the number committed (>= 1).
type ConsumerToMany1[T any] interface {
	ConsumeToMany1(max int) (slots ref.Span[T], ok bool)
	DoConsumeToMany1(filled int) (n int, err error)
}

// DoConsumeToMany1Flush commits the reserved slots and then flushes.
func DoConsumeToMany1Flush[T any](c interface {
	ConsumerToMany1[T]
	Flusher
}, filled int) (n int, err error) {
	n, err = c.DoConsumeToMany1(filled)
	if err != nil {
		return
	}

	err = c.Flush()
	return
}

// ConsumeVia pushes item through the reserve/commit protocol when a slot is
// available, and through Consume otherwise.
func ConsumeVia[T any](c interface {
	Sink[T]
	ConsumerTo[T]
}, item T) (err error) {
	slot, ok := c.ConsumeTo()
	if !ok {
		return c.Consume(item)
	}

	slot.Set(item)
	return c.DoConsumeTo()
}
