// Package producer defines the pull side of the seqio algebra.
//
// A producer owns a conceptual cursor into a sequence. Each call either
// completes fully or returns an error (the internal state change) and
// leaves the producer exactly as it was. After an error, or after Stop,
// callers must not call the producer again; an implementation may assume
// they don't.
//
// The capabilities are deliberately tiny so generic code can ask for only
// what it uses. Optional capabilities (SlurpProducer, ProducerTo) are
// discovered with a type assertion by the helper of the same name, the way
// io.Copy discovers io.WriterTo.
package producer

import (
	"errors"

	"github.com/ezrec/seqio/loaf"
	"github.com/ezrec/seqio/translate"
)

var f = translate.From

var (
	// ErrExhausted reports that a sequence has no further items.
	ErrExhausted = errors.New(f("sequence exhausted"))
)

// Source yields the next item, advancing the cursor by exactly one.
type Source[T any] interface {
	Produce() (item T, err error)
}

// Slurper refills any internal buffer without blocking. It never changes
// the logical sequence or the cursor; an error means buffering itself hit
// a terminal condition.
type Slurper interface {
	Slurp() (err error)
}

// Stopper ends the interaction voluntarily, handing over ex.
type Stopper[Ex any] interface {
	Stop(ex Ex) (err error)
}

// SlurpSource is a Source that can also be slurped.
type SlurpSource[T any] interface {
	Source[T]
	Slurper
}

// Producer is the full pull-side capability set.
type Producer[T, Ex any] interface {
	Source[T]
	Slurper
	Stopper[Ex]
}

// SlurpProducer is implemented by producers that can refill and produce in
// one step, typically bypassing their buffer. It must be observationally
// equivalent to Slurp followed by Produce.
type SlurpProducer[T any] interface {
	SlurpProduce() (item T, err error)
}

// SlurpProduce slurps and then produces one item, using the producer's own
// SlurpProduce when it has one. Implementations of SlurpProducer must not
// call this function on themselves.
func SlurpProduce[T any](p SlurpSource[T]) (item T, err error) {
	if sp, ok := p.(SlurpProducer[T]); ok {
		return sp.SlurpProduce()
	}

	err = p.Slurp()
	if err != nil {
		return
	}

	return p.Produce()
}

// ProducerTo is implemented by producers that can write several items
// straight into caller storage. ProduceTo fills a prefix of dst and returns
// its length n (1 <= n <= dst.Len()), advancing the cursor by n.
type ProducerTo[T any] interface {
	ProduceTo(dst loaf.Loaf[T]) (n int, err error)
}

// ProduceTo fills a prefix of dst. Without a ProducerTo implementation it
// produces exactly one item into dst.At(0).
func ProduceTo[T any](p Source[T], dst loaf.Loaf[T]) (n int, err error) {
	if pt, ok := p.(ProducerTo[T]); ok {
		return pt.ProduceTo(dst)
	}

	item, err := p.Produce()
	if err != nil {
		return
	}

	dst.Set(0, item)
	n = 1
	return
}

// ProduceTo1 produces one item into *dst. On error *dst is untouched.
func ProduceTo1[T any](p Source[T], dst *T) (err error) {
	item, err := p.Produce()
	if err != nil {
		return
	}

	*dst = item
	return
}

// SlurpProduceTo slurps and then fills a prefix of dst.
func SlurpProduceTo[T any](p SlurpSource[T], dst loaf.Loaf[T]) (n int, err error) {
	err = p.Slurp()
	if err != nil {
		return
	}

	return ProduceTo(p, dst)
}

// SlurpProduceTo1 slurps and then produces one item into *dst.
func SlurpProduceTo1[T any](p SlurpSource[T], dst *T) (err error) {
	err = p.Slurp()
	if err != nil {
		return
	}

	return ProduceTo1(p, dst)
}

// ProducerFrom exposes buffered items in place, in two phases.
//
// ProduceFrom returns a view of the items starting at the cursor without
// moving it. The caller reads what it needs and then calls DoProduceFrom to
// advance the cursor by amount, 1 <= amount <= window length. The view is
// invalid after any further call on the producer.
type ProducerFrom[T any] interface {
	ProduceFrom() (window loaf.Loaf[T], err error)
	DoProduceFrom(amount int)
}

// SlurpProduceFrom slurps and then exposes the buffered window.
func SlurpProduceFrom[T any](p interface {
	Slurper
	ProducerFrom[T]
}) (window loaf.Loaf[T], err error) {
	err = p.Slurp()
	if err != nil {
		return
	}

	return p.ProduceFrom()
}

// CopyFrom moves as many items as fit from p's window into dst, committing
// exactly the number copied.
func CopyFrom[T any](p ProducerFrom[T], dst loaf.Loaf[T]) (n int, err error) {
	window, err := p.ProduceFrom()
	if err != nil {
		return
	}

	n = copy(dst.Items(), window.Items())
	p.DoProduceFrom(n)
	return
}
