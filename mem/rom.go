package mem

import (
	"github.com/ezrec/seqio/loaf"
	"github.com/ezrec/seqio/producer"
)

// Rom is a read-only producer over a fixed slice. Its windows alias Data
// directly, so ProduceFrom never copies.
type Rom[T any] struct {
	Data []T

	index   int
	stopped bool
}

var (
	_ producer.Producer[int, struct{}] = (*Rom[int])(nil)
	_ producer.ProducerTo[int]         = (*Rom[int])(nil)
	_ producer.ProducerFrom[int]       = (*Rom[int])(nil)
)

// Rewind restarts production from the first item. A stopped rom stays
// stopped.
func (rc *Rom[T]) Rewind() {
	rc.index = 0
}

// Remaining is the number of items not yet produced.
func (rc *Rom[T]) Remaining() int {
	return len(rc.Data) - rc.index
}

func (rc *Rom[T]) readable() (err error) {
	switch {
	case rc.stopped:
		err = ErrStopped
	case rc.index >= len(rc.Data):
		err = producer.ErrExhausted
	}
	return
}

// Produce yields the next item.
func (rc *Rom[T]) Produce() (item T, err error) {
	err = rc.readable()
	if err != nil {
		return
	}

	item = rc.Data[rc.index]
	rc.index++
	return
}

// Slurp is a no-op.
func (rc *Rom[T]) Slurp() (err error) {
	if rc.stopped {
		err = ErrStopped
	}
	return
}

// Stop ends production.
func (rc *Rom[T]) Stop(struct{}) (err error) {
	rc.stopped = true
	return
}

// ProduceTo copies as many remaining items as fit into dst.
func (rc *Rom[T]) ProduceTo(dst loaf.Loaf[T]) (n int, err error) {
	err = rc.readable()
	if err != nil {
		return
	}

	n = copy(dst.Items(), rc.Data[rc.index:])
	rc.index += n
	return
}

// ProduceFrom exposes every remaining item in place.
func (rc *Rom[T]) ProduceFrom() (window loaf.Loaf[T], err error) {
	err = rc.readable()
	if err != nil {
		return
	}

	return loaf.Of(rc.Data[rc.index:])
}

// DoProduceFrom skips amount items. It panics if fewer remain.
func (rc *Rom[T]) DoProduceFrom(amount int) {
	loaf.MustCount(amount)
	if amount > rc.Remaining() {
		panic(f("mem: produce-from amount %d out of range", amount))
	}

	rc.index += amount
}
