// Package mem provides in-memory manipulators implementing the seqio
// capabilities: a bounded FIFO Queue, a steppable Track, a Duplex pipe with
// independently stoppable halves, and a read-only Rom.
package mem

import (
	"github.com/ezrec/seqio/consumer"
	"github.com/ezrec/seqio/loaf"
	"github.com/ezrec/seqio/producer"
	"github.com/ezrec/seqio/ref"
)

// QUEUE_DEFAULT_CAPACITY is the capacity of a queue rewound with none set.
const QUEUE_DEFAULT_CAPACITY = 4096

// Queue is a bounded circular FIFO. It is a producer on its read side and
// a consumer on its write side.
//
// Once the write side is closed, a drained queue reports
// producer.ErrExhausted instead of ErrEmpty.
//
// A failing call changes nothing: an outstanding ConsumeTo reservation
// survives it.
type Queue[T any] struct {
	Capacity int

	readIndex  int
	writeIndex int
	size       int
	data       []T

	stopped bool
	closed  bool

	epoch    ref.Epoch
	reserved int
}

var (
	_ producer.Producer[int, struct{}] = (*Queue[int])(nil)
	_ producer.ProducerTo[int]         = (*Queue[int])(nil)
	_ producer.ProducerFrom[int]       = (*Queue[int])(nil)
	_ consumer.Consumer[int, struct{}] = (*Queue[int])(nil)
	_ consumer.ConsumerFrom[int]       = (*Queue[int])(nil)
	_ consumer.ConsumerFromMany1[int]  = (*Queue[int])(nil)
	_ consumer.ConsumerTo[int]         = (*Queue[int])(nil)
	_ consumer.ConsumerToMany1[int]    = (*Queue[int])(nil)
)

// NewQueue returns an empty queue holding at most capacity items.
func NewQueue[T any](capacity int) (q *Queue[T]) {
	loaf.MustCount(capacity)
	q = &Queue[T]{Capacity: capacity}
	q.Rewind()
	return
}

// Rewind empties the queue, allocating its storage if needed. A stopped or
// closed side stays that way.
func (q *Queue[T]) Rewind() {
	if q.Capacity == 0 {
		q.Capacity = QUEUE_DEFAULT_CAPACITY
	}

	q.readIndex = 0
	q.writeIndex = 0
	q.size = 0
	q.data = make([]T, q.Capacity)
	q.release()
}

// Len is the number of items waiting to be produced.
func (q *Queue[T]) Len() int {
	return q.size
}

// Free is the number of items that can be consumed before the queue is full.
func (q *Queue[T]) Free() int {
	return q.Capacity - q.size
}

// release forgets any reservation and invalidates handed-out slots.
func (q *Queue[T]) release() {
	q.epoch.Advance()
	q.reserved = 0
}

func (q *Queue[T]) wrap(index int) int {
	if index >= q.Capacity {
		index -= q.Capacity
	}
	return index
}

func (q *Queue[T]) readable() (err error) {
	switch {
	case q.stopped:
		err = ErrStopped
	case q.size > 0:
	case q.closed:
		err = producer.ErrExhausted
	default:
		err = ErrEmpty
	}
	return
}

func (q *Queue[T]) writable() (err error) {
	switch {
	case q.closed:
		err = ErrStopped
	case q.size >= q.Capacity:
		err = ErrFull
	}
	return
}

// Produce removes the oldest item.
func (q *Queue[T]) Produce() (item T, err error) {
	err = q.readable()
	if err != nil {
		return
	}

	q.release()
	item = q.data[q.readIndex]
	var zero T
	q.data[q.readIndex] = zero
	q.readIndex = q.wrap(q.readIndex + 1)
	q.size--
	return
}

// Slurp is a no-op; everything is already in memory.
func (q *Queue[T]) Slurp() (err error) {
	if q.stopped {
		err = ErrStopped
	}
	return
}

// Stop ends the read side.
func (q *Queue[T]) Stop(struct{}) (err error) {
	q.release()
	q.stopped = true
	return
}

// ProduceTo moves up to dst.Len() of the oldest items into dst.
func (q *Queue[T]) ProduceTo(dst loaf.Loaf[T]) (n int, err error) {
	err = q.readable()
	if err != nil {
		return
	}

	q.release()
	n = min(q.size, dst.Len())
	for i := range n {
		dst.Set(i, q.data[q.readIndex])
		var zero T
		q.data[q.readIndex] = zero
		q.readIndex = q.wrap(q.readIndex + 1)
	}
	q.size -= n
	return
}

// ProduceFrom exposes the contiguous run of oldest items in place.
func (q *Queue[T]) ProduceFrom() (window loaf.Loaf[T], err error) {
	err = q.readable()
	if err != nil {
		return
	}

	q.release()
	n := min(q.size, q.Capacity-q.readIndex)
	return loaf.Of(q.data[q.readIndex : q.readIndex+n])
}

// DoProduceFrom drops the first amount items of the last window.
// It panics if amount is outside the queue's contents.
func (q *Queue[T]) DoProduceFrom(amount int) {
	loaf.MustCount(amount)
	if amount > q.size || q.readIndex+amount > q.Capacity {
		panic(f("mem: produce-from amount %d out of range", amount))
	}

	q.release()
	clear(q.data[q.readIndex : q.readIndex+amount])
	q.readIndex = q.wrap(q.readIndex + amount)
	q.size -= amount
}

// Consume appends item.
func (q *Queue[T]) Consume(item T) (err error) {
	err = q.writable()
	if err != nil {
		return
	}

	q.release()
	q.push(item)
	return
}

func (q *Queue[T]) push(item T) {
	q.data[q.writeIndex] = item
	q.writeIndex = q.wrap(q.writeIndex + 1)
	q.size++
}

// Flush is a no-op; consumed items are visible immediately.
func (q *Queue[T]) Flush() (err error) {
	if q.closed {
		err = ErrStopped
	}
	return
}

// Close ends the write side. Items already queued can still be produced.
func (q *Queue[T]) Close(struct{}) (err error) {
	q.release()
	q.closed = true
	return
}

// ConsumeFrom moves *src into the queue.
func (q *Queue[T]) ConsumeFrom(src *T) (err error) {
	err = q.Consume(*src)
	if err != nil {
		return
	}

	var zero T
	*src = zero
	return
}

// ConsumeFromMany1 moves as many leading items of src as fit.
func (q *Queue[T]) ConsumeFromMany1(src loaf.Loaf[T]) (n int, err error) {
	err = q.writable()
	if err != nil {
		return
	}

	q.release()
	n = min(q.Free(), src.Len())
	for i := range n {
		q.push(src.At(i))
	}
	src.Clear(n)
	return
}

// ConsumeTo reserves the next free slot.
func (q *Queue[T]) ConsumeTo() (slot ref.Slot[T], ok bool) {
	if q.writable() != nil {
		return
	}

	q.release()
	q.reserved = 1
	slot = ref.NewSlot(&q.data[q.writeIndex], &q.epoch)
	ok = true
	return
}

// DoConsumeTo commits the slot reserved by ConsumeTo.
func (q *Queue[T]) DoConsumeTo() (err error) {
	if q.reserved != 1 {
		err = ErrNotReserved
		return
	}

	q.release()
	q.writeIndex = q.wrap(q.writeIndex + 1)
	q.size++
	return
}

// ConsumeToMany1 reserves up to max contiguous free slots.
func (q *Queue[T]) ConsumeToMany1(max int) (slots ref.Span[T], ok bool) {
	loaf.MustCount(max)
	if q.writable() != nil {
		return
	}

	q.release()
	n := min(max, q.Free(), q.Capacity-q.writeIndex)
	q.reserved = n
	slots = ref.NewSpan(q.data[q.writeIndex:q.writeIndex+n], &q.epoch)
	ok = true
	return
}

// DoConsumeToMany1 commits the first filled reserved slots and discards
// the rest.
func (q *Queue[T]) DoConsumeToMany1(filled int) (n int, err error) {
	if q.reserved == 0 || filled < 1 || filled > q.reserved {
		err = ErrNotReserved
		return
	}

	clear(q.data[q.writeIndex+filled : q.writeIndex+q.reserved])
	q.release()
	q.writeIndex = q.wrap(q.writeIndex + filled)
	q.size += filled
	n = filled
	return
}
