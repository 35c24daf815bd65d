package mem

import (
	"github.com/ezrec/seqio/consumer"
	"github.com/ezrec/seqio/loaf"
	"github.com/ezrec/seqio/manip"
	"github.com/ezrec/seqio/producer"
)

// Duplex is a bounded pipe whose read and write halves are stopped
// independently, each with its own reason type.
//
// Stopping the read half rejects further traffic on both halves. Stopping
// the write half lets the reader drain what was queued, after which
// Produce reports ErrWriteStopped.
type Duplex[T, R, W any] struct {
	queue *Queue[T]

	readReason  R
	readDone    bool
	writeReason W
	writeDone   bool
}

var (
	_ producer.Producer[int, string] = (*Duplex[int, string, error])(nil)
	_ consumer.Consumer[int, error]  = (*Duplex[int, string, error])(nil)
	_ manip.StopRead[string]         = (*Duplex[int, string, error])(nil)
	_ manip.StopWrite[error]         = (*Duplex[int, string, error])(nil)
)

// NewDuplex returns an open pipe holding at most capacity items.
func NewDuplex[T, R, W any](capacity int) *Duplex[T, R, W] {
	return &Duplex[T, R, W]{queue: NewQueue[T](capacity)}
}

// ReadReason returns the reason the read half was stopped with.
func (d *Duplex[T, R, W]) ReadReason() (reason R, ok bool) {
	return d.readReason, d.readDone
}

// WriteReason returns the reason the write half was stopped with.
func (d *Duplex[T, R, W]) WriteReason() (reason W, ok bool) {
	return d.writeReason, d.writeDone
}

// Len is the number of items queued.
func (d *Duplex[T, R, W]) Len() int {
	return d.queue.Len()
}

// Produce removes the oldest item.
func (d *Duplex[T, R, W]) Produce() (item T, err error) {
	if d.readDone {
		err = ErrReadStopped
		return
	}

	if d.writeDone && d.queue.Len() == 0 {
		err = ErrWriteStopped
		return
	}

	return d.queue.Produce()
}

// ProduceTo moves up to dst.Len() queued items into dst.
func (d *Duplex[T, R, W]) ProduceTo(dst loaf.Loaf[T]) (n int, err error) {
	if d.readDone {
		err = ErrReadStopped
		return
	}

	if d.writeDone && d.queue.Len() == 0 {
		err = ErrWriteStopped
		return
	}

	return d.queue.ProduceTo(dst)
}

// Slurp is a no-op.
func (d *Duplex[T, R, W]) Slurp() (err error) {
	if d.readDone {
		err = ErrReadStopped
	}
	return
}

// Consume queues item.
func (d *Duplex[T, R, W]) Consume(item T) (err error) {
	switch {
	case d.readDone:
		err = ErrReadStopped
	case d.writeDone:
		err = ErrWriteStopped
	default:
		err = d.queue.Consume(item)
	}
	return
}

// ConsumeFromMany1 queues as many leading items of src as fit.
func (d *Duplex[T, R, W]) ConsumeFromMany1(src loaf.Loaf[T]) (n int, err error) {
	switch {
	case d.readDone:
		err = ErrReadStopped
	case d.writeDone:
		err = ErrWriteStopped
	default:
		n, err = d.queue.ConsumeFromMany1(src)
	}
	return
}

// Flush is a no-op.
func (d *Duplex[T, R, W]) Flush() (err error) {
	if d.writeDone {
		err = ErrWriteStopped
	}
	return
}

// StopRead halts the read half, recording reason. Queued items are dropped.
func (d *Duplex[T, R, W]) StopRead(reason R) (err error) {
	d.readReason = reason
	d.readDone = true
	d.queue.Rewind()
	return
}

// StopWrite halts the write half, recording reason.
func (d *Duplex[T, R, W]) StopWrite(reason W) (err error) {
	d.writeReason = reason
	d.writeDone = true
	return
}

// Stop is StopRead.
func (d *Duplex[T, R, W]) Stop(reason R) error {
	return d.StopRead(reason)
}

// Close is StopWrite.
func (d *Duplex[T, R, W]) Close(reason W) error {
	return d.StopWrite(reason)
}
