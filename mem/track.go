package mem

import (
	"github.com/ezrec/seqio/consumer"
	"github.com/ezrec/seqio/loaf"
	"github.com/ezrec/seqio/manip"
	"github.com/ezrec/seqio/producer"
	"github.com/ezrec/seqio/ref"
)

// TRACK_DEFAULT_CAPACITY is the capacity of a track rewound with none set.
const TRACK_DEFAULT_CAPACITY = 4096

// Track is an addressable buffer of items with a single cursor that steps
// both ways. Positions run from 0 to len(Data); the cursor at len(Data) is
// the append position.
//
// Handed-out slots, spans, pointers and windows stay valid until the next
// successful call on the track. Data never grows past Capacity, so it is never
// reallocated behind a handle.
type Track[T any] struct {
	Capacity int

	Readable bool
	Writable bool

	Cursor int
	Data   []T

	readCause  error
	writeCause error

	epoch ref.Epoch
}

var (
	_ manip.Cursor                    = (*Track[int])(nil)
	_ manip.NextMany1                 = (*Track[int])(nil)
	_ manip.PrevMany1                 = (*Track[int])(nil)
	_ manip.ReadWriter[int]           = (*Track[int])(nil)
	_ manip.WriteRefInMany1[int]      = (*Track[int])(nil)
	_ manip.WriteRefIn[int]           = (*Track[int])(nil)
	_ manip.ReadRefInMany1[int]       = (*Track[int])(nil)
	_ manip.ReadRefIn[int]            = (*Track[int])(nil)
	_ manip.WriteRefOutLongMany1[int] = (*Track[int])(nil)
	_ manip.WriteRefOutLong[int]      = (*Track[int])(nil)
	_ manip.ReadRefOutLongMany1[int]  = (*Track[int])(nil)
	_ manip.ReadRefOutLong[int]       = (*Track[int])(nil)
	_ manip.WriteInMany1[int]         = (*Track[int])(nil)
	_ manip.ReadInMany1[int]          = (*Track[int])(nil)
	_ manip.WriteOutMany1[int]        = (*Track[int])(nil)
	_ manip.ReadOutMany1[int]         = (*Track[int])(nil)
	_ manip.FlushPrev                 = (*Track[int])(nil)
	_ manip.FlushNext                 = (*Track[int])(nil)
	_ manip.SlurpPrev                 = (*Track[int])(nil)
	_ manip.SlurpNext                 = (*Track[int])(nil)
	_ manip.StopRead[error]           = (*Track[int])(nil)
	_ manip.StopWrite[error]          = (*Track[int])(nil)

	_ producer.Producer[int, error] = (*Track[int])(nil)
	_ consumer.Consumer[int, error] = (*Track[int])(nil)
)

// NewTrack returns an empty, readable and writable track.
func NewTrack[T any](capacity int) (tr *Track[T]) {
	loaf.MustCount(capacity)
	tr = &Track[T]{Capacity: capacity, Readable: true, Writable: true}
	tr.Rewind()
	return
}

// NewTrackOf returns a read-only track over items.
func NewTrackOf[T any](items ...T) (tr *Track[T]) {
	tr = &Track[T]{Capacity: max(len(items), 1), Readable: true}
	tr.Data = make([]T, len(items), tr.Capacity)
	copy(tr.Data, items)
	tr.Rewind()
	return
}

// Rewind moves the cursor to the start, allocating Data if needed.
// Existing items are kept, and so is any stop.
func (tr *Track[T]) Rewind() {
	if tr.Data == nil {
		if tr.Capacity == 0 {
			tr.Capacity = TRACK_DEFAULT_CAPACITY
		}
		tr.Data = make([]T, 0, tr.Capacity)
	} else if cap(tr.Data) < tr.Capacity {
		data := make([]T, len(tr.Data), tr.Capacity)
		copy(data, tr.Data)
		tr.Data = data
	}

	tr.Cursor = 0
	tr.epoch.Advance()
}

// ReadCause is the reason given to StopRead, if any.
func (tr *Track[T]) ReadCause() error {
	return tr.readCause
}

// WriteCause is the reason given to StopWrite, if any.
func (tr *Track[T]) WriteCause() error {
	return tr.writeCause
}

func (tr *Track[T]) canRead() (err error) {
	switch {
	case tr.readCause != nil:
		err = ErrReadStopped
	case !tr.Readable:
		err = ErrWriteOnly
	case tr.Cursor >= len(tr.Data):
		err = ErrBoundary
	}
	return
}

func (tr *Track[T]) canWrite() (err error) {
	switch {
	case tr.writeCause != nil:
		err = ErrWriteStopped
	case !tr.Writable:
		err = ErrReadOnly
	case tr.Cursor >= tr.Capacity:
		err = ErrFull
	}
	return
}

// canRewrite is canWrite for operations that need an existing item.
func (tr *Track[T]) canRewrite() (err error) {
	err = tr.canWrite()
	if err == nil && tr.Cursor >= len(tr.Data) {
		err = ErrBoundary
	}
	return
}

// ahead is the number of items from the cursor to the end of Data.
func (tr *Track[T]) ahead() int {
	return len(tr.Data) - tr.Cursor
}

// extend grows Data so that positions up to end exist.
func (tr *Track[T]) extend(end int) {
	if end > len(tr.Data) {
		tr.Data = tr.Data[:end]
	}
}

// Next steps the cursor forward.
func (tr *Track[T]) Next() (err error) {
	_, err = tr.NextMany1(1)
	return
}

// Prev steps the cursor backward.
func (tr *Track[T]) Prev() (err error) {
	_, err = tr.PrevMany1(1)
	return
}

// NextMany1 steps forward by as much of amount as Data allows.
func (tr *Track[T]) NextMany1(amount int) (moved int, err error) {
	loaf.MustCount(amount)
	moved = min(amount, tr.ahead())
	if moved == 0 {
		err = ErrBoundary
		return
	}

	tr.epoch.Advance()
	tr.Cursor += moved
	return
}

// PrevMany1 steps backward by as much of amount as Data allows.
func (tr *Track[T]) PrevMany1(amount int) (moved int, err error) {
	loaf.MustCount(amount)
	moved = min(amount, tr.Cursor)
	if moved == 0 {
		err = ErrBoundary
		return
	}

	tr.epoch.Advance()
	tr.Cursor -= moved
	return
}

// Read returns the item at the cursor.
func (tr *Track[T]) Read() (item T, err error) {
	err = tr.canRead()
	if err != nil {
		return
	}

	tr.epoch.Advance()
	item = tr.Data[tr.Cursor]
	return
}

// Write stores item at the cursor, appending when the cursor is at the end.
func (tr *Track[T]) Write(item T) (err error) {
	err = tr.canWrite()
	if err != nil {
		return
	}

	tr.epoch.Advance()
	tr.extend(tr.Cursor + 1)
	tr.Data[tr.Cursor] = item
	return
}

// Produce reads the item at the cursor and steps past it.
func (tr *Track[T]) Produce() (item T, err error) {
	item, err = tr.Read()
	if err != nil {
		return
	}

	tr.Cursor++
	return
}

// Consume writes item at the cursor and steps past it.
func (tr *Track[T]) Consume(item T) (err error) {
	err = tr.Write(item)
	if err != nil {
		return
	}

	tr.Cursor++
	return
}

// Slurp is SlurpNext.
func (tr *Track[T]) Slurp() error {
	return tr.SlurpNext()
}

// Flush is FlushNext.
func (tr *Track[T]) Flush() error {
	return tr.FlushNext()
}

// Stop is StopRead.
func (tr *Track[T]) Stop(reason error) error {
	return tr.StopRead(reason)
}

// Close is StopWrite.
func (tr *Track[T]) Close(reason error) error {
	return tr.StopWrite(reason)
}

// FlushPrev is a no-op for an in-memory track.
func (tr *Track[T]) FlushPrev() (err error) {
	if tr.writeCause != nil {
		err = ErrWriteStopped
	}
	return
}

// FlushNext is a no-op for an in-memory track.
func (tr *Track[T]) FlushNext() error {
	return tr.FlushPrev()
}

// SlurpPrev is a no-op for an in-memory track.
func (tr *Track[T]) SlurpPrev() (err error) {
	if tr.readCause != nil {
		err = ErrReadStopped
	}
	return
}

// SlurpNext is a no-op for an in-memory track.
func (tr *Track[T]) SlurpNext() error {
	return tr.SlurpPrev()
}

// StopRead halts the read half. A nil reason is recorded as ErrStopped.
func (tr *Track[T]) StopRead(reason error) (err error) {
	tr.epoch.Advance()
	if reason == nil {
		reason = ErrStopped
	}
	tr.readCause = reason
	return
}

// StopWrite halts the write half. A nil reason is recorded as ErrStopped.
func (tr *Track[T]) StopWrite(reason error) (err error) {
	tr.epoch.Advance()
	if reason == nil {
		reason = ErrStopped
	}
	tr.writeCause = reason
	return
}
