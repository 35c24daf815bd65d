// Package stream provides transport-backed manipulators: byte tapes over
// io.Reader and io.Writer, and CBOR item codecs.
package stream

import (
	"bufio"
	"io"

	"github.com/ezrec/seqio/consumer"
	"github.com/ezrec/seqio/loaf"
	"github.com/ezrec/seqio/producer"
	"github.com/ezrec/seqio/ref"
)

// TAPE_DEFAULT_SIZE is the buffer size used when none is given.
const TAPE_DEFAULT_SIZE = 4096

// TapeReader produces the bytes of an io.Reader.
//
// Slurp fills the buffer with at most one read of Input when the buffer is
// empty. It is only as non-blocking as Input is.
//
// A read error is sticky: once Input has failed, every later call reports
// the same error.
type TapeReader struct {
	Input io.Reader

	buf     *bufio.Reader
	pending error
}

var (
	_ producer.Producer[byte, struct{}] = (*TapeReader)(nil)
	_ producer.SlurpProducer[byte]      = (*TapeReader)(nil)
	_ producer.ProducerTo[byte]         = (*TapeReader)(nil)
)

// NewTapeReader returns a tape reading from input through a buffer of size
// bytes, or TAPE_DEFAULT_SIZE if size < 1.
func NewTapeReader(input io.Reader, size int) *TapeReader {
	if size < 1 {
		size = TAPE_DEFAULT_SIZE
	}

	return &TapeReader{
		Input: input,
		buf:   bufio.NewReaderSize(input, size),
	}
}

// Buffered is the number of bytes that can be produced without touching
// Input.
func (tc *TapeReader) Buffered() int {
	return tc.buf.Buffered()
}

// fail records err from Input as the pending error and returns it.
func (tc *TapeReader) fail(err error) error {
	tc.pending = signal("read", err)
	return tc.pending
}

// Produce yields the next byte.
func (tc *TapeReader) Produce() (item byte, err error) {
	if tc.pending != nil {
		err = tc.pending
		return
	}

	item, err = tc.buf.ReadByte()
	if err != nil {
		err = tc.fail(err)
	}
	return
}

// Slurp refills an empty buffer. End of input is not a failure here; it is
// reported by the next Produce.
func (tc *TapeReader) Slurp() (err error) {
	if tc.pending != nil {
		if tc.pending != producer.ErrExhausted {
			err = tc.pending
		}
		return
	}

	if tc.buf.Buffered() > 0 {
		return
	}

	_, err = tc.buf.Peek(1)
	if err != nil {
		err = tc.fail(err)
		if err == producer.ErrExhausted {
			err = nil
		}
	}
	return
}

// SlurpProduce fills the buffer if needed and yields the next byte in one
// step.
func (tc *TapeReader) SlurpProduce() (byte, error) {
	return tc.Produce()
}

// Stop closes Input if it is an io.Closer.
func (tc *TapeReader) Stop(struct{}) error {
	return closeIfCloser(tc.Input)
}

// ProduceTo reads straight into dst. Buffered bytes are returned first;
// with an empty buffer dst is filled from Input directly.
func (tc *TapeReader) ProduceTo(dst loaf.Loaf[byte]) (n int, err error) {
	if tc.pending != nil {
		err = tc.pending
		return
	}

	for n == 0 {
		n, err = tc.buf.Read(dst.Items())
		if err != nil {
			// An error alongside data is kept for the next call.
			err = tc.fail(err)
			if n > 0 {
				err = nil
			}
			return
		}
	}
	return
}

// TapeWriter consumes bytes into an io.Writer.
type TapeWriter struct {
	Output io.Writer

	buf      *bufio.Writer
	epoch    ref.Epoch
	reserved []byte
}

var (
	_ consumer.Consumer[byte, struct{}] = (*TapeWriter)(nil)
	_ consumer.ConsumerFromMany1[byte]  = (*TapeWriter)(nil)
	_ consumer.ConsumerTo[byte]         = (*TapeWriter)(nil)
	_ consumer.ConsumerToMany1[byte]    = (*TapeWriter)(nil)
)

// NewTapeWriter returns a tape writing to output through a buffer of size
// bytes, or TAPE_DEFAULT_SIZE if size < 1.
func NewTapeWriter(output io.Writer, size int) *TapeWriter {
	if size < 1 {
		size = TAPE_DEFAULT_SIZE
	}

	return &TapeWriter{
		Output: output,
		buf:    bufio.NewWriterSize(output, size),
	}
}

// Buffered is the number of bytes consumed but not yet written to Output.
func (tc *TapeWriter) Buffered() int {
	return tc.buf.Buffered()
}

func (tc *TapeWriter) release() {
	tc.epoch.Advance()
	tc.reserved = nil
}

// room makes space in the buffer, flushing it if it is full.
func (tc *TapeWriter) room() (err error) {
	if tc.buf.Available() > 0 {
		return
	}

	return tc.Flush()
}

// Consume buffers one byte, flushing first if the buffer is full.
func (tc *TapeWriter) Consume(item byte) (err error) {
	err = tc.room()
	if err != nil {
		return
	}

	tc.release()
	return tc.buf.WriteByte(item)
}

// Flush writes buffered bytes to Output.
func (tc *TapeWriter) Flush() (err error) {
	err = tc.buf.Flush()
	if err != nil {
		err = &FaultError{Op: "write", Err: err}
	}
	return
}

// Close flushes and then closes Output if it is an io.Closer.
func (tc *TapeWriter) Close(struct{}) (err error) {
	tc.release()
	err = tc.Flush()
	if err != nil {
		return
	}

	return closeIfCloser(tc.Output)
}

// ConsumeFromMany1 buffers as many leading bytes of src as fit.
func (tc *TapeWriter) ConsumeFromMany1(src loaf.Loaf[byte]) (n int, err error) {
	err = tc.room()
	if err != nil {
		return
	}

	tc.release()
	n = min(tc.buf.Available(), src.Len())
	_, err = tc.buf.Write(src.Items()[:n])
	if err != nil {
		n = 0
		return
	}

	src.Clear(n)
	return
}

// ConsumeTo reserves the next free byte of the buffer.
func (tc *TapeWriter) ConsumeTo() (slot ref.Slot[byte], ok bool) {
	_, ok = tc.ConsumeToMany1(1)
	if !ok {
		return
	}

	slot = ref.NewSlot(&tc.reserved[0], &tc.epoch)
	return
}

// DoConsumeTo commits the reserved byte.
func (tc *TapeWriter) DoConsumeTo() (err error) {
	_, err = tc.DoConsumeToMany1(1)
	return
}

// ConsumeToMany1 reserves up to max free bytes of the buffer. A full buffer
// has no slots; Flush makes room.
func (tc *TapeWriter) ConsumeToMany1(max int) (slots ref.Span[byte], ok bool) {
	loaf.MustCount(max)
	n := min(max, tc.buf.Available())
	if n < 1 {
		return
	}

	tc.release()
	tc.reserved = tc.buf.AvailableBuffer()[:n]
	slots = ref.NewSpan(tc.reserved, &tc.epoch)
	ok = true
	return
}

// DoConsumeToMany1 commits the first filled reserved bytes.
func (tc *TapeWriter) DoConsumeToMany1(filled int) (n int, err error) {
	if filled < 1 || filled > len(tc.reserved) {
		err = ErrNoSlot
		return
	}

	committed := tc.reserved[:filled]
	tc.release()
	n, err = tc.buf.Write(committed)
	return
}
