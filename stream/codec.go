package stream

import (
	"bufio"
	"io"

	cbor "github.com/fxamacker/cbor/v2"

	"github.com/ezrec/seqio/consumer"
	"github.com/ezrec/seqio/producer"
)

// Decoder produces the CBOR items of an io.Reader.
type Decoder[T any] struct {
	Input io.Reader

	dec *cbor.Decoder
}

var _ producer.Producer[int, struct{}] = (*Decoder[int])(nil)

// NewDecoder returns a decoder reading a sequence of CBOR items from input.
func NewDecoder[T any](input io.Reader) (dc *Decoder[T], err error) {
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return
	}

	dc = &Decoder[T]{
		Input: input,
		dec:   dm.NewDecoder(input),
	}
	return
}

// Produce decodes the next item. A truncated or malformed item is a
// fault.
func (dc *Decoder[T]) Produce() (item T, err error) {
	var value T
	err = dc.dec.Decode(&value)
	if err != nil {
		err = signal("decode", err)
		return
	}

	item = value
	return
}

// Slurp does nothing; the decoder reads on demand.
func (dc *Decoder[T]) Slurp() error {
	return nil
}

// Stop closes Input if it is an io.Closer.
func (dc *Decoder[T]) Stop(struct{}) error {
	return closeIfCloser(dc.Input)
}

// Encoder consumes items as a sequence of deterministic CBOR encodings.
type Encoder[T any] struct {
	Output io.Writer

	mode cbor.EncMode
	buf  *bufio.Writer
}

var _ consumer.Consumer[int, struct{}] = (*Encoder[int])(nil)

// NewEncoder returns an encoder writing to output through a buffer of size
// bytes, or TAPE_DEFAULT_SIZE if size < 1.
func NewEncoder[T any](output io.Writer, size int) (ec *Encoder[T], err error) {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return
	}

	if size < 1 {
		size = TAPE_DEFAULT_SIZE
	}

	ec = &Encoder[T]{
		Output: output,
		mode:   em,
		buf:    bufio.NewWriterSize(output, size),
	}
	return
}

// Buffered is the number of encoded bytes not yet written to Output.
func (ec *Encoder[T]) Buffered() int {
	return ec.buf.Buffered()
}

// Consume encodes item. Pending bytes are flushed first when the encoding
// does not fit the buffer.
func (ec *Encoder[T]) Consume(item T) (err error) {
	data, err := ec.mode.Marshal(item)
	if err != nil {
		err = &FaultError{Op: "encode", Err: err}
		return
	}

	if len(data) > ec.buf.Available() && ec.buf.Buffered() > 0 {
		err = ec.Flush()
		if err != nil {
			return
		}
	}

	_, err = ec.buf.Write(data)
	if err != nil {
		err = &FaultError{Op: "write", Err: err}
	}
	return
}

// Flush writes pending encodings to Output.
func (ec *Encoder[T]) Flush() (err error) {
	err = ec.buf.Flush()
	if err != nil {
		err = &FaultError{Op: "write", Err: err}
	}
	return
}

// Close flushes and then closes Output if it is an io.Closer.
func (ec *Encoder[T]) Close(struct{}) (err error) {
	err = ec.Flush()
	if err != nil {
		return
	}

	return closeIfCloser(ec.Output)
}
