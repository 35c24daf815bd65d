package stream

import (
	"bytes"
	"testing"

	"github.com/ezrec/seqio/producer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X int
	Y int
}

func TestCodec_Sequence(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	enc, err := NewEncoder[point](&buf, 0)
	require.NoError(t, err)

	assert.NoError(enc.Consume(point{X: 1, Y: 2}))
	assert.NoError(enc.Consume(point{X: -3}))
	assert.Equal(0, buf.Len())
	assert.NoError(enc.Close(struct{}{}))

	dec, err := NewDecoder[point](&buf)
	require.NoError(t, err)

	items, err := producer.Collect[point](dec)
	assert.NoError(err)
	assert.Equal([]point{{X: 1, Y: 2}, {X: -3}}, items)

	_, err = dec.Produce()
	assert.ErrorIs(err, producer.ErrExhausted)
}

func TestEncoder_Canonical(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	enc, err := NewEncoder[map[string]int](&buf, 0)
	require.NoError(t, err)

	assert.NoError(enc.Consume(map[string]int{"b": 1, "a": 2}))
	assert.NoError(enc.Flush())
	assert.Equal([]byte{0xa2, 0x61, 'a', 0x02, 0x61, 'b', 0x01}, buf.Bytes())
}

func TestEncoder_Fault(t *testing.T) {
	assert := assert.New(t)

	enc, err := NewEncoder[int](brokenWriter{}, 2)
	require.NoError(t, err)

	assert.NoError(enc.Consume(1))
	assert.Equal(1, enc.Buffered())

	err = enc.Flush()
	var fault *FaultError
	assert.ErrorAs(err, &fault)
	assert.ErrorIs(err, errBroken)
}

func TestEncoder_Unencodable(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	enc, err := NewEncoder[chan int](&buf, 0)
	require.NoError(t, err)

	err = enc.Consume(make(chan int))
	var fault *FaultError
	assert.ErrorAs(err, &fault)
	assert.Equal("encode", fault.Op)
	assert.Equal(0, enc.Buffered())
}

func TestDecoder_Truncated(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	enc, err := NewEncoder[string](&buf, 0)
	require.NoError(t, err)
	assert.NoError(enc.Consume("hello"))
	assert.NoError(enc.Flush())

	data := buf.Bytes()
	dec, err := NewDecoder[string](bytes.NewReader(data[:len(data)-1]))
	require.NoError(t, err)

	_, err = dec.Produce()
	var fault *FaultError
	assert.ErrorAs(err, &fault)
	assert.Equal("decode", fault.Op)
	assert.NotErrorIs(err, producer.ErrExhausted)
}

func TestDecoder_Empty(t *testing.T) {
	assert := assert.New(t)

	dec, err := NewDecoder[int](&bytes.Buffer{})
	require.NoError(t, err)
	assert.NoError(dec.Slurp())

	_, err = dec.Produce()
	assert.ErrorIs(err, producer.ErrExhausted)
	assert.NoError(dec.Stop(struct{}{}))
}
