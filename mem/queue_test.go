package mem

import (
	"testing"

	"github.com/ezrec/seqio/consumer"
	"github.com/ezrec/seqio/loaf"
	"github.com/ezrec/seqio/producer"
	"github.com/ezrec/seqio/ref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[T any](t *testing.T, q *Queue[T]) (items []T) {
	t.Helper()
	for q.Len() > 0 {
		item, err := q.Produce()
		require.NoError(t, err)
		items = append(items, item)
	}
	return
}

func TestQueue_FIFO(t *testing.T) {
	assert := assert.New(t)

	q := NewQueue[int](3)
	assert.NoError(q.Consume(1))
	assert.NoError(q.Consume(2))
	assert.NoError(q.Consume(3))
	assert.ErrorIs(q.Consume(4), ErrFull)

	item, err := q.Produce()
	assert.NoError(err)
	assert.Equal(1, item)

	// Wrap around.
	assert.NoError(q.Consume(4))
	assert.Equal([]int{2, 3, 4}, drain(t, q))
}

func TestQueue_Atomicity(t *testing.T) {
	assert := assert.New(t)

	q := NewQueue[string](2)
	_, err := q.Produce()
	assert.ErrorIs(err, ErrEmpty)
	assert.Equal(0, q.Len())
	assert.Equal(2, q.Free())

	assert.NoError(q.Consume("a"))
	assert.NoError(q.Consume("b"))
	assert.ErrorIs(q.Consume("c"), ErrFull)
	assert.Equal(2, q.Len())
	assert.Equal([]string{"a", "b"}, drain(t, q))
}

func TestQueue_StopClose(t *testing.T) {
	assert := assert.New(t)

	q := NewQueue[int](4)
	assert.NoError(q.Consume(7))
	assert.NoError(q.Close(struct{}{}))
	assert.ErrorIs(q.Consume(8), ErrStopped)
	assert.ErrorIs(q.Flush(), ErrStopped)

	// Closed queues drain, then report exhaustion.
	item, err := q.Produce()
	assert.NoError(err)
	assert.Equal(7, item)
	_, err = q.Produce()
	assert.ErrorIs(err, producer.ErrExhausted)

	assert.NoError(q.Stop(struct{}{}))
	assert.ErrorIs(q.Slurp(), ErrStopped)
	_, err = q.Produce()
	assert.ErrorIs(err, ErrStopped)

	// Rewind empties the queue but neither side comes back.
	q.Rewind()
	assert.Equal(0, q.Len())
	assert.ErrorIs(q.Consume(1), ErrStopped)
	assert.ErrorIs(q.Slurp(), ErrStopped)
	_, err = q.Produce()
	assert.ErrorIs(err, ErrStopped)
}

func TestQueue_Rewind(t *testing.T) {
	assert := assert.New(t)

	q := &Queue[int]{}
	q.Rewind()
	assert.Equal(QUEUE_DEFAULT_CAPACITY, q.Capacity)
	assert.Equal(QUEUE_DEFAULT_CAPACITY, q.Free())

	q = NewQueue[int](2)
	assert.NoError(q.Consume(1))
	q.Rewind()
	assert.Equal(0, q.Len())
	assert.NoError(q.Consume(2))
	assert.Equal([]int{2}, drain(t, q))
}

func TestQueue_SlurpProduceEquivalence(t *testing.T) {
	assert := assert.New(t)

	a := NewQueue[int](2)
	b := NewQueue[int](2)
	for _, q := range []*Queue[int]{a, b} {
		assert.NoError(q.Consume(10))
	}

	x, errX := producer.SlurpProduce[int](a)
	assert.NoError(b.Slurp())
	y, errY := b.Produce()
	assert.Equal(y, x)
	assert.Equal(errY, errX)
	assert.Equal(b.Len(), a.Len())
}

func TestQueue_ConsumeFromMany1(t *testing.T) {
	assert := assert.New(t)

	q := NewQueue[string](3)
	src, err := loaf.New("a", "b", "c", "d")
	assert.NoError(err)

	n, err := q.ConsumeFromMany1(src)
	assert.NoError(err)
	assert.Equal(3, n)
	assert.Equal([]string{"", "", "", "d"}, src.Items())

	rest, ok := src.Tail(n)
	assert.True(ok)
	_, err = q.ConsumeFromMany1(rest)
	assert.ErrorIs(err, ErrFull)
	assert.Equal("d", rest.At(0))

	assert.Equal([]string{"a", "b", "c"}, drain(t, q))
}

func TestQueue_ConsumeFrom(t *testing.T) {
	assert := assert.New(t)

	q := NewQueue[int](1)
	src := 3
	assert.NoError(consumer.ConsumeFrom[int](q, &src))
	assert.Equal(0, src)

	src = 4
	assert.ErrorIs(consumer.ConsumeFrom[int](q, &src), ErrFull)
	assert.Equal(4, src)
}

func TestQueue_ConsumeTo(t *testing.T) {
	assert := assert.New(t)

	direct := NewQueue[int](1)
	viaSlot := NewQueue[int](1)

	assert.NoError(direct.Consume(5))

	slot, ok := viaSlot.ConsumeTo()
	assert.True(ok)
	slot.Set(5)
	assert.NoError(viaSlot.DoConsumeTo())
	assert.False(slot.Valid())

	assert.Equal(direct.Len(), viaSlot.Len())
	assert.Equal(drain(t, direct), drain(t, viaSlot))

	// Full: no slot, nothing changes.
	assert.NoError(viaSlot.Consume(6))
	_, ok = viaSlot.ConsumeTo()
	assert.False(ok)
	assert.Equal(1, viaSlot.Len())

	// Commit without a reservation.
	assert.ErrorIs(viaSlot.DoConsumeTo(), ErrNotReserved)
	assert.Equal(1, viaSlot.Len())
}

func TestQueue_ConsumeTo_StaleAfterCall(t *testing.T) {
	assert := assert.New(t)

	q := NewQueue[int](2)
	slot, ok := q.ConsumeTo()
	assert.True(ok)
	slot.Set(7)

	// A failing call leaves the reservation in place.
	_, err := q.Produce()
	assert.ErrorIs(err, ErrEmpty)
	_, err = q.ProduceFrom()
	assert.ErrorIs(err, ErrEmpty)
	assert.True(slot.Valid())
	assert.NoError(q.DoConsumeTo())
	assert.Equal(1, q.Len())

	// A successful one ends it.
	slot, ok = q.ConsumeTo()
	assert.True(ok)
	item, err := q.Produce()
	assert.NoError(err)
	assert.Equal(7, item)
	assert.PanicsWithValue(ref.ErrStale, func() { slot.Set(1) })
	assert.ErrorIs(q.DoConsumeTo(), ErrNotReserved)
	assert.Equal(0, q.Len())
}

func TestQueue_FailedCallKeepsReservation(t *testing.T) {
	assert := assert.New(t)

	q := NewQueue[string](2)
	slots, ok := q.ConsumeToMany1(2)
	assert.True(ok)
	slots.Set(0, "a")
	slots.Set(1, "b")

	_, err := q.ProduceTo(loaf.Make[string](2))
	assert.ErrorIs(err, ErrEmpty)
	assert.NoError(q.Slurp())
	assert.True(slots.Valid())

	n, err := q.DoConsumeToMany1(2)
	assert.NoError(err)
	assert.Equal(2, n)

	assert.ErrorIs(q.Consume("x"), ErrFull)
	item, err := q.Produce()
	assert.NoError(err)
	assert.Equal("a", item)
	slot, ok := q.ConsumeTo()
	assert.True(ok)
	slot.Set("c")
	assert.NoError(q.DoConsumeTo())
	assert.ErrorIs(q.Consume("d"), ErrFull)
	assert.Equal([]string{"b", "c"}, drain(t, q))
}

func TestQueue_ConsumeToMany1(t *testing.T) {
	assert := assert.New(t)

	q := NewQueue[int](4)
	assert.NoError(q.Consume(0))
	assert.NoError(q.Consume(0))
	_, err := q.Produce()
	assert.NoError(err)

	// Write index is 2: only two contiguous slots before the wrap.
	slots, ok := q.ConsumeToMany1(8)
	assert.True(ok)
	assert.Equal(2, slots.Len())
	slots.Set(0, 1)
	slots.Set(1, 2)

	n, err := consumer.DoConsumeToMany1Flush[int](q, 1)
	assert.NoError(err)
	assert.Equal(1, n)
	assert.Equal(2, q.Len())

	_, err = q.DoConsumeToMany1(1)
	assert.ErrorIs(err, ErrNotReserved)

	assert.Equal([]int{0, 1}, drain(t, q))
}

func TestQueue_ProduceTo(t *testing.T) {
	assert := assert.New(t)

	q := NewQueue[int](4)
	for i := range 3 {
		assert.NoError(q.Consume(i))
	}

	dst := loaf.Make[int](2)
	n, err := producer.ProduceTo[int](q, dst)
	assert.NoError(err)
	assert.Equal(2, n)
	assert.Equal([]int{0, 1}, dst.Items())

	n, err = q.ProduceTo(dst)
	assert.NoError(err)
	assert.Equal(1, n)
	assert.Equal(2, dst.At(0))

	_, err = q.ProduceTo(dst)
	assert.ErrorIs(err, ErrEmpty)
}

func TestQueue_ProduceFrom(t *testing.T) {
	assert := assert.New(t)

	q := NewQueue[int](3)
	for i := range 3 {
		assert.NoError(q.Consume(i))
	}
	_, err := q.Produce()
	assert.NoError(err)
	assert.NoError(q.Consume(3))

	// Contents 1, 2 | 3 with the read index at 1: the window stops at the wrap.
	window, err := q.ProduceFrom()
	assert.NoError(err)
	assert.Equal([]int{1, 2}, window.Items())
	assert.Equal(3, q.Len())

	q.DoProduceFrom(2)
	assert.Equal(1, q.Len())
	assert.Panics(func() { q.DoProduceFrom(2) })

	dst := loaf.Make[int](4)
	n, err := producer.CopyFrom[int](q, dst)
	assert.NoError(err)
	assert.Equal(1, n)
	assert.Equal(3, dst.At(0))
}
