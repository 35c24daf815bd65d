package manip

import (
	"errors"
	"testing"

	"github.com/ezrec/seqio/loaf"
	"github.com/ezrec/seqio/ref"
	"github.com/stretchr/testify/assert"
)

var errEdge = errors.New("edge")

// dial steps within [0, limit] one notch at a time.
type dial struct {
	pos   int
	limit int
}

func (d *dial) Next() (err error) {
	if d.pos >= d.limit {
		err = errEdge
		return
	}
	d.pos++
	return
}

func (d *dial) Prev() (err error) {
	if d.pos <= 0 {
		err = errEdge
		return
	}
	d.pos--
	return
}

var _ Cursor = (*dial)(nil)

func TestStepNext_Default(t *testing.T) {
	assert := assert.New(t)

	d := &dial{limit: 5}
	moved, err := StepNext(d, 4)
	assert.NoError(err)
	assert.Equal(1, moved)
	assert.Equal(1, d.pos)

	moved, err = StepPrev(d, 4)
	assert.NoError(err)
	assert.Equal(1, moved)

	_, err = StepPrev(d, 1)
	assert.ErrorIs(err, errEdge)
	assert.Equal(0, d.pos)

	assert.Panics(func() { StepNext(d, 0) })
}

// jumper overrides the bulk step.
type jumper struct {
	dial
}

func (j *jumper) NextMany1(amount int) (moved int, err error) {
	moved = min(amount, j.limit-j.pos)
	if moved == 0 {
		err = errEdge
		return
	}
	j.pos += moved
	return
}

func TestStepNext_Override(t *testing.T) {
	assert := assert.New(t)

	j := &jumper{dial{limit: 5}}
	moved, err := StepNext(j, 4)
	assert.NoError(err)
	assert.Equal(4, moved)

	moved, err = StepNext(j, 4)
	assert.NoError(err)
	assert.Equal(1, moved)

	_, err = StepNext(j, 1)
	assert.ErrorIs(err, errEdge)
	assert.Equal(5, j.pos)
}

// stash records the items written through each reference form.
type stash struct {
	kept []*int
	seen []int
}

func (s *stash) WriteRefInLong(item *int) error {
	s.kept = append(s.kept, item)
	return nil
}

func (s *stash) WriteRefIn(item ref.Ref[int]) error {
	s.seen = append(s.seen, item.Get())
	return nil
}

func (s *stash) WriteRefInLongMany1(items loaf.Loaf[int]) (int, error) {
	for i := range items.Len() {
		s.kept = append(s.kept, items.Ptr(i))
	}
	return items.Len(), nil
}

func (s *stash) WriteRefInMany1(items ref.Ref[loaf.Loaf[int]]) (int, error) {
	lf := items.Get()
	s.seen = append(s.seen, lf.Items()...)
	return lf.Len(), nil
}

var _ WriteRefInMany1[int] = (*stash)(nil)

func TestWriteRefIn_Lifetimes(t *testing.T) {
	assert := assert.New(t)

	s := &stash{}
	assert.NoError(WriteBorrowed[int](s, 3))

	items, _ := loaf.New(4, 5)
	n, err := WriteRefInAll[int](s, items)
	assert.NoError(err)
	assert.Equal(2, n)
	assert.Equal([]int{3, 4, 5}, s.seen)

	n, err = s.WriteRefInLongMany1(items)
	assert.NoError(err)
	assert.Equal(2, n)
	items.Set(0, 40)
	assert.Equal(40, *s.kept[0])
}
