package loaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)

	_, err := New[int]()
	assert.ErrorIs(err, ErrEmpty)

	src := []int{1, 2, 3}
	lf, err := New(src...)
	assert.NoError(err)
	assert.Equal(3, lf.Len())

	// New copies its input.
	src[0] = 9
	assert.Equal(1, lf.At(0))
}

func TestOf_Shares(t *testing.T) {
	assert := assert.New(t)

	_, err := Of([]string{})
	assert.ErrorIs(err, ErrEmpty)

	src := []string{"a", "b"}
	lf, err := Of(src)
	assert.NoError(err)

	lf.Set(1, "z")
	assert.Equal("z", src[1])
	*lf.Ptr(0) = "y"
	assert.Equal([]string{"y", "z"}, lf.Items())
}

func TestMake(t *testing.T) {
	assert := assert.New(t)

	lf := Make[int](4)
	assert.Equal(4, lf.Len())
	assert.Equal([]int{0, 0, 0, 0}, lf.Items())

	assert.Panics(func() { Make[int](0) })
}

func TestLoaf_HeadTail(t *testing.T) {
	assert := assert.New(t)

	lf, _ := New(1, 2, 3, 4)

	head := lf.Head(2)
	assert.Equal([]int{1, 2}, head.Items())
	assert.Panics(func() { lf.Head(0) })

	rest, ok := lf.Tail(3)
	assert.True(ok)
	assert.Equal([]int{4}, rest.Items())

	_, ok = lf.Tail(4)
	assert.False(ok)
}

func TestLoaf_Clear(t *testing.T) {
	assert := assert.New(t)

	lf, _ := New("a", "b", "c")
	lf.Clear(2)
	assert.Equal([]string{"", "", "c"}, lf.Items())
}

func TestLoaf_All(t *testing.T) {
	assert := assert.New(t)

	lf, _ := New(10, 20, 30)

	var seen []int
	for i, v := range lf.All() {
		seen = append(seen, i, v)
		if i == 1 {
			break
		}
	}
	assert.Equal([]int{0, 10, 1, 20}, seen)
}
