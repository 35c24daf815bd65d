// Package script adapts Starlark values to producers and consumers.
package script

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/seqio/consumer"
	"github.com/ezrec/seqio/loaf"
	"github.com/ezrec/seqio/producer"
)

// Producer yields the elements of a Starlark iterable.
type Producer struct {
	iter starlark.Iterator
	done bool
}

var _ producer.Producer[starlark.Value, struct{}] = (*Producer)(nil)

// NewProducer starts iterating it. While the producer is live a list being
// iterated cannot be modified.
func NewProducer(it starlark.Iterable) *Producer {
	return &Producer{iter: it.Iterate()}
}

// finish releases the iterator.
func (sp *Producer) finish() {
	if sp.done {
		return
	}

	sp.iter.Done()
	sp.done = true
}

// Produce yields the next element.
func (sp *Producer) Produce() (item starlark.Value, err error) {
	if sp.done {
		err = ErrStopped
		return
	}

	if !sp.iter.Next(&item) {
		sp.finish()
		err = producer.ErrExhausted
	}
	return
}

func (sp *Producer) Slurp() (err error) {
	if sp.done {
		err = ErrStopped
	}
	return
}

// Stop releases the iterator.
func (sp *Producer) Stop(struct{}) error {
	sp.finish()
	return nil
}

// Consumer appends to a Starlark list.
type Consumer struct {
	List *starlark.List

	closed bool
}

var (
	_ consumer.Consumer[starlark.Value, struct{}] = (*Consumer)(nil)
	_ consumer.ConsumerFromMany1[starlark.Value]  = (*Consumer)(nil)
)

// NewConsumer returns a consumer appending to a new empty list.
func NewConsumer() *Consumer {
	return &Consumer{List: starlark.NewList(nil)}
}

// Consume appends item. A frozen or iterated list refuses it.
func (sc *Consumer) Consume(item starlark.Value) (err error) {
	if sc.closed {
		err = ErrClosed
		return
	}

	return sc.List.Append(item)
}

func (sc *Consumer) Flush() error {
	return nil
}

// Close freezes the list.
func (sc *Consumer) Close(struct{}) error {
	sc.closed = true
	sc.List.Freeze()
	return nil
}

// ConsumeFromMany1 appends the leading items of src, stopping at the first
// refusal.
func (sc *Consumer) ConsumeFromMany1(src loaf.Loaf[starlark.Value]) (n int, err error) {
	for i := range src.Len() {
		err = sc.Consume(src.At(i))
		if err != nil {
			break
		}
		n++
	}

	if n > 0 {
		err = nil
		src.Clear(n)
	}
	return
}

// Eval executes src and returns a producer over its global named result.
// The predeclared values are visible to the script.
func Eval(filename string, src any, predeclared starlark.StringDict) (sp *Producer, err error) {
	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, &thread, filename, src, predeclared)
	if err != nil {
		return
	}

	result, ok := globals["result"]
	if !ok {
		err = ErrNoResult
		return
	}

	it, ok := result.(starlark.Iterable)
	if !ok {
		err = ErrNotIterable(result.Type())
		return
	}

	sp = NewProducer(it)
	return
}
