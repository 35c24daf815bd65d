// Package trace wraps producers and consumers to log every call.
package trace

import (
	"go.uber.org/zap"

	"github.com/ezrec/seqio/consumer"
	"github.com/ezrec/seqio/loaf"
	"github.com/ezrec/seqio/producer"
)

// Producer logs the calls made on Inner.
//
// Transfers and internal state changes log at debug level, Stop at info.
type Producer[T, Ex any] struct {
	Inner producer.Producer[T, Ex]
	Log   *zap.Logger
}

var (
	_ producer.Producer[int, struct{}] = (*Producer[int, struct{}])(nil)
	_ producer.SlurpProducer[int]      = (*Producer[int, struct{}])(nil)
	_ producer.ProducerTo[int]         = (*Producer[int, struct{}])(nil)
)

// NewProducer wraps inner. A nil log discards everything.
func NewProducer[T, Ex any](inner producer.Producer[T, Ex], log *zap.Logger) *Producer[T, Ex] {
	if log == nil {
		log = zap.NewNop()
	}

	return &Producer[T, Ex]{Inner: inner, Log: log}
}

func (tp *Producer[T, Ex]) Produce() (item T, err error) {
	item, err = tp.Inner.Produce()
	if err != nil {
		tp.Log.Debug("produce", zap.Error(err))
		return
	}

	tp.Log.Debug("produce", zap.Any("item", item))
	return
}

func (tp *Producer[T, Ex]) Slurp() (err error) {
	err = tp.Inner.Slurp()
	tp.Log.Debug("slurp", zap.Error(err))
	return
}

// SlurpProduce forwards to Inner's own SlurpProduce when it has one.
func (tp *Producer[T, Ex]) SlurpProduce() (item T, err error) {
	item, err = producer.SlurpProduce[T](tp.Inner)
	if err != nil {
		tp.Log.Debug("slurp_produce", zap.Error(err))
		return
	}

	tp.Log.Debug("slurp_produce", zap.Any("item", item))
	return
}

// ProduceTo forwards to Inner's own ProduceTo when it has one.
func (tp *Producer[T, Ex]) ProduceTo(dst loaf.Loaf[T]) (n int, err error) {
	n, err = producer.ProduceTo[T](tp.Inner, dst)
	tp.Log.Debug("produce_to", zap.Int("n", n), zap.Int("max", dst.Len()), zap.Error(err))
	return
}

func (tp *Producer[T, Ex]) Stop(ex Ex) (err error) {
	err = tp.Inner.Stop(ex)
	tp.Log.Info("stop", zap.Any("reason", ex), zap.Error(err))
	return
}

// Consumer logs the calls made on Inner.
//
// Transfers and internal state changes log at debug level, Close at info.
type Consumer[T, Ex any] struct {
	Inner consumer.Consumer[T, Ex]
	Log   *zap.Logger
}

var (
	_ consumer.Consumer[int, struct{}] = (*Consumer[int, struct{}])(nil)
	_ consumer.ConsumerFromMany1[int]  = (*Consumer[int, struct{}])(nil)
)

// NewConsumer wraps inner. A nil log discards everything.
func NewConsumer[T, Ex any](inner consumer.Consumer[T, Ex], log *zap.Logger) *Consumer[T, Ex] {
	if log == nil {
		log = zap.NewNop()
	}

	return &Consumer[T, Ex]{Inner: inner, Log: log}
}

func (tc *Consumer[T, Ex]) Consume(item T) (err error) {
	err = tc.Inner.Consume(item)
	tc.Log.Debug("consume", zap.Any("item", item), zap.Error(err))
	return
}

func (tc *Consumer[T, Ex]) Flush() (err error) {
	err = tc.Inner.Flush()
	tc.Log.Debug("flush", zap.Error(err))
	return
}

// ConsumeFromMany1 forwards to Inner's own ConsumeFromMany1 when it has
// one.
func (tc *Consumer[T, Ex]) ConsumeFromMany1(src loaf.Loaf[T]) (n int, err error) {
	n, err = consumer.ConsumeFromMany1[T](tc.Inner, src)
	tc.Log.Debug("consume_from", zap.Int("n", n), zap.Int("max", src.Len()), zap.Error(err))
	return
}

func (tc *Consumer[T, Ex]) Close(ex Ex) (err error) {
	err = tc.Inner.Close(ex)
	tc.Log.Info("close", zap.Any("reason", ex), zap.Error(err))
	return
}
