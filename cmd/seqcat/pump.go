// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"

	"go.uber.org/zap"

	"github.com/ezrec/seqio/consumer"
	"github.com/ezrec/seqio/loaf"
	"github.com/ezrec/seqio/mem"
	"github.com/ezrec/seqio/producer"
)

// pump moves every item of src into dst through q, alternating batched
// reads and in-place drains. dst is flushed at the end but not closed.
func pump[T any](src producer.Producer[T, struct{}], dst consumer.Consumer[T, struct{}], q *mem.Queue[T], batch int, log *zap.Logger) (total int, err error) {
	buf := loaf.Make[T](batch)
	eof := false

	for {
		if !eof && q.Free() > 0 {
			var n int
			n, err = producer.ProduceTo(src, buf.Head(min(batch, q.Free())))
			switch {
			case errors.Is(err, producer.ErrExhausted):
				eof = true
				err = q.Close(struct{}{})
			case err == nil:
				_, err = q.ConsumeFromMany1(buf.Head(n))
			}
			if err != nil {
				return
			}
		}

		var window loaf.Loaf[T]
		window, err = q.ProduceFrom()
		if errors.Is(err, mem.ErrEmpty) {
			continue
		}
		if errors.Is(err, producer.ErrExhausted) {
			break
		}
		if err != nil {
			return
		}

		var n int
		n, err = consumer.ConsumeFromMany1(dst, window)
		if err != nil {
			return
		}
		q.DoProduceFrom(n)
		total += n
	}

	log.Debug("pump done", zap.Int("total", total))
	err = dst.Flush()
	return
}
