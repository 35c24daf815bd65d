// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"io"

	"go.uber.org/zap"

	"github.com/ezrec/seqio/consumer"
	"github.com/ezrec/seqio/loaf"
	"github.com/ezrec/seqio/mem"
	"github.com/ezrec/seqio/stream"
	"github.com/ezrec/seqio/trace"
)

// catStream copies in to out through a queue of cfg.Capacity bytes.
func catStream(in io.Reader, out io.Writer, cfg config, log *zap.Logger) (total int, err error) {
	src := trace.NewProducer[byte, struct{}](stream.NewTapeReader(in, cfg.Batch), log.Named("in"))
	dst := trace.NewConsumer[byte, struct{}](stream.NewTapeWriter(out, cfg.Batch), log.Named("out"))
	q := mem.NewQueue[byte](cfg.Capacity)

	return pump(src, dst, q, cfg.Batch, log)
}

// writeBytes pushes all of data into c.
func writeBytes(c consumer.Sink[byte], data []byte) (err error) {
	src, err := loaf.Of(data)
	if err != nil {
		// Nothing to write.
		err = nil
		return
	}

	for {
		var n int
		n, err = consumer.ConsumeFromMany1(c, src)
		if err != nil {
			return
		}

		rest, ok := src.Tail(n)
		if !ok {
			return
		}
		src = rest
	}
}
