// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ezrec/seqio/producer"
	"github.com/ezrec/seqio/stream"
	"github.com/ezrec/seqio/trace"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode",
		Short: "Write each item of a CBOR sequence as a line of text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return
			}

			log := newLogger(cfg, cmd.ErrOrStderr())
			defer func() { _ = log.Sync() }()

			dec, err := stream.NewDecoder[any](cmd.InOrStdin())
			if err != nil {
				return
			}
			items := trace.NewProducer[any, struct{}](dec, log.Named("cbor"))

			tw := stream.NewTapeWriter(cmd.OutOrStdout(), cfg.Batch)
			count := 0
			for item, perr := range producer.All[any](items) {
				if perr != nil {
					return perr
				}
				err = writeBytes(tw, []byte(fmt.Sprintln(item)))
				if err != nil {
					return
				}
				count++
			}
			log.Info("decoded", zap.Int("items", count))
			return tw.Flush()
		},
	}
}
