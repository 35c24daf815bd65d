// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command seqcat copies standard input to standard output through a bounded
// queue, and converts between Starlark, CBOR and text item streams.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ezrec/seqio/mem"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "seqcat",
		Short: "Copy standard input to standard output through a bounded queue",
		Long: `seqcat copies standard input to standard output. Bytes are read in
batches into a fixed-capacity queue and drained in place to the output.

Every flag can also be set with a SEQCAT_ environment variable, for example
SEQCAT_CAPACITY=65536 or SEQCAT_LOG_FORMAT=json.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCat,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, toml or json)")
	flags.Int("capacity", mem.QUEUE_DEFAULT_CAPACITY, "queue capacity in items")
	flags.Int("batch", defaultBatch, "items moved per bulk call")
	flags.BoolP("verbose", "v", false, "log every manipulator call to stderr")
	flags.String("log-format", defaultLogFormat, "log format: console or json")

	root.AddCommand(newEvalCmd())
	root.AddCommand(newDecodeCmd())
	return root
}

func runCat(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return
	}

	log := newLogger(cfg, cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()

	total, err := catStream(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, log)
	log.Info("copied", zap.Int("bytes", total))
	return
}
