// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.starlark.net/starlark"
	"go.uber.org/zap"

	"github.com/ezrec/seqio/producer"
	"github.com/ezrec/seqio/script"
	"github.com/ezrec/seqio/stream"
	"github.com/ezrec/seqio/trace"
)

func newEvalCmd() *cobra.Command {
	var expr string
	var asCBOR bool

	cmd := &cobra.Command{
		Use:   "eval [file.star]",
		Short: "Write the items of a Starlark script's result",
		Long: `eval runs a Starlark script and writes each element of its global
'result' to standard output, one per line, or as a CBOR sequence with --cbor.
With -e the expression is evaluated as the result directly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return
			}

			var filename string
			var src any
			switch {
			case expr != "":
				filename = "expr"
				src = "result = " + expr + "\n"
			case len(args) == 1:
				filename = args[0]
			default:
				return errors.New("eval: need a script file or -e")
			}

			log := newLogger(cfg, cmd.ErrOrStderr())
			defer func() { _ = log.Sync() }()

			sp, err := script.Eval(filename, src, nil)
			if err != nil {
				return
			}
			items := trace.NewProducer[starlark.Value, struct{}](sp, log.Named("script"))

			out := cmd.OutOrStdout()
			if asCBOR {
				var enc *stream.Encoder[any]
				enc, err = stream.NewEncoder[any](out, cfg.Batch)
				if err != nil {
					return
				}
				for v, perr := range producer.All[starlark.Value](items) {
					if perr != nil {
						return perr
					}
					err = enc.Consume(goValue(v))
					if err != nil {
						return
					}
				}
				return enc.Flush()
			}

			tw := stream.NewTapeWriter(out, cfg.Batch)
			count := 0
			for v, perr := range producer.All[starlark.Value](items) {
				if perr != nil {
					return perr
				}
				err = writeBytes(tw, []byte(text(v)+"\n"))
				if err != nil {
					return
				}
				count++
			}
			log.Info("evaluated", zap.String("file", filename), zap.Int("items", count))
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&expr, "expr", "e", "", "expression to use as the result")
	cmd.Flags().BoolVar(&asCBOR, "cbor", false, "write a CBOR sequence instead of text")
	return cmd
}

// text renders v the way print() would.
func text(v starlark.Value) string {
	if s, ok := v.(starlark.String); ok {
		return string(s)
	}
	return v.String()
}

// goValue converts a Starlark value into something CBOR can encode.
func goValue(v starlark.Value) any {
	switch v := v.(type) {
	case starlark.NoneType:
		return nil
	case starlark.Bool:
		return bool(v)
	case starlark.Int:
		if i, ok := v.Int64(); ok {
			return i
		}
		return v.BigInt()
	case starlark.Float:
		return float64(v)
	case starlark.String:
		return string(v)
	case starlark.Bytes:
		return []byte(v)
	case starlark.Indexable:
		list := make([]any, v.Len())
		for i := range list {
			list[i] = goValue(v.Index(i))
		}
		return list
	case *starlark.Dict:
		m := make(map[string]any, v.Len())
		for _, kv := range v.Items() {
			m[fmt.Sprint(goValue(kv[0]))] = goValue(kv[1])
		}
		return m
	default:
		return v.String()
	}
}
