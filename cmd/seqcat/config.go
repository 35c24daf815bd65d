// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ezrec/seqio/mem"
)

const (
	defaultBatch     = 512
	defaultLogFormat = "console"
)

// config is the effective configuration after flags, SEQCAT_* environment
// variables and the optional config file are merged.
type config struct {
	Capacity  int
	Batch     int
	Verbose   bool
	LogFormat string
}

// loadConfig resolves the configuration for cmd. Flags set on the command
// line win over the environment, which wins over the config file.
func loadConfig(cmd *cobra.Command) (cfg config, err error) {
	v := viper.New()
	v.SetEnvPrefix("SEQCAT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("capacity", mem.QUEUE_DEFAULT_CAPACITY)
	v.SetDefault("batch", defaultBatch)
	v.SetDefault("verbose", false)
	v.SetDefault("log-format", defaultLogFormat)

	err = v.BindPFlags(cmd.Flags())
	if err != nil {
		return
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		err = v.ReadInConfig()
		if err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				err = fmt.Errorf("read config: %w", err)
				return
			}
			err = nil
		}
	}

	cfg = config{
		Capacity:  v.GetInt("capacity"),
		Batch:     v.GetInt("batch"),
		Verbose:   v.GetBool("verbose"),
		LogFormat: v.GetString("log-format"),
	}

	err = cfg.validate()
	return
}

func (cfg config) validate() error {
	if cfg.Capacity < 1 {
		return fmt.Errorf("capacity %d: must be at least 1", cfg.Capacity)
	}
	if cfg.Batch < 1 {
		return fmt.Errorf("batch %d: must be at least 1", cfg.Batch)
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("log-format %q: must be console or json", cfg.LogFormat)
	}
	return nil
}
