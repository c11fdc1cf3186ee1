package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/hupe1980/zof/logging"
	"github.com/hupe1980/zof/server"
	"github.com/hupe1980/zof/solver"
)

func runServe(_ *cobra.Command, _ []string) error {
	cfg := server.DefaultConfig()

	switch {
	case flagConfig != "":
		loaded, err := server.LoadConfig(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	default:
		// An adjacent config.yaml is picked up when present, flag-less.
		if _, err := os.Stat("config.yaml"); err == nil {
			loaded, err := server.LoadConfig("config.yaml")
			if err != nil {
				return err
			}
			cfg = loaded
		}
	}

	if flagAddr != "" {
		cfg.Addr = flagAddr
	}
	if rootCmd.PersistentFlags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if rootCmd.PersistentFlags().Changed("log-format") {
		cfg.LogFormat = flagLogFormat
	}

	logger := logging.NewSlogLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, false)

	engine := solver.New(func(o *solver.Options) {
		o.Logger = logger.WithComponent("solver")
	})

	srv := server.New(engine, func(o *server.Options) {
		o.Logger = logger.WithComponent("server")
		o.Mode = gin.ReleaseMode
		o.Defaults = cfg.Defaults
	})

	return srv.Run(cfg.Addr)
}
