package main

import (
	"context"
	"os"
	"os/signal"

	"energy-econ/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:          "cli",
		Short:        "Methane synthesis and greenhouse energy cost models",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config (optional)")

	loadConfig := func() (*config.Config, error) {
		return config.Load(cfgPath)
	}

	rootCmd.AddCommand(methaneCmd(loadConfig))
	rootCmd.AddCommand(greenhouseCmd(loadConfig))
	rootCmd.AddCommand(thermalCmd(loadConfig))
	rootCmd.AddCommand(solarCmd())
	rootCmd.AddCommand(ghcnCmd(loadConfig))
	return rootCmd
}

type configLoader func() (*config.Config, error)
