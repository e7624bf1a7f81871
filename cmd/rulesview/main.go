// Package main provides the rulesview binary: it serves the battle profile
// and FAQ pages over HTTP or writes them out as a static site.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/meur/rulesview/internal/config"
	"github.com/meur/rulesview/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	Version = "0.1.0"
	appName = "rulesview"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Battle profile and FAQ viewer",
		Long: `Rulesview renders extracted battle profile and FAQ datasets as
browsable pages: army rosters, regiments of renown, universal
manifestations and a deep-linkable FAQ.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCmd(), buildCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

// dataFlags are the dataset flags shared by serve and build
type dataFlags struct {
	configPath     string
	battleProfiles string
	faq            string
	overlays       string
	logLevel       string
}

func (f *dataFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&f.battleProfiles, "battle-profiles", "", "Battle profile dataset (path or URL)")
	cmd.Flags().StringVar(&f.faq, "faq", "", "FAQ dataset (path or URL)")
	cmd.Flags().StringVar(&f.overlays, "overlays", "", "Directory of battle profile overlays")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// load layers the config file, environment and changed flags
func (f *dataFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("battle-profiles") {
		cfg.Data.BattleProfiles = f.battleProfiles
	}
	if flags.Changed("faq") {
		cfg.Data.FAQ = f.faq
	}
	if flags.Changed("overlays") {
		cfg.Data.OverlayDir = f.overlays
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("app", appName)), nil
}
