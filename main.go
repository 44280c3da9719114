package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"hostprobe/config"
	"hostprobe/logger"
	"hostprobe/models"
	"hostprobe/probe"

	"github.com/spf13/cobra"
)

// Build info
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile  string
		asJSON   bool
		packages []string
		root     string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:          "hostprobe",
		Short:        "Print a summary of this machine",
		Version:      fmt.Sprintf("%s (%s) built on %s", version, commit, date),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var envFiles []string
			if envFile != "" {
				envFiles = append(envFiles, envFile)
			}
			cfg, envErr := config.Load(envFiles...)

			// Flags win over config
			if cmd.Flags().Changed("json") {
				cfg.Output = config.OutputText
				if asJSON {
					cfg.Output = config.OutputJSON
				}
			}
			if cmd.Flags().Changed("packages") {
				cfg.Packages = packages
			}
			if cmd.Flags().Changed("root") {
				cfg.Root = root
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			log := logger.Init(cmd.ErrOrStderr(), cfg.LogLevel)
			if envErr != nil {
				log.Debug().Err(envErr).Msg("no .env file loaded, using environment variables")
			}
			ctx := log.WithContext(cmd.Context())
			return run(ctx, cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "dotenv file to load instead of ./.env")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	cmd.Flags().StringSliceVar(&packages, "packages", nil, "package managers to count (default: detected)")
	cmd.Flags().StringVar(&root, "root", "", "probe a filesystem tree instead of the live system")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	return cmd
}

// run collects the summary and writes it in the configured format
func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	prober := probe.NewWithRoot(cfg.Root)

	managers := cfg.Packages
	if len(managers) == 0 && cfg.Root == "" {
		managers = probe.DetectManagers(ctx)
	}

	summary := probe.Collect(ctx, prober, managers)
	return write(out, summary, cfg.Output)
}

func write(out io.Writer, summary *models.Summary, format string) error {
	if format == config.OutputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	for _, f := range summary.Fields() {
		if _, err := fmt.Fprintf(out, "%s: %s\n", f.Label, f.Value); err != nil {
			return err
		}
	}
	return nil
}
