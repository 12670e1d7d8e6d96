package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vertexrank/centrality"
	"github.com/katalvlaran/vertexrank/config"
	"github.com/katalvlaran/vertexrank/pipeline"
	"github.com/katalvlaran/vertexrank/report"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vertexrank <edge-file> [metric] [alpha]",
		Short: "Rank graph vertices by centrality, per connected component",
		Long: `vertexrank reads an undirected edge list (whitespace-separated integer
pairs), splits it into connected components and prints the top vertices of
each component by the requested centrality measure.

Metrics: degree, closeness, betweenness, katz. Katz needs --alpha (or the
third positional argument).

Settings may also come from a config file (--config) or VERTEXRANK_*
environment variables; flags and positional arguments take precedence.`,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	f := cmd.Flags()
	f.String("config", "", "config file (yaml, json or toml)")
	f.String("input", "", "edge-list file (same as the first argument)")
	f.StringSliceP("metric", "m", nil, "centrality measure, repeatable (degree|closeness|betweenness|katz)")
	f.Float64P("alpha", "a", 0, "Katz attenuation factor")
	f.IntP("top", "k", centrality.DefaultTopK, "vertices reported per component")
	f.IntP("workers", "w", 0, "concurrent computations (default: number of CPUs)")
	f.Duration("timeout", 0, "deadline for each single computation, e.g. 30s (0: none)")
	f.String("log-level", "info", "log level (trace|debug|info|warn|error)")
	f.String("log-format", "console", "log format (console|json)")
	f.Bool("scores", false, "print each vertex's score next to its label")
	f.Bool("summary", false, "print run totals after the report")

	return cmd
}

// initConfig layers defaults, config file, environment, flags and finally
// the positional arguments.
func initConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		if err := cfg.LoadFromFile(cfgFile); err != nil {
			return nil, err
		}
	}
	if err := cfg.BindFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Set(config.KeyInput, args[0])
	}
	if len(args) > 1 {
		cfg.Set(config.KeyMetrics, []string{args[1]})
	}
	if len(args) > 2 {
		alpha, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return nil, fmt.Errorf("alpha %q: %w", args[2], centrality.ErrBadAlpha)
		}
		cfg.Set(config.KeyAlpha, alpha)
	}

	return cfg, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := initConfig(cmd, args)
	if err != nil {
		return err
	}
	if cfg.Input() == "" {
		return cmd.Help()
	}

	log := cfg.CreateLogger()
	if used := cfg.ConfigFileUsed(); used != "" {
		log.Debug().Str("file", used).Msg("config loaded")
	}

	res, err := pipeline.Run(cmd.Context(), pipeline.Settings{
		Input:   cfg.Input(),
		Metrics: cfg.Metrics(),
		Alpha:   cfg.Alpha(),
		TopK:    cfg.TopK(),
		Workers: cfg.Workers(),
		Timeout: cfg.Timeout(),
	}, log)
	if err != nil {
		return err
	}

	var opts []report.Option
	if on, _ := cmd.Flags().GetBool("scores"); on {
		opts = append(opts, report.WithScores())
	}
	if on, _ := cmd.Flags().GetBool("summary"); on {
		opts = append(opts, report.WithSummary())
	}

	return report.Write(cmd.OutOrStdout(), res, opts...)
}
