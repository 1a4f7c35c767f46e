package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/bestpath/core"
	"github.com/katalvlaran/bestpath/internal/logging"
	"github.com/katalvlaran/bestpath/internal/metrics"
	"github.com/katalvlaran/bestpath/search"
)

// rootOpts carries the resolved configuration and logger to subcommands.
type rootOpts struct {
	envFile string
	flags   Config
	cfg     Config
	logger  *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOpts{logger: logging.DiscardLogger()}

	cmd := &cobra.Command{
		Use:   "bestpath",
		Short: "Shortest paths with Dijkstra and A*",
		Long: `bestpath finds least-cost paths on occupancy grids (A* with the
Manhattan heuristic) and computes single-source distances on weighted
edge lists (Dijkstra).

Settings are read from BESTPATH_* environment variables, optionally
seeded from a .env file, and overridden by flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.complete(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "Load environment variables from this file if it exists")
	flags.StringVar(&opts.flags.LogLevel, "log-level", "info", "Minimum log level: debug, info, warn or error")
	flags.StringVar(&opts.flags.LogFormat, "log-format", "console", "Log encoding: json or console")
	flags.StringVar(&opts.flags.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")
	flags.BoolVar(&opts.flags.Trace, "trace", false, "Log every settled node at debug level")
	flags.DurationVar(&opts.flags.Timeout, "timeout", 0, "Abort a search after this long (0 disables)")

	cmd.AddCommand(
		newGridCommand(opts),
		newGraphCommand(opts),
	)
	return cmd
}

// complete resolves configuration: environment first, then flags the user
// set explicitly.
func (o *rootOpts) complete(cmd *cobra.Command) error {
	cfg, err := LoadConfig(o.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.flags.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.flags.LogFormat
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = o.flags.MetricsFile
	}
	if flags.Changed("trace") {
		cfg.Trace = o.flags.Trace
	}
	if flags.Changed("timeout") {
		cfg.Timeout = o.flags.Timeout
	}
	if err = ValidateConfig(&cfg); err != nil {
		return err
	}

	lc := logging.DefaultConfig()
	lc.Format, lc.Level = cfg.LogFormat, cfg.LogLevel
	lc.Output = zapcore.AddSync(cmd.ErrOrStderr())
	logger, err := logging.NewLogger(lc)
	if err != nil {
		return err
	}
	o.cfg, o.logger = cfg, logger

	return nil
}

// runE wraps a subcommand body so that finish runs whatever the body
// returns; failed and aborted searches still reach the metrics file.
func (o *rootOpts) runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		return errors.Join(err, o.finish())
	}
}

// finish flushes the logger and writes the metrics file when configured.
func (o *rootOpts) finish() error {
	_ = o.logger.Sync()
	if o.cfg.MetricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(o.cfg.MetricsFile); err != nil {
		o.logger.Error("writing metrics", zap.String("file", o.cfg.MetricsFile), zap.Error(err))
		return err
	}
	o.logger.Debug("metrics written", zap.String("file", o.cfg.MetricsFile))

	return nil
}

// run executes one search with the configured timeout and trace hook,
// then records and logs its outcome.
func (o *rootOpts) run(ctx context.Context, mode string, g core.Graph, source core.NodeID, extra ...search.Option) (*search.Result, error) {
	if o.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.Timeout)
		defer cancel()
	}

	searchOpts := []search.Option{search.WithContext(ctx)}
	if o.cfg.Trace {
		searchOpts = append(searchOpts, search.WithOnSettle(func(id core.NodeID, cost core.Weight) error {
			o.logger.Debug("settled", zap.Int("node", id), zap.Int64("cost", cost))
			return nil
		}))
	}
	searchOpts = append(searchOpts, extra...)

	start := time.Now()
	res, err := search.Search(g, source, searchOpts...)
	dur := time.Since(start)
	metrics.Observe(mode, res, err, dur)
	if err != nil {
		o.logger.Error("search failed", zap.String("mode", mode), zap.Int("source", source), zap.Error(err))
		return nil, err
	}

	fields := []zap.Field{
		zap.String("mode", mode),
		zap.Stringer("outcome", res.Kind),
		zap.Int("source", source),
		zap.Int("settled", res.Stats.Settled),
		zap.Int("pushed", res.Stats.Pushed),
		zap.Int("stale", res.Stats.Stale),
		zap.Duration("duration", dur),
	}
	if res.Goal != core.NoNode {
		fields = append(fields, zap.Int("goal", res.Goal))
	}
	if res.Found() {
		fields = append(fields, zap.Int64("cost", res.Cost))
	}
	o.logger.Info("search finished", fields...)

	return res, nil
}
