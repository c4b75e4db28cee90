package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/percolation/stats"
)

// errBadArgument marks a positional argument that is not a positive integer.
var errBadArgument = errors.New("argument must be a positive integer")

// newRootCmd builds the percstats command. Report lines go to stdout;
// diagnostics go to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath  string
		seed        int64
		workers     int
		strategy    string
		logLevel    string
		metricsFile string
	)

	cmd := &cobra.Command{
		Use:   "percstats N T",
		Short: "Estimate the percolation threshold of an N×N lattice over T trials",
		Long: "percstats opens random sites of a fresh N×N lattice until it percolates,\n" +
			"repeats this T times and prints the mean threshold, its sample standard\n" +
			"deviation and the 95% confidence interval.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parsePositive("N", args[0])
			if err != nil {
				return err
			}
			trials, err := parsePositive("T", args[1])
			if err != nil {
				return err
			}

			cfg := defaultConfig()
			if configPath != "" {
				if cfg, err = loadConfig(configPath); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed("seed") {
				cfg.Seed = &seed
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("strategy") {
				cfg.Strategy = strategy
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("metrics-file") {
				cfg.MetricsFile = metricsFile
			}

			return run(cmd, stdout, stderr, n, trials, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML config file (flags override it)")
	f.Int64Var(&seed, "seed", 0, "seed for reproducible runs (default: clock)")
	f.IntVarP(&workers, "workers", "w", 0, "concurrent trials (default: GOMAXPROCS)")
	f.StringVarP(&strategy, "strategy", "s", "rejection", "site sampling strategy: rejection|shuffle")
	f.StringVarP(&logLevel, "log-level", "l", "warn", "log level: debug|info|warn|error")
	f.StringVar(&metricsFile, "metrics-file", "", "write Prometheus text metrics to this path")

	return cmd
}

// parsePositive parses s as an integer > 0.
func parsePositive(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s=%q: %w", name, s, errBadArgument)
	}

	return v, nil
}

// formatDouble renders x with the shortest round-trip digits, always keeping
// a fractional part: 1 prints as "1.0". NaN prints as "NaN".
func formatDouble(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !math.IsNaN(x) && !math.IsInf(x, 0) && !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// newLogger builds a console zap logger on w at the named level.
func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}

// run executes the experiment described by cfg and prints the report.
func run(cmd *cobra.Command, stdout, stderr io.Writer, n, trials int, cfg Config) error {
	log, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	strategy, err := stats.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers=%d: must not be negative", cfg.Workers)
	}

	reg := prometheus.NewRegistry()
	opts := []stats.Option{
		stats.WithStrategy(strategy),
		stats.WithLogger(log),
		stats.WithMetrics(stats.NewMetrics(reg)),
	}
	if cfg.Seed != nil {
		opts = append(opts, stats.WithSeed(*cfg.Seed))
	}
	if cfg.Workers > 0 {
		opts = append(opts, stats.WithWorkers(cfg.Workers))
	}

	st, err := stats.Run(cmd.Context(), n, trials, opts...)
	if err != nil {
		return err
	}

	lo, hi := st.ConfidenceInterval()
	fmt.Fprintf(stdout, "mean = %s\n", formatDouble(st.Mean()))
	fmt.Fprintf(stdout, "stddev = %s\n", formatDouble(st.Stddev()))
	fmt.Fprintf(stdout, "95%% confidence interval = %s, %s\n", formatDouble(lo), formatDouble(hi))

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		log.Info("metrics written", zap.String("path", cfg.MetricsFile))
	}

	return nil
}
