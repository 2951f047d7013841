package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pi/cods/internal/harness"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var (
		configPath string
		parallel   int
		seed       uint
		elements   int
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "cods-check [suite...]",
		Short: "Run the container self-check suites",
		Long: "Runs the named self-check suites, or all of them, and reports " +
			"which passed. Suites: array, arraymap, bitarray, fixedarray, linkedlist, sortedarray.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := harness.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = harness.LoadConfig(configPath); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed("parallel") {
				cfg.Parallel = parallel
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("elements") {
				cfg.Elements = elements
			}
			if flags.Changed("verbose") {
				cfg.Verbose = verbose
			}
			if len(args) > 0 {
				cfg.Suites = args
			}

			logger, err := newLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			results, runErr := harness.Run(ctx, cfg, logger)
			printResults(cmd, results)
			return runErr
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "TOML config file")
	flags.IntVarP(&parallel, "parallel", "p", 4, "suites run at once")
	flags.UintVar(&seed, "seed", 1, "value generator seed")
	flags.IntVarP(&elements, "elements", "n", 10000, "elements per randomized check")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func printResults(cmd *cobra.Command, results []harness.Result) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SUITE\tRESULT\tTIME")
	for _, r := range results {
		if r.Suite == "" {
			continue
		}
		status := "ok"
		if !r.Passed() {
			status = "FAIL: " + r.Err.Error()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Suite, status, r.Duration)
	}
	w.Flush()
}
