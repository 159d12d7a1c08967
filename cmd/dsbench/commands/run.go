// Package commands implements CLI command handlers for dsbench.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// ErrVerificationFailed is returned when a go-dsa result disagrees with its reference.
var ErrVerificationFailed = errors.New("verification failed")

// RunCommand holds the flags of the run command.
type RunCommand struct {
	configPath string
	size       int
	seed       int64
	workloads  []string
	verify     bool
	noColor    bool
	logLevel   string
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	rc := &RunCommand{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run workloads",
		Long: "Run seeded workloads against go-dsa and reference containers.\n" +
			"Available workloads: " + strings.Join(WorkloadNames(), ", "),
		Args: cobra.NoArgs,
		RunE: rc.run,
	}

	cmd.Flags().StringVarP(&rc.configPath, "config", "c", "", "Config file (default: ./.dsbench.yaml or ~/.dsbench.yaml)")
	cmd.Flags().IntVarP(&rc.size, "size", "n", DefaultSize, "Number of elements per workload")
	cmd.Flags().Int64Var(&rc.seed, "seed", DefaultSeed, "Seed of the workload generator")
	cmd.Flags().StringSliceVarP(&rc.workloads, "workloads", "w", nil, "Workloads to run (default: all)")
	cmd.Flags().BoolVar(&rc.verify, "verify", DefaultVerify, "Check go-dsa results against the first reference")
	cmd.Flags().BoolVar(&rc.noColor, "no-color", DefaultNoColor, "Disable colored output")
	cmd.Flags().StringVar(&rc.logLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error")

	return cmd
}

func (rc *RunCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(rc.configPath)
	if err != nil {
		return err
	}

	rc.applyFlags(cmd, cfg)

	err = cfg.Validate()
	if err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

	results := runWorkloads(cfg, logger)

	renderResults(cmd.OutOrStdout(), results, cfg.NoColor)

	failed := failures(results)
	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", ErrVerificationFailed, strings.Join(failed, ", "))
	}

	logger.Info("run completed", "workloads", len(cfg.Workloads), "size", cfg.Size, "seed", cfg.Seed)

	return nil
}

// applyFlags overrides the loaded config with the flags set on the command line.
func (rc *RunCommand) applyFlags(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()

	if flags.Changed("size") {
		cfg.Size = rc.size
	}

	if flags.Changed("seed") {
		cfg.Seed = rc.seed
	}

	if flags.Changed("workloads") {
		cfg.Workloads = rc.workloads
	}

	if flags.Changed("verify") {
		cfg.Verify = rc.verify
	}

	if flags.Changed("no-color") {
		cfg.NoColor = rc.noColor
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = rc.logLevel
	}
}

func runWorkloads(cfg *Config, logger *slog.Logger) []Result {
	var results []Result

	for _, name := range cfg.Workloads {
		logger.Debug("running workload", "workload", name, "size", cfg.Size, "seed", cfg.Seed)

		rs := workloads[name](cfg)
		for _, r := range rs {
			logger.Debug("workload finished", "workload", r.Workload, "impl", r.Impl, "elapsed", r.Elapsed)
		}

		results = append(results, rs...)
	}

	return results
}

func failures(results []Result) []string {
	var failed []string

	for _, r := range results {
		if r.Checked && !r.Passed {
			failed = append(failed, r.Workload)
		}
	}

	return failed
}
