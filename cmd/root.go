package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/scan-io-git/sarif2md/cmd/version"
	scaniosarif "github.com/scan-io-git/sarif2md/internal/sarif"
	"github.com/scan-io-git/sarif2md/internal/summary"
	"github.com/scan-io-git/sarif2md/pkg/shared/config"
	"github.com/scan-io-git/sarif2md/pkg/shared/errors"
	"github.com/scan-io-git/sarif2md/pkg/shared/logger"
)

// Exit codes used when --exit-code is enabled.
const (
	ExitOK         = 0
	ExitUsage      = 1
	ExitNotFound   = 2
	ExitParse      = 3
	ExitNoRuns     = 4
	ExitUnexpected = 5
)

// RunOptions holds flags for the root command.
type RunOptions struct {
	ConfigPath        string
	ExcludeSuppressed bool
	ExitCode          bool
}

var execExampleSarif2md = `  # Summarise a checkov SARIF report
  sarif2md checkov_analysis.sarif sarif_summary.md

  # Drop suppressed results and fail the CI step on errors
  sarif2md --exclude-suppressed --exit-code results.sarif summary.md

  # Load settings from a config file
  SARIF2MD_CONFIG=./sarif2md.yml sarif2md results.sarif summary.md

  # Print build information
  sarif2md --version`

// NewRootCmd builds the sarif2md command reading and writing through fs and printing its result line to out.
func NewRootCmd(fs afero.Fs, out io.Writer) *cobra.Command {
	var opts RunOptions

	rootCmd := &cobra.Command{
		Use:                   "sarif2md INPUT_SARIF OUTPUT_MARKDOWN",
		Short:                 "Generate a Markdown summary from a SARIF file",
		Long:                  `sarif2md reads a SARIF report and writes a Markdown summary with one section per tool and one block per finding.`,
		Example:               execExampleSarif2md,
		Args:                  cobra.ExactArgs(2),
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Version:               version.CoreVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSarif2md(cmd, fs, &opts, args[0], args[1])
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate(version.Template(version.Current()))
	rootCmd.SetOut(out)

	rootCmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file (default $"+config.EnvConfigPath+")")
	rootCmd.Flags().BoolVar(&opts.ExcludeSuppressed, "exclude-suppressed", false, "skip results that carry SARIF suppressions")
	rootCmd.Flags().BoolVar(&opts.ExitCode, "exit-code", false, "exit with a per-kind nonzero status when the conversion fails (by default failures are printed and exit 0)")

	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	return ExecuteArgs(afero.NewOsFs(), os.Stdout, os.Stderr, os.Args[1:])
}

// ExecuteArgs runs the command line with explicit dependencies and returns the process exit code.
func ExecuteArgs(fs afero.Fs, stdout, stderr io.Writer, args []string) int {
	rootCmd := NewRootCmd(fs, stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		if cmdErr, ok := err.(*errors.CommandError); ok {
			return cmdErr.ExitCode
		}
		fmt.Fprintf(stderr, "Error executing command: %v\n", err)
		return ExitUsage
	}
	return ExitOK
}

func runSarif2md(cmd *cobra.Command, fs afero.Fs, opts *RunOptions, input, output string) error {
	cfg, err := config.LoadConfig(fs, opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg, opts)

	lg := logger.NewLogger(cfg, "sarif2md")
	lg.Debug("converting SARIF report", "input", input, "output", output)

	err = convert(fs, cfg, input, output, lg)
	if err != nil {
		lg.Debug("conversion failed", "kind", errors.KindOf(err).String(), "error", err)
		fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
		if !config.ExitCodeEnabled(cfg) {
			return nil
		}
		return errors.NewCommandError(err, exitCodeFor(errors.KindOf(err)))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Markdown summary generated: %s\n", output)
	return nil
}

func convert(fs afero.Fs, cfg *config.Config, input, output string, lg hclog.Logger) error {
	report, err := scaniosarif.ReadReport(fs, input, lg, scaniosarif.ReadOptions{
		ExcludeSuppressed: config.ExcludeSuppressed(cfg),
	})
	if err != nil {
		return err
	}
	return summary.Write(fs, report, output, lg)
}

// applyFlagOverrides lets explicitly passed flags win over config values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config, opts *RunOptions) {
	if cmd.Flags().Changed("exclude-suppressed") {
		cfg.Report.ExcludeSuppressed = &opts.ExcludeSuppressed
	}
	if cmd.Flags().Changed("exit-code") {
		cfg.Report.ExitCode = &opts.ExitCode
	}
}

// exitCodeFor maps every error kind to its exit status.
func exitCodeFor(kind errors.Kind) int {
	switch kind {
	case errors.KindNotFound:
		return ExitNotFound
	case errors.KindParse:
		return ExitParse
	case errors.KindNoRuns:
		return ExitNoRuns
	case errors.KindUnexpected:
		return ExitUnexpected
	}
	return ExitUnexpected
}
