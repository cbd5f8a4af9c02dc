package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ferrite-lang/ferrite/internal/token"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	format  string
	verbose bool
	logFile string

	logger  *slog.Logger
	openLog func(path string) (io.WriteCloser, error)
	logOut  io.WriteCloser
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&options{openLog: openLogFile})
}

func buildRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ferrite-grammar",
		Short: "Inspect the Ferrite grammar model",
		Long: `ferrite-grammar prints the vocabulary shared by the Ferrite scanner,
parser and analysis passes.

Commands:
  keywords    - reserved words
  kinds       - every token kind with its category and binding
  precedence  - the operator precedence ladder
  classify    - classify lexemes the way the scanner does
  version     - grammar version and compatibility checks
  sample      - build and print a small syntax tree`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatText && opts.format != formatYAML {
				return fmt.Errorf("unsupported format %q (want %s or %s)", opts.format, formatText, formatYAML)
			}
			var logOut io.Writer
			if opts.logFile != "" {
				f, err := opts.openLog(opts.logFile)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				opts.logOut, logOut = f, f
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose, logOut)
			opts.logger.Debug("command started", "command", cmd.Name(), "grammar", token.GrammarVersion)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", formatText, "Output format: text or yaml")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Also write JSON logs to this file")

	rootCmd.AddCommand(
		newKeywordsCmd(opts),
		newKindsCmd(opts),
		newPrecedenceCmd(opts),
		newClassifyCmd(opts),
		newVersionCmd(opts),
		newSampleCmd(opts),
	)

	// Cobra skips post-run hooks when RunE fails, so the log file is
	// closed from each command's RunE instead.
	for _, sub := range rootCmd.Commands() {
		run := sub.RunE
		if run == nil {
			continue
		}
		sub.RunE = func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args)
			if cerr := opts.closeLog(); cerr != nil && err == nil {
				err = fmt.Errorf("close log file: %w", cerr)
			}
			return err
		}
	}
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
