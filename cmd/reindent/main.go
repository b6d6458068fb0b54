package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"reindent/internal/config"
	"reindent/internal/version"
)

const usageText = "Please provide a single file to re-indent.\nThe output is written to stdout.\n"

// errUsage is returned by the argument check; the caller prints usageText.
var errUsage = errors.New("usage")

// exitError carries a non-zero exit status that is not a failure to report,
// such as --check finding a file that would change.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// main builds the root command against the OS filesystem and exits with the
// status returned by execute.
func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs()))
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer, fsys afero.Fs) int {
	root := newRootCmd(fsys)
	if args == nil {
		// cobra would fall back to os.Args
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	var exit exitError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprint(stderr, usageText)
		return 1
	case errors.As(err, &exit):
		return exit.code
	default:
		fmt.Fprintf(stderr, "reindent: %v\n", err)
		return 1
	}
}

func newRootCmd(fsys afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reindent [flags] <file>",
		Short: "Re-indent hanging brace pairs to Allman style",
		Long: `reindent moves hanging {/} pairs back to the column of the statement
that controls them. Only leading spaces of brace lines change; comments and
string or character literals are never touched.`,
		Version:       version.String(false),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			stop, err := setupProfiling(cmd, fsys)
			if err != nil {
				return err
			}
			defer func() {
				if stopErr := stop(); stopErr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "reindent: %v\n", stopErr)
				}
			}()
			return runReindent(cmd, fsys, args[0])
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	// Глобальные флаги
	cmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	cmd.PersistentFlags().Bool("quiet", false, "suppress diagnostics and non-essential output")
	cmd.PersistentFlags().Bool("timings", false, "show timing information")
	cmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	cmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	cmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	cmd.PersistentFlags().String("runtime-trace", "", "write a runtime execution trace to file")

	cmd.Flags().BoolP("write", "w", false, "rewrite the file in place instead of printing it")
	cmd.Flags().Bool("check", false, "print nothing; exit 1 when the file would change")
	cmd.Flags().String("diagnostics", "text", "diagnostics format (text|json)")
	cmd.Flags().Bool("context", false, "show the source line and a caret under each diagnostic")
	cmd.Flags().Bool("cache", false, "reuse results cached for identical input")
	cmd.Flags().String("cache-dir", "", "cache directory (default $XDG_CACHE_HOME/reindent)")
	cmd.Flags().Bool("clear-cache", false, "drop every cached result before running (implies --cache)")
	cmd.Flags().String("config", "", "use this config file instead of discovering "+config.FileName)
	cmd.MarkFlagsMutuallyExclusive("write", "check")
	return cmd
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
