package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"reindent/internal/cache"
	"reindent/internal/config"
	"reindent/internal/diagfmt"
	"reindent/internal/driver"
	"reindent/internal/observ"
)

type runOptions struct {
	write      bool
	check      bool
	quiet      bool
	timings    bool
	color      bool
	clearCache bool // drop every cached entry before the run
	settings   config.Config
}

func runReindent(cmd *cobra.Command, fsys afero.Fs, path string) error {
	opts, err := resolveOptions(cmd, fsys, path)
	if err != nil {
		return err
	}
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	dopts := driver.Options{
		Fs:             fsys,
		MaxDiagnostics: opts.settings.Output.MaxDiagnostics,
	}
	if opts.timings {
		dopts.Timer = observ.NewTimer()
		dopts.TimingDiagnostic = opts.settings.Output.Diagnostics == "json"
	}
	var openErr error
	if opts.settings.Cache.Enabled {
		dopts.Cache, openErr = openCache(fsys, opts.settings.Cache.Dir, opts.clearCache)
	}

	res, err := driver.ReindentFile(cmd.Context(), path, dopts)
	if err != nil {
		return err
	}
	if openErr != nil {
		driver.ReportCacheError(res.Bag, fmt.Errorf("cache disabled: %w", openErr))
	}

	if !opts.quiet {
		if err := renderDiagnostics(stderr, res, opts); err != nil {
			return err
		}
	}
	if opts.timings && opts.settings.Output.Diagnostics == "text" {
		fmt.Fprint(stderr, dopts.Timer.Summary())
	}

	switch {
	case opts.check:
		if res.Changed {
			warn(stderr, opts, "%s: would re-indent", res.Path)
			return exitError{code: 1}
		}
		return nil
	case opts.write:
		if !res.Changed {
			return nil
		}
		return writeInPlace(fsys, path, res.Output)
	default:
		_, err := stdout.Write(res.Output)
		return err
	}
}

// resolveOptions merges the discovered config with flags; a flag set on the
// command line always wins.
func resolveOptions(cmd *cobra.Command, fsys afero.Fs, path string) (runOptions, error) {
	var opts runOptions
	flags := cmd.Flags()

	var err error
	if explicit, _ := flags.GetString("config"); explicit != "" {
		opts.settings, err = config.Load(fsys, explicit)
	} else {
		opts.settings, err = config.Discover(fsys, path)
	}
	if err != nil {
		return opts, fmt.Errorf("config: %w", err)
	}

	out := &opts.settings.Output
	if flags.Changed("color") {
		out.Color, _ = flags.GetString("color")
	}
	if flags.Changed("diagnostics") {
		out.Diagnostics, _ = flags.GetString("diagnostics")
	}
	if flags.Changed("max-diagnostics") {
		out.MaxDiagnostics, _ = flags.GetInt("max-diagnostics")
	}
	if flags.Changed("context") {
		out.Context, _ = flags.GetBool("context")
	}
	if flags.Changed("cache") {
		opts.settings.Cache.Enabled, _ = flags.GetBool("cache")
	}
	if flags.Changed("cache-dir") {
		opts.settings.Cache.Dir, _ = flags.GetString("cache-dir")
		opts.settings.Cache.Enabled = true
	}
	if opts.clearCache, _ = flags.GetBool("clear-cache"); opts.clearCache {
		opts.settings.Cache.Enabled = true
	}
	if err := opts.settings.Validate(); err != nil {
		return opts, err
	}

	opts.write, _ = flags.GetBool("write")
	opts.check, _ = flags.GetBool("check")
	opts.quiet, _ = flags.GetBool("quiet")
	opts.timings, _ = flags.GetBool("timings")
	switch out.Color {
	case "on":
		opts.color = true
	case "auto":
		opts.color = isTerminal(cmd.ErrOrStderr())
	}
	return opts, nil
}

func renderDiagnostics(w io.Writer, res *driver.Result, opts runOptions) error {
	items := res.Bag.Items()
	if opts.settings.Output.Diagnostics == "json" {
		return diagfmt.JSON(w, res.Path, items, diagfmt.JSONOpts{IncludeNotes: true})
	}
	if err := diagfmt.Pretty(w, res.Path, res.File, items, diagfmt.PrettyOpts{
		Color:   opts.color,
		Context: opts.settings.Output.Context,
	}); err != nil {
		return err
	}
	if n := res.Bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "... %d more diagnostics not shown\n", n)
	}
	return nil
}

func openCache(fsys afero.Fs, dir string, clear bool) (*cache.Cache, error) {
	if dir == "" {
		var err error
		if dir, err = cache.DefaultDir("reindent"); err != nil {
			return nil, err
		}
	}
	c, err := cache.Open(fsys, dir)
	if err != nil {
		return nil, err
	}
	if clear {
		if err := c.DropAll(); err != nil {
			return nil, fmt.Errorf("clear %s: %w", dir, err)
		}
	}
	return c, nil
}

// writeInPlace replaces the file keeping its permission bits.
func writeInPlace(fsys afero.Fs, path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := fsys.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := afero.WriteFile(fsys, path, data, mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func warn(w io.Writer, opts runOptions, format string, args ...any) {
	if opts.quiet {
		return
	}
	fmt.Fprintf(w, "reindent: "+format+"\n", args...)
}
