package driver

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/afero"

	"reindent/internal/cache"
	"reindent/internal/diag"
	"reindent/internal/observ"
	"reindent/internal/reindent"
	"reindent/internal/source"
)

// Options configures processing of a single file.
type Options struct {
	// Fs is the filesystem the input is read from. Nil means the OS filesystem.
	Fs             afero.Fs
	MaxDiagnostics int
	// Cache, when set, is consulted before running both passes.
	Cache *cache.Cache
	// Timer collects phase timings. Nil disables timing.
	Timer *observ.Timer
	// TimingDiagnostic appends the timing report to the bag as an info
	// diagnostic, for machine-readable output.
	TimingDiagnostic bool
}

// Result captures the outcome of re-indenting one file.
type Result struct {
	Path    string
	File    *source.File
	Output  []byte
	Changed bool
	// Adjusted lists the 0-based rows whose indentation was rewritten.
	Adjusted []int
	Unclosed int
	Bag      *diag.Bag
	CacheHit bool
	// CacheErr is the non-fatal error from a failed cache read or write.
	// It is also reported in Bag as an IOCacheError warning.
	CacheErr error
	Timing   observ.Report
}

// ReindentFile loads path, rewrites its brace indentation and returns the
// rendered output together with every diagnostic, sorted by position.
func ReindentFile(ctx context.Context, path string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	idx := begin(opts.Timer, "load")
	file, err := source.Load(opts.Fs, path)
	end(opts.Timer, idx, "")
	if err != nil {
		return nil, err
	}

	res := &Result{
		Path: file.Path,
		File: file,
		Bag:  diag.NewBag(opts.MaxDiagnostics),
	}

	// полный список нужен кэшу независимо от лимита Bag
	all := diag.NewUnlimitedBag()
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: all})
	entry, hit, cacheErr := lookup(opts, file)
	res.CacheErr = cacheErr
	if hit {
		res.CacheHit = true
		cache.Replay(entry.Diagnostics, rep)
	} else {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := reindent.New(reindent.Options{
			Reporter: rep,
			Timer:    opts.Timer,
		}).RunFile(file)
		if err != nil {
			return nil, fmt.Errorf("reindent %s: %w", file.Path, err)
		}
		entry = &cache.Entry{Lines: out.Lines, Adjusted: out.Adjusted, Unclosed: out.Unclosed}
		all.Sort()
		entry.Diagnostics = cache.FromDiagnostics(all.Items())
		if err := store(opts, file, entry); err != nil && res.CacheErr == nil {
			res.CacheErr = err
		}
	}

	idx = begin(opts.Timer, "render")
	res.Output = reindent.Render(entry.Lines)
	end(opts.Timer, idx, "")
	res.Changed = !bytes.Equal(res.Output, file.Content)
	res.Adjusted = entry.Adjusted
	res.Unclosed = entry.Unclosed

	for _, d := range all.Items() {
		res.Bag.Add(d)
	}
	res.Bag.Sort()
	if res.CacheErr != nil {
		ReportCacheError(res.Bag, res.CacheErr)
	}

	if opts.Timer != nil {
		res.Timing = opts.Timer.Report()
		if opts.TimingDiagnostic {
			appendTimingDiagnostic(res.Bag, timingPayload{Path: file.Path, TotalMS: res.Timing.TotalMS, Phases: res.Timing.Phases})
		}
	}
	return res, nil
}

// ReportCacheError adds err to bag as an IOCacheError warning. The entry
// bypasses the bag limit and is never cached itself.
func ReportCacheError(bag *diag.Bag, err error) {
	if bag == nil || err == nil {
		return
	}
	bag.Force(diag.NewWarning(diag.IOCacheError, source.Pos{}, err.Error()))
}

func lookup(opts Options, file *source.File) (*cache.Entry, bool, error) {
	if opts.Cache == nil {
		return nil, false, nil
	}
	idx := begin(opts.Timer, "cache")
	defer end(opts.Timer, idx, "")

	var entry cache.Entry
	ok, err := opts.Cache.Get(cache.KeyFor(file), &entry)
	if err != nil || !ok {
		return nil, false, err
	}
	return &entry, true, nil
}

func store(opts Options, file *source.File, entry *cache.Entry) error {
	if opts.Cache == nil {
		return nil
	}
	if err := opts.Cache.Put(cache.KeyFor(file), entry); err != nil {
		return fmt.Errorf("cache %s: %w", file.Path, err)
	}
	return nil
}

func begin(t *observ.Timer, name string) int {
	if t == nil {
		return -1
	}
	return t.Begin(name)
}

func end(t *observ.Timer, idx int, note string) {
	if t == nil {
		return
	}
	t.End(idx, note)
}
