// Package reindent converts Whitesmith brace placement to Allman placement.
//
// A Reformatter runs the two passes over one file: sanitize blanks comments
// and literals, brace pairs delimiters and dedents qualifying brace lines.
// Only leading spaces of brace lines change; every other byte is kept, apart
// from trailing whitespace which Render strips.
package reindent

import (
	"bytes"
	"errors"
	"strings"

	"reindent/internal/brace"
	"reindent/internal/diag"
	"reindent/internal/observ"
	"reindent/internal/sanitize"
	"reindent/internal/source"
)

// ErrReused is returned when a Reformatter is run a second time.
var ErrReused = errors.New("reindent: reformatter already used")

// Options configures a Reformatter.
type Options struct {
	Reporter diag.Reporter
	Timer    *observ.Timer
}

// Result captures the rewritten lines of one file.
type Result struct {
	Lines    []string
	Adjusted []int
	// Unclosed counts openers still open at end of file.
	Unclosed int
	// Changed reports whether Render(Lines) differs from the input bytes.
	Changed bool
}

// Reformatter holds the per-file state of one run. It is single use.
type Reformatter struct {
	opts Options
	used bool
}

// New returns a Reformatter for one file.
func New(opts Options) *Reformatter {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	return &Reformatter{opts: opts}
}

// Run rewrites lines. The input slice is not modified.
func (r *Reformatter) Run(lines []string) (Result, error) {
	if r.used {
		return Result{}, ErrReused
	}
	r.used = true

	idx := r.begin("sanitize")
	clean := sanitize.Lines(lines)
	r.end(idx, "")

	idx = r.begin("indent")
	res := brace.NewIndenter(r.opts.Reporter).Run(lines, clean)
	r.end(idx, "")

	return Result{
		Lines:    res.Lines,
		Adjusted: res.Adjusted,
		Unclosed: len(res.Leftover),
	}, nil
}

// RunFile rewrites f and fills Result.Changed.
func (r *Reformatter) RunFile(f *source.File) (Result, error) {
	res, err := r.Run(f.Lines)
	if err != nil {
		return res, err
	}
	res.Changed = !bytes.Equal(Render(res.Lines), f.Content)
	return res, nil
}

func (r *Reformatter) begin(name string) int {
	if r.opts.Timer == nil {
		return -1
	}
	return r.opts.Timer.Begin(name)
}

func (r *Reformatter) end(idx int, note string) {
	if r.opts.Timer == nil {
		return
	}
	r.opts.Timer.End(idx, note)
}

// trailingSpace matches what is stripped from the end of every output line.
const trailingSpace = " \t\r\v\f"

// Render joins lines with '\n' after stripping trailing whitespace. Every
// line, including the last, is terminated.
func Render(lines []string) []byte {
	var b bytes.Buffer
	for _, line := range lines {
		b.WriteString(strings.TrimRight(line, trailingSpace))
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// Reformat is a convenience wrapper running a fresh Reformatter over content.
func Reformat(path string, content []byte, rep diag.Reporter) ([]byte, Result, error) {
	f := source.New(path, content, source.FileVirtual)
	res, err := New(Options{Reporter: rep}).RunFile(f)
	if err != nil {
		return nil, res, err
	}
	return Render(res.Lines), res, nil
}
