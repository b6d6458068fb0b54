package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"reindent/internal/diag"
	"reindent/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид, по одной на строку:
//
//	<path>:<row>: <message>
//
// row is the 0-based row index. With opts.Context the source line, a caret
// under the column and the notes follow each entry.
func Pretty(w io.Writer, path string, file *source.File, items []diag.Diagnostic, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for _, d := range items {
		msg := pal.severity(d.Severity).Sprint(d.Message)
		if _, err := fmt.Fprintf(w, "%s:%d: %s\n", pal.path.Sprint(path), d.Primary.Row, msg); err != nil {
			return err
		}
		if !opts.Context {
			continue
		}
		if err := writeExcerpt(w, file, d.Primary, pal.caret); err != nil {
			return err
		}
		for _, n := range d.Notes {
			if _, err := fmt.Fprintf(w, "%s:%d: %s %s\n", pal.path.Sprint(path), n.Pos.Row, pal.note.Sprint("note:"), n.Msg); err != nil {
				return err
			}
			if err := writeExcerpt(w, file, n.Pos, pal.note); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeExcerpt(w io.Writer, file *source.File, pos source.Pos, caret *color.Color) error {
	if file == nil || int(pos.Row) >= file.LineCount() {
		return nil
	}
	line := strings.TrimRight(file.Line(pos.Row), "\r")
	_, err := fmt.Fprintf(w, "  %s\n  %s%s\n", line, caretPad(line, int(pos.Col)), caret.Sprint("^"))
	return err
}

// caretPad returns whitespace as wide on screen as line[:col]. Tabs are kept
// so the caret lines up under whatever tab width the terminal uses.
func caretPad(line string, col int) string {
	if col > len(line) {
		col = len(line)
	}
	var b strings.Builder
	for _, r := range line[:col] {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}

type palette struct {
	path    *color.Color
	warning *color.Color
	err     *color.Color
	info    *color.Color
	note    *color.Color
	caret   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:    color.New(color.Bold),
		warning: color.New(color.FgYellow),
		err:     color.New(color.FgRed, color.Bold),
		info:    color.New(color.FgCyan),
		note:    color.New(color.FgBlue),
		caret:   color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.path, p.warning, p.err, p.info, p.note, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warning
	}
	return p.info
}
