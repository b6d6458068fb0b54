package brace

import (
	"fmt"
	"strings"

	"reindent/internal/diag"
	"reindent/internal/source"
)

// Unit is the indentation step of the Whitesmith layouts this pass converts.
// A brace is only moved when it sits at least one Unit deeper than its
// controlling statement.
const Unit = 2

// Result is the outcome of one Indenter pass.
type Result struct {
	Lines []string
	// Adjusted lists the rows whose indentation changed, ascending.
	Adjusted []int
	// Leftover holds openers never closed, outermost first.
	Leftover []Entry
}

// Indenter moves Whitesmith brace pairs to the Allman position.
type Indenter struct {
	rep        diag.Reporter
	stack      Stack
	stmtIndent int
	// stmtStart is set when the last code line ended a statement, so the
	// next code line begins a new one.
	stmtStart bool
	dedent    []int // spaces to strip per row
}

// NewIndenter returns an Indenter reporting bracket problems to rep.
func NewIndenter(rep diag.Reporter) *Indenter {
	if rep == nil {
		rep = diag.NopReporter{}
	}
	return &Indenter{rep: rep}
}

// Run scans sanitized (which must be the sanitized form of orig, line for
// line) and returns orig with qualifying brace lines dedented.
//
// Column checks always look at the unmodified orig lines. Each row is
// adjusted at most once.
func (ix *Indenter) Run(orig, sanitized []string) Result {
	ix.stack = Stack{}
	ix.stmtIndent = 0
	ix.stmtStart = true
	ix.dedent = make([]int, len(orig))

	for row, line := range sanitized {
		if row >= len(orig) {
			break
		}
		inGroup := ix.stack.groupDepth() > 0
		ix.scanLine(row, line, orig)
		if !isStatement(line) {
			continue
		}
		if ix.stmtStart && !inGroup {
			// closer rows already know their dedent; count the column they end up at
			lead := leadingSpaces(orig[row])
			ix.stmtIndent = lead - min(ix.dedent[row], lead)
		}
		ix.stmtStart = endsStatement(line)
	}

	leftover := ix.stack.Drain()
	for _, e := range leftover {
		diag.ReportWarning(ix.rep, diag.BrkUnclosed, source.NewPos(e.Row, e.Col),
			fmt.Sprintf("unclosed '%c'", byte(e.Kind))).Emit()
	}

	res := Result{Lines: make([]string, len(orig)), Leftover: leftover}
	for row, line := range orig {
		n := min(ix.dedent[row], leadingSpaces(line))
		if n == 0 {
			res.Lines[row] = line
			continue
		}
		res.Lines[row] = line[n:]
		res.Adjusted = append(res.Adjusted, row)
	}
	return res
}

func (ix *Indenter) scanLine(row int, line string, orig []string) {
	for col := 0; col < len(line); col++ {
		switch c := line[col]; c {
		case '{', '(', '[':
			ix.stack.Push(Entry{Kind: Kind(c), Row: row, Col: col, Indent: ix.stmtIndent})
		case '}', ')', ']':
			ix.close(row, col, c, orig)
		}
	}
}

func (ix *Indenter) close(row, col int, c byte, orig []string) {
	open, ok := ix.stack.Pop()
	if !ok || open.Kind != openerFor(c) {
		b := diag.ReportWarning(ix.rep, diag.BrkMismatched, source.NewPos(row, col), fmt.Sprintf("mismatched '%c'", c))
		if ok {
			b.WithNote(source.NewPos(open.Row, open.Col), fmt.Sprintf("'%c' opened here", byte(open.Kind)))
		}
		b.Emit()
		return
	}
	if open.Kind != KindBrace {
		return
	}

	delta := open.Col - open.Indent
	if delta < Unit {
		return
	}
	if !blankPrefix(orig[row], col) || !blankPrefix(orig[open.Row], open.Col) {
		return
	}
	if ix.dedent[open.Row] == 0 {
		ix.dedent[open.Row] = delta
	}
	if ix.dedent[row] == 0 {
		ix.dedent[row] = delta
	}
}

// blankPrefix reports whether line holds only spaces before col.
func blankPrefix(line string, col int) bool {
	if col > len(line) {
		return false
	}
	for i := 0; i < col; i++ {
		if line[i] != ' ' {
			return false
		}
	}
	return true
}

func leadingSpaces(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

// isStatement reports whether a sanitized line carries code that can
// control a following brace. Blank lines, comment-only lines and
// preprocessor lines do not.
func isStatement(sanitized string) bool {
	t := strings.TrimSpace(sanitized)
	return t != "" && t[0] != '#'
}

// endsStatement reports whether the code on a sanitized line ends with ';',
// a brace or a label colon. Continuation lines such as
// ": b(1)," or "public C" do not end one.
func endsStatement(sanitized string) bool {
	t := strings.TrimRight(sanitized, " \t\r\v\f")
	if t == "" {
		return false
	}
	switch t[len(t)-1] {
	case ';', '{', '}':
		return true
	case ':':
		return !strings.HasSuffix(t, "::")
	}
	return false
}
