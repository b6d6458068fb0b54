package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"reindent/internal/diag"
	"reindent/internal/source"
)

func sample() (*source.File, []diag.Diagnostic) {
	f := source.NewVirtual("a.cxx", []byte("f(a\n\tx = 1];\n"))
	d := diag.NewWarning(diag.BrkMismatched, source.NewPos(1, 6), "mismatched ']'").
		WithNote(source.NewPos(0, 1), "'(' opened here")
	return f, []diag.Diagnostic{d}
}

func TestPrettyPlain(t *testing.T) {
	f, items := sample()
	var buf bytes.Buffer
	if err := Pretty(&buf, "a.cxx", f, items, PrettyOpts{}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	want := "a.cxx:1: mismatched ']'\n"
	if buf.String() != want {
		t.Fatalf("Pretty mismatch:\nwant %q\ngot  %q", want, buf.String())
	}
}

func TestPrettyContext(t *testing.T) {
	f, items := sample()
	var buf bytes.Buffer
	if err := Pretty(&buf, "a.cxx", f, items, PrettyOpts{Context: true}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	want := "a.cxx:1: mismatched ']'\n" +
		"  \tx = 1];\n" +
		"  \t     ^\n" +
		"a.cxx:0: note: '(' opened here\n" +
		"  f(a\n" +
		"   ^\n"
	if buf.String() != want {
		t.Fatalf("Pretty mismatch:\nwant %q\ngot  %q", want, buf.String())
	}
}

func TestPrettyColorKeepsText(t *testing.T) {
	f, items := sample()
	var buf bytes.Buffer
	if err := Pretty(&buf, "a.cxx", f, items, PrettyOpts{Color: true}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("mismatched ']'")) || !bytes.Contains(buf.Bytes(), []byte("\x1b[")) {
		t.Fatalf("coloured output = %q", buf.String())
	}
}

func TestCaretPadWideRunes(t *testing.T) {
	line := "s = \"日本\"; }"
	col := len("s = \"日本\"; ")
	if got := caretPad(line, col); got != strings.Repeat(" ", 12) {
		t.Fatalf("caretPad = %q (len %d)", got, len(got))
	}
}

func TestJSON(t *testing.T) {
	_, items := sample()
	var buf bytes.Buffer
	if err := JSON(&buf, "a.cxx", items, JSONOpts{IncludeNotes: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 1 || out.Diagnostics[0].Code != "BRK1001" || out.Diagnostics[0].Severity != "warning" {
		t.Fatalf("output = %+v", out)
	}
	if loc := out.Diagnostics[0].Location; loc.Row != 1 || loc.Col != 6 || loc.File != "a.cxx" {
		t.Fatalf("location = %+v", loc)
	}
	if len(out.Diagnostics[0].Notes) != 1 {
		t.Fatalf("notes = %+v", out.Diagnostics[0].Notes)
	}
}
