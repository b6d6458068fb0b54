package sanitize

import (
	"strings"
	"testing"
)

func sp(n int) string { return strings.Repeat(" ", n) }

func TestLineSingle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain code", in: "int a = b / c;", want: "int a = b / c;"},
		{name: "block comment", in: "x = 1; /* { */ y {", want: "x = 1; " + sp(7) + " y {"},
		{name: "slash star slash is not closed", in: "a /*/ b */ c", want: "a " + sp(8) + " c"},
		{name: "line comment", in: "a(); // { comment", want: "a(); " + sp(12)},
		{name: "string with escaped quote", in: `s = "a{b\"}";`, want: `s = "` + sp(6) + `";`},
		{name: "escaped backslash ends string", in: `"\\" {`, want: `"  " {`},
		{name: "char literals", in: `c = '{'; d = '\'';`, want: `c = ' '; d = '  ';`},
		{name: "empty char is not a literal", in: "e = '';", want: "e = '';"},
		{name: "comment marker inside string", in: `f = "// not a comment"; // real`, want: `f = "` + sp(16) + `"; ` + sp(7)},
		{name: "stray quote is skipped", in: "#error don't use {", want: "#error don't use {"},
		{name: "bracket in char", in: "if (c == '}')", want: "if (c == ' ')"},
		{name: "empty line", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			got := s.Line(tt.in)
			if got != tt.want {
				t.Fatalf("Line(%q):\nwant %q\ngot  %q", tt.in, tt.want, got)
			}
			if s.State() != StateNone {
				t.Fatalf("state = %s, want none", s.State())
			}
		})
	}
}

func TestLinesContinuation(t *testing.T) {
	tests := []struct {
		name  string
		in    []string
		want  []string
		final State
	}{
		{
			name:  "block comment across lines",
			in:    []string{"a /* start", " still { here", "end */ b {", "c"},
			want:  []string{"a " + sp(8), sp(13), sp(6) + " b {", "c"},
			final: StateNone,
		},
		{
			name:  "line holding only the terminator",
			in:    []string{"/* a", "*/ {"},
			want:  []string{sp(4), sp(2) + " {"},
			final: StateNone,
		},
		{
			name:  "string continued with backslash",
			in:    []string{`s = "abc{\`, `def}" + x;`},
			want:  []string{`s = "` + sp(4) + `\`, sp(4) + `" + x;`},
			final: StateNone,
		},
		{
			name:  "string continuation without terminator keeps state",
			in:    []string{`"a\`, "{{{", `}";`},
			want:  []string{`"` + sp(1) + `\`, sp(3), sp(1) + `";`},
			final: StateNone,
		},
		{
			name:  "char continued with backslash",
			in:    []string{`c = '{\`, `}' ;`},
			want:  []string{`c = '` + sp(1) + `\`, sp(1) + `' ;`},
			final: StateNone,
		},
		{
			name:  "unterminated comment runs to end of file",
			in:    []string{"x; /* open {", "}", "still }"},
			want:  []string{"x; " + sp(9), sp(1), sp(7)},
			final: StateBlockComment,
		},
		{
			name:  "line comment does not continue",
			in:    []string{"// a {", "}"},
			want:  []string{sp(6), "}"},
			final: StateNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			for i, line := range tt.in {
				got := s.Line(line)
				if got != tt.want[i] {
					t.Fatalf("line %d (%q):\nwant %q\ngot  %q", i, line, tt.want[i], got)
				}
			}
			if s.State() != tt.final {
				t.Fatalf("final state = %s, want %s", s.State(), tt.final)
			}
		})
	}
}

func TestLinesPreserveLength(t *testing.T) {
	in := []string{
		`printf("%d {\n", x); /* } */`,
		`  char q = '"'; // "`,
		`  s = "unterminated \`,
		`  still {string}" ; t = '\\';`,
		`/* multi`,
		`   line } */ }`,
	}
	out := Lines(in)
	if len(out) != len(in) {
		t.Fatalf("got %d lines, want %d", len(out), len(in))
	}
	for i := range in {
		if len(out[i]) != len(in[i]) {
			t.Errorf("line %d: length %d, want %d (%q)", i, len(out[i]), len(in[i]), out[i])
		}
	}
	if strings.Count(out[3], "{") != 0 || strings.Count(out[0], "{") != 0 {
		t.Errorf("brackets leaked from literals: %q / %q", out[0], out[3])
	}
	if out[5] != sp(12)+" }" {
		t.Errorf("line 5 = %q", out[5])
	}
}

func TestLinesFreshStatePerCall(t *testing.T) {
	_ = Lines([]string{"/* never closed"})
	out := Lines([]string{"{"})
	if out[0] != "{" {
		t.Fatalf("state leaked between files: %q", out[0])
	}
}
