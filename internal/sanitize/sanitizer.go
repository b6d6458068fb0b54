package sanitize

import "bytes"

// placeholder replaces every blanked byte. It is neither a bracket nor a key byte.
const placeholder = ' '

var (
	blockOpen  = []byte("/*")
	blockClose = []byte("*/")
)

// Sanitizer rewrites lines one at a time and carries State between them.
// A Sanitizer serves exactly one file; use a fresh one per file.
type Sanitizer struct {
	state State
}

// New returns a Sanitizer positioned at the start of a file.
func New() *Sanitizer {
	return &Sanitizer{state: StateNone}
}

// State reports the construct left open by the last line.
func (s *Sanitizer) State() State {
	return s.state
}

// Lines sanitizes a whole file with a fresh Sanitizer.
func Lines(lines []string) []string {
	s := New()
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = s.Line(line)
	}
	return out
}

// Line returns the sanitized form of line and advances the state.
//
// Comments are blanked entirely, delimiters included. Literals keep their
// quote bytes and have their interiors blanked. An unterminated literal that
// continues on the next line keeps its trailing backslash.
func (s *Sanitizer) Line(line string) string {
	buf := []byte(line)
	pos := 0

	if s.state != StateNone {
		end, ok := s.resume(buf)
		if !ok {
			s.blankContinuation(buf)
			return string(buf)
		}
		pos = end
		s.state = StateNone
	}

	for pos < len(buf) {
		at := indexKey(buf, pos)
		if at < 0 {
			break
		}
		prod, end := match(buf, at)
		switch prod {
		case prodBlockComment:
			fill(buf, at, end)
			pos = end
		case prodBlockCommentStart:
			fill(buf, at, len(buf))
			s.state = StateBlockComment
			return string(buf)
		case prodLineComment:
			fill(buf, at, len(buf))
			return string(buf)
		case prodString, prodChar:
			fill(buf, at+1, end-1)
			pos = end
		case prodStringStart:
			fill(buf, at+1, len(buf)-1)
			s.state = StateString
			return string(buf)
		case prodCharStart:
			fill(buf, at+1, len(buf)-1)
			s.state = StateChar
			return string(buf)
		case prodNone:
			pos = at + 1
		}
	}
	return string(buf)
}

// resume looks for the terminator of the pending construct at the start of
// buf. On success the consumed prefix is blanked and the scan offset returned.
func (s *Sanitizer) resume(buf []byte) (int, bool) {
	switch s.state {
	case StateBlockComment:
		idx := bytes.Index(buf, blockClose)
		if idx < 0 {
			return 0, false
		}
		end := idx + len(blockClose)
		fill(buf, 0, end)
		return end, true
	case StateString, StateChar:
		quote := byte('"')
		if s.state == StateChar {
			quote = '\''
		}
		end, ok := scanQuoted(buf, 0, quote)
		if !ok {
			return 0, false
		}
		fill(buf, 0, end-1)
		return end, true
	}
	return 0, true
}

// blankContinuation handles a line that lies entirely inside the pending
// construct. The state is kept: an unterminated construct runs to end of file.
func (s *Sanitizer) blankContinuation(buf []byte) {
	if s.state == StateBlockComment {
		fill(buf, 0, len(buf))
		return
	}
	if len(buf) > 0 && buf[len(buf)-1] == '\\' {
		fill(buf, 0, len(buf)-1)
		return
	}
	fill(buf, 0, len(buf))
}

// match picks the first production that applies at buf[at] and returns the
// end offset of the matched text.
func match(buf []byte, at int) (production, int) {
	n := len(buf)
	switch buf[at] {
	case '/':
		if at+1 >= n {
			return prodNone, at + 1
		}
		switch buf[at+1] {
		case '*':
			idx := bytes.Index(buf[at+len(blockOpen):], blockClose)
			if idx < 0 {
				return prodBlockCommentStart, n
			}
			return prodBlockComment, at + len(blockOpen) + idx + len(blockClose)
		case '/':
			return prodLineComment, n
		}
	case '"':
		end, ok := scanQuoted(buf, at+1, '"')
		if ok {
			return prodString, end
		}
		if continues(buf) {
			return prodStringStart, n
		}
	case '\'':
		end, ok := scanQuoted(buf, at+1, '\'')
		if ok {
			// '' is not a character literal.
			if end-at > 2 {
				return prodChar, end
			}
			return prodNone, at + 1
		}
		if continues(buf) {
			return prodCharStart, n
		}
	}
	return prodNone, at + 1
}

// scanQuoted finds the first unescaped quote at or after from. A backslash
// escapes the byte that follows it.
func scanQuoted(buf []byte, from int, quote byte) (int, bool) {
	for i := from; i < len(buf); i++ {
		switch buf[i] {
		case '\\':
			i++
		case quote:
			return i + 1, true
		}
	}
	return len(buf), false
}

// continues reports whether an unterminated literal is continued on the next
// line by a trailing backslash.
func continues(buf []byte) bool {
	return len(buf) > 0 && buf[len(buf)-1] == '\\'
}

func indexKey(buf []byte, from int) int {
	idx := bytes.IndexAny(buf[from:], "/\"'")
	if idx < 0 {
		return -1
	}
	return from + idx
}

func fill(buf []byte, from, to int) {
	for i := from; i < to; i++ {
		buf[i] = placeholder
	}
}
