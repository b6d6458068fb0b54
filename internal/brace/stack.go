package brace

// Kind is the opening delimiter of a bracket pair.
type Kind byte

const (
	KindNone   Kind = 0
	KindBrace  Kind = '{'
	KindParen  Kind = '('
	KindSquare Kind = '['
)

// Closer returns the byte that closes k.
func (k Kind) Closer() byte {
	switch k {
	case KindBrace:
		return '}'
	case KindParen:
		return ')'
	case KindSquare:
		return ']'
	}
	return 0
}

// openerFor maps a closing byte to the Kind it must match.
func openerFor(c byte) Kind {
	switch c {
	case '}':
		return KindBrace
	case ')':
		return KindParen
	case ']':
		return KindSquare
	}
	return KindNone
}

// Entry is an opening delimiter waiting for its closer.
type Entry struct {
	Kind Kind
	Row  int
	Col  int
	// Indent is the indentation column of the controlling statement when the
	// opener was pushed.
	Indent int
}

// Stack pairs closers with the nearest unmatched opener.
type Stack struct {
	entries []Entry
}

// Push adds an opener.
func (s *Stack) Push(e Entry) {
	s.entries = append(s.entries, e)
}

// Pop removes the innermost opener. On underflow it returns a zero Entry
// (Kind == KindNone) and false.
func (s *Stack) Pop() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

// Peek returns the innermost opener without removing it.
func (s *Stack) Peek() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *Stack) Len() int {
	return len(s.entries)
}

// Drain empties the stack and returns what was left, outermost first.
func (s *Stack) Drain() []Entry {
	out := s.entries
	s.entries = nil
	return out
}

// groupDepth counts the parens and square brackets open above the innermost brace.
func (s *Stack) groupDepth() int {
	depth := 0
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Kind == KindBrace {
			break
		}
		depth++
	}
	return depth
}
