package sanitize

// State is the open construct carried across a line boundary.
type State uint8

const (
	// StateNone means no construct is open.
	StateNone State = iota
	// StateBlockComment waits for "*/".
	StateBlockComment
	// StateString waits for an unescaped '"'.
	StateString
	// StateChar waits for an unescaped '\''.
	StateChar
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateBlockComment:
		return "block-comment"
	case StateString:
		return "string"
	case StateChar:
		return "char"
	}
	return "unknown"
}

// production is a lexical rule anchored at a key byte. Values are listed in
// priority order: comments are tried before literals.
type production uint8

const (
	prodNone              production = iota
	prodBlockComment                 // /* ... */ on one line
	prodBlockCommentStart            // /* ... to end of line
	prodLineComment                  // // ... to end of line
	prodString                       // "..."
	prodStringStart                  // "...\ at end of line
	prodChar                         // 'x'
	prodCharStart                    // 'x...\ at end of line
)
