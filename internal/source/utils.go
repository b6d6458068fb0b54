package source

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"
)

// splitLines разбивает содержимое на строки по '\n'.
// Завершающий '\n' не порождает пустую строку в конце.
func splitLines(content []byte) (lines []string, flags FileFlags) {
	if len(content) == 0 {
		return nil, 0
	}
	if content[len(content)-1] != '\n' {
		flags |= FileNoFinalNewline
	}
	if bytes.Contains(content, []byte("\r\n")) {
		flags |= FileHadCRLF
	}

	body := content
	if flags&FileNoFinalNewline == 0 {
		body = content[:len(content)-1]
	}
	parts := bytes.Split(body, []byte{'\n'})
	lines = make([]string, len(parts))
	for i, p := range parts {
		lines[i] = string(p)
	}
	return lines, flags
}

// NewPos builds a Pos from int coordinates, panicking on overflow.
func NewPos(row, col int) Pos {
	r, err := safecast.Conv[uint32](row)
	if err != nil {
		panic(fmt.Errorf("row overflow: %w", err))
	}
	c, err := safecast.Conv[uint32](col)
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}
	return Pos{Row: r, Col: c}
}
