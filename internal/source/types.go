package source

import "fmt"

// FileFlags encodes metadata about a source file.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	// FileHadCRLF marks files with at least one \r\n terminator.
	FileHadCRLF
	// FileNoFinalNewline marks files whose last line has no terminator.
	FileNoFinalNewline
)

// File captures metadata and content for a single source file.
type File struct {
	Path    string
	Content []byte
	// Lines holds one entry per physical line, without the '\n' terminator.
	// A '\r' preceding '\n' stays part of the line.
	Lines []string
	// Hash is the SHA-256 of Content; result cache keys derive from it.
	Hash  [32]byte
	Flags FileFlags
}

// Pos is a 0-based row/column position inside a file.
type Pos struct {
	Row uint32
	Col uint32 // в байтах
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// LineCol converts the position into its 1-based form.
func (p Pos) LineCol() LineCol {
	return LineCol{Line: p.Row + 1, Col: p.Col + 1}
}
