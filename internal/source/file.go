package source

import (
	"crypto/sha256"
	"fmt"

	"github.com/spf13/afero"
)

// New builds a File from raw bytes: splits lines and computes the hash.
// Content is kept verbatim: no BOM or CRLF normalisation. Path is kept as
// given, since diagnostics echo it back.
func New(path string, content []byte, flags FileFlags) *File {
	lines, lineFlags := splitLines(content)
	return &File{
		Path:    path,
		Content: content,
		Lines:   lines,
		Hash:    sha256.Sum256(content),
		Flags:   flags | lineFlags,
	}
}

// NewVirtual adds a virtual file (stdin, test, or generated) with the FileVirtual flag.
func NewVirtual(name string, content []byte) *File {
	return New(name, content, FileVirtual)
}

// Load reads a file from fsys in full and calls New.
func Load(fsys afero.Fs, path string) (*File, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	// #nosec G304 -- path is provided by the caller
	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return New(path, content, 0), nil
}

// Line возвращает строку с заданным номером (0-based).
// Если строка не существует, возвращает пустую строку.
func (f *File) Line(row uint32) string {
	if f == nil || int(row) >= len(f.Lines) {
		return ""
	}
	return f.Lines[row]
}

// LineCount returns the number of physical lines.
func (f *File) LineCount() int {
	if f == nil {
		return 0
	}
	return len(f.Lines)
}
