// Package cache stores re-indentation results on disk, keyed by the SHA-256
// of the input bytes, so unchanged files skip both passes.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/vmihailenco/msgpack/v5"

	"reindent/internal/diag"
	"reindent/internal/source"
)

// Current schema version - increment when Entry format or engine output changes
const schemaVersion uint16 = 1

// Key identifies a cached result.
type Key [32]byte

// KeyFor derives the key of f from its content hash and the schema version.
func KeyFor(f *source.File) Key {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "reindent/%d\x00", schemaVersion)
	_, _ = h.Write(f.Hash[:])
	var k Key
	copy(k[:], h.Sum(nil))
	return k
}

func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// Entry is the cached outcome of one file.
type Entry struct {
	Schema      uint16       `msgpack:"schema"`
	Lines       []string     `msgpack:"lines"`
	Adjusted    []int        `msgpack:"adjusted"`
	Unclosed    int          `msgpack:"unclosed"`
	Diagnostics []Diagnostic `msgpack:"diagnostics"`
}

// Diagnostic is the on-disk form of diag.Diagnostic.
type Diagnostic struct {
	Severity uint8  `msgpack:"sev"`
	Code     uint16 `msgpack:"code"`
	Message  string `msgpack:"msg"`
	Row      uint32 `msgpack:"row"`
	Col      uint32 `msgpack:"col"`
	Notes    []Note `msgpack:"notes,omitempty"`
}

// Note is the on-disk form of diag.Note.
type Note struct {
	Msg string `msgpack:"msg"`
	Row uint32 `msgpack:"row"`
	Col uint32 `msgpack:"col"`
}

// Cache is a directory of msgpack files on an afero filesystem.
type Cache struct {
	fs  afero.Fs
	dir string
}

// DefaultDir returns $XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>.
func DefaultDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// Open prepares a cache rooted at dir.
func Open(fsys afero.Fs, dir string) (*Cache, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Cache{fs: fsys, dir: dir}, nil
}

func (c *Cache) pathFor(key Key) string {
	hexKey := key.String()
	// двухсимвольный префикс, чтобы каталог не разрастался
	return filepath.Join(c.dir, hexKey[:2], hexKey+".mp")
}

// Put writes entry under key, replacing any previous value atomically.
func (c *Cache) Put(key Key, entry *Entry) (err error) {
	if c == nil || entry == nil {
		return nil
	}
	entry.Schema = schemaVersion

	p := c.pathFor(key)
	if err := c.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := afero.TempFile(c.fs, filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = c.fs.Remove(tmp)
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(entry); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return c.fs.Rename(tmp, p)
}

// Get loads the entry for key. A missing entry or one written by another
// schema version reports false without error.
func (c *Cache) Get(key Key, out *Entry) (bool, error) {
	if c == nil {
		return false, nil
	}
	f, err := c.fs.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	var entry Entry
	if err := msgpack.NewDecoder(f).Decode(&entry); err != nil {
		return false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	if entry.Schema != schemaVersion {
		return false, nil
	}
	*out = entry
	return true, nil
}

// DropAll removes every cached entry.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	if err := c.fs.RemoveAll(c.dir); err != nil {
		return err
	}
	return c.fs.MkdirAll(c.dir, 0o755)
}

// FromDiagnostics converts diagnostics to their cached form.
func FromDiagnostics(items []diag.Diagnostic) []Diagnostic {
	if len(items) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(items))
	for i, d := range items {
		out[i] = Diagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Row:      d.Primary.Row,
			Col:      d.Primary.Col,
		}
		for _, n := range d.Notes {
			out[i].Notes = append(out[i].Notes, Note{Msg: n.Msg, Row: n.Pos.Row, Col: n.Pos.Col})
		}
	}
	return out
}

// Replay reports cached diagnostics to rep in their original order.
func Replay(items []Diagnostic, rep diag.Reporter) {
	for _, d := range items {
		var notes []diag.Note
		for _, n := range d.Notes {
			notes = append(notes, diag.Note{Pos: source.Pos{Row: n.Row, Col: n.Col}, Msg: n.Msg})
		}
		rep.Report(diag.Code(d.Code), diag.Severity(d.Severity), source.Pos{Row: d.Row, Col: d.Col}, d.Message, notes)
	}
}
