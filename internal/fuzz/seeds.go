package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
)

var sourceExts = map[string]bool{".c": true, ".h": true, ".cxx": true, ".cpp": true, ".golden": true}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addInlineSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || !sourceExts[filepath.Ext(path)] {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

// addInlineSeeds covers the lexical corners: continuations, escapes and
// unbalanced input.
func addInlineSeeds(f *testing.F) {
	for _, s := range []string{
		"",
		"\n",
		"if (x)\n    {\n    y();\n    }\n",
		"s = \"a\\\nb { \\\nc\";\n",
		"c = '\\'';\nd = '{';\n",
		"/* {\n } */ }\n",
		"f(a];\n)\n[\n",
		"x = a / b; // '\n",
		"  {\r\n  }\r\n",
		"#define M(x) { \\\n  x; }\n",
		"void f()\n  {\n  if (a)\n    {\n    b();\n    }\n    {\n    c();\n    }\n  }\n",
		"A::A()\n  : b(1),\n    c(2)\n  {\n  x();\n  }\n",
	} {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
