package fuzztests

import (
	"bytes"
	"testing"

	"reindent/internal/diag"
	"reindent/internal/reindent"
	"reindent/internal/sanitize"
	"reindent/internal/source"
	"reindent/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzSanitizeKeepsLength(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		file := source.NewVirtual("fuzz.cxx", clampInput(input))
		clean := sanitize.Lines(file.Lines)
		if len(clean) != len(file.Lines) {
			t.Fatalf("line count %d, want %d", len(clean), len(file.Lines))
		}
		for i := range clean {
			if len(clean[i]) != len(file.Lines[i]) {
				t.Fatalf("row %d: length %d, want %d", i, len(clean[i]), len(file.Lines[i]))
			}
		}
	})
}

func FuzzReindentPreservesContent(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		bag := diag.NewBag(128)
		out, _, err := reindent.Reformat("fuzz.cxx", input, diag.BagReporter{Bag: bag})
		if err != nil {
			t.Fatalf("Reformat: %v", err)
		}
		if err := testkit.CheckPreserved(input, out); err != nil {
			t.Fatal(err)
		}
	})
}

func FuzzReindentIdempotent(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		first, _, err := reindent.Reformat("fuzz.cxx", input, nil)
		if err != nil {
			t.Fatalf("Reformat: %v", err)
		}
		second, res, err := reindent.Reformat("fuzz.cxx", first, nil)
		if err != nil {
			t.Fatalf("second Reformat: %v", err)
		}
		if res.Changed || !bytes.Equal(first, second) {
			t.Fatalf("output is not a fixed point:\nfirst  %q\nsecond %q", first, second)
		}
	})
}
