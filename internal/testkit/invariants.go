// Package testkit holds checks shared by tests of several packages.
package testkit

import (
	"bytes"
	"fmt"
	"strings"
)

const trailingSpace = " \t\r\v\f"

// CheckPreserved verifies that out differs from in only by indentation:
// 1) both have the same number of lines
// 2) every output line equals its input line with some leading spaces and
// the trailing whitespace removed
// 3) out ends with '\n' unless empty
func CheckPreserved(in, out []byte) error {
	inLines := splitLines(in)
	outLines := splitLines(out)
	if len(inLines) != len(outLines) {
		return fmt.Errorf("line count changed: %d -> %d", len(inLines), len(outLines))
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		return fmt.Errorf("output does not end with a newline")
	}
	for row := range inLines {
		src := strings.TrimRight(inLines[row], trailingSpace)
		dst := outLines[row]
		if dst != strings.TrimRight(dst, trailingSpace) {
			return fmt.Errorf("row %d: trailing whitespace kept: %q", row, dst)
		}
		if !strings.HasSuffix(src, dst) {
			return fmt.Errorf("row %d: content changed: %q -> %q", row, src, dst)
		}
		if strings.Trim(src[:len(src)-len(dst)], " ") != "" {
			return fmt.Errorf("row %d: removed more than leading spaces: %q -> %q", row, src, dst)
		}
	}
	return nil
}

func splitLines(b []byte) []string {
	if len(b) == 0 {
		return nil
	}
	b = bytes.TrimSuffix(b, []byte{'\n'})
	return strings.Split(string(b), "\n")
}
