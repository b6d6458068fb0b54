package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Скобки
	BrkMismatched Code = 1001 // closer without opener or of the wrong kind
	BrkUnclosed   Code = 1002 // opener still on the stack at end of file

	// Ошибки I/O
	IOCacheError Code = 4002 // cache read or write failed; the run continues

	// Observability
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:   "Unknown error",
	BrkMismatched: "Mismatched bracket",
	BrkUnclosed:   "Unclosed bracket",
	IOCacheError:  "Result cache error",
	ObsTimings:    "Observability timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("BRK%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
