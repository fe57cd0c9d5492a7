package qrstyle

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrorLevel is the QR error-correction level requested from an Encoder.
type ErrorLevel uint8

const (
	// LevelL recovers about 7% of the symbol.
	LevelL ErrorLevel = iota
	// LevelM recovers about 15% of the symbol.
	LevelM
	// LevelQ recovers about 25% of the symbol.
	LevelQ
	// LevelH recovers about 30% of the symbol. Required when a logo covers
	// the center of the code.
	LevelH
)

func (l ErrorLevel) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	}
	return "ErrorLevel(" + strconv.Itoa(int(l)) + ")"
}

// ParseErrorLevel parses one of "L", "M", "Q", "H", ignoring case.
func ParseErrorLevel(s string) (ErrorLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	}
	return LevelM, errors.Errorf("qrstyle: unknown error-correction level %q", s)
}
