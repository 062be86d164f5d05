package token

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax = errors.New("syntax error")
	ErrInt    = errors.New("integer conversion error")
	ErrFloat  = errors.New("float conversion error")
)

// ScanErr locates a grammar error within a line.
type ScanErr struct {
	Err error
	// Col is the 0-based byte offset of the offending field.
	Col    int
	Detail string
}

func (e *ScanErr) Unwrap() error {
	return e.Err
}

func (e *ScanErr) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s at col %d", e.Err.Error(), e.Col)
	}
	return fmt.Sprintf("%s: %s at col %d", e.Err.Error(), e.Detail, e.Col)
}

func ExpectedErr(what string, col int) error {
	return &ScanErr{Err: ErrSyntax, Col: col, Detail: "expected " + what}
}

func UnexpectedErr(what string, col int) error {
	return &ScanErr{Err: ErrSyntax, Col: col, Detail: "unexpected " + what}
}
