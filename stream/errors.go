package stream

import (
	"errors"
	"fmt"
)

const (
	DefaultHeader = "HepMC::Version 2.06.09\nHepMC::IO_GenEvent-START_EVENT_LISTING\n"
	Footer        = "HepMC::IO_GenEvent-END_EVENT_LISTING\n"
)

var (
	// ErrFinished is returned by a Writer once its footer has been written.
	ErrFinished = errors.New("writer finished")
	// ErrSource marks read errors of the Source, as opposed to malformed
	// input. A Reader does not recover from them.
	ErrSource = errors.New("source error")
)

// LineError locates a read error in the input.
type LineError struct {
	Err error
	// Line is the offending line without its terminator. For errors of
	// the Source it holds what was read of the line before the failure.
	Line   string
	LineNr int
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func (e *LineError) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("line %d: %s", e.LineNr, e.Err.Error())
	}
	return fmt.Sprintf("line %d: %s\n\t%q", e.LineNr, e.Err.Error(), e.Line)
}
