package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse        = errors.New("parse error")
	ErrBadPrefix    = fmt.Errorf("%w: unrecognized prefix", ErrParse)
	ErrNoVertex     = fmt.Errorf("%w: particle without vertex", ErrParse)
	ErrNotEvent     = fmt.Errorf("%w: expected event line", ErrParse)
	ErrNestedEvent  = fmt.Errorf("%w: event line inside event", ErrParse)
	ErrNoEvent      = fmt.Errorf("%w: no event started", ErrParse)
	ErrMultipleEvts = fmt.Errorf("%w: more than one event", ErrParse)
)

func recordErr(rec string, err error) error {
	return fmt.Errorf("%w: %s record: %w", ErrParse, rec, err)
}
