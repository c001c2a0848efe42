package loader

import (
	"errors"
	"fmt"
)

// ErrParse is wrapped by every *ParseError so callers can use errors.Is.
var ErrParse = errors.New("parse error")

// ParseError describes a malformed line in an edge list.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the line after trimming
	Msg  string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: line %d: %s: %q", ErrParse.Error(), e.Line, e.Msg, e.Text)
}

func (e *ParseError) Unwrap() error { return ErrParse }
