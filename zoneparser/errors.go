package zoneparser

import (
	"errors"
	"fmt"
)

// Error kinds, matched with errors.Is against a returned ParseError.
var (
	// ErrLex marks structural lexing errors: an unterminated quoted
	// string or unbalanced parentheses.
	ErrLex = errors.New("lex error")
	// ErrDirective marks an unknown or malformed $ directive.
	ErrDirective = errors.New("directive error")
	// ErrResolution marks an owner, TTL or class that no fallback
	// could determine.
	ErrResolution = errors.New("resolution error")
	// ErrRdata marks a wrong field count or unparsable field for a
	// known record type.
	ErrRdata = errors.New("rdata error")
)

// ParseError reports a parse failure with the position of the
// offending line.
type ParseError struct {
	File string
	Line int
	Kind error
	Msg  string
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: line %d: %s", e.File, e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Kind }

func parseErrorf(file string, line int, kind error, format string, args ...interface{}) *ParseError {
	return &ParseError{
		File: file,
		Line: line,
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
	}
}
