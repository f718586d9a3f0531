package html

import (
	"errors"
	"fmt"
)

// Structural errors reported by the parser. A *ParseError wraps exactly one
// of them, so errors.Is works on the returned error.
var (
	ErrMalformedTag       = errors.New("malformed tag")
	ErrMismatchedCloseTag = errors.New("mismatched close tag")
	ErrUnclosedTag        = errors.New("unclosed tag")
)

// ParseError describes where the markup stopped making sense.
type ParseError struct {
	Kind   error  // one of the Err* sentinels
	Tag    string // tag named by the offending token
	Want   string // innermost open element, if any
	Offset int    // byte offset of the offending token, -1 if unknown
}

func (e *ParseError) Error() string {
	switch {
	case e.Kind == ErrMismatchedCloseTag && e.Want == "":
		return fmt.Sprintf("%v </%s> at offset %d: no open element", e.Kind, e.Tag, e.Offset)
	case e.Kind == ErrMismatchedCloseTag:
		return fmt.Sprintf("%v </%s> at offset %d: innermost open element is <%s>", e.Kind, e.Tag, e.Offset, e.Want)
	case e.Kind == ErrUnclosedTag:
		return fmt.Sprintf("%v <%s> opened at offset %d", e.Kind, e.Tag, e.Offset)
	case e.Offset < 0:
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v at offset %d", e.Kind, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// IsParseError reports whether err was caused by bad markup rather than by
// the environment.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
