package spec

import "fmt"

// Error is an authoring error in a tactic pattern.
type Error struct {
	Offset  int    // byte offset into the (trimmed) pattern
	Reason  string // what went wrong
	Pattern string
}

func (e *Error) Error() string {
	return fmt.Sprintf("malformed pattern %q at offset %d: %s", e.Pattern, e.Offset, e.Reason)
}

func errorAt(pattern string, offset int, format string, args ...interface{}) *Error {
	return &Error{
		Offset:  offset,
		Reason:  fmt.Sprintf(format, args...),
		Pattern: pattern,
	}
}
