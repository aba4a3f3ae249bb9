package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("products file is not valid JSON")

	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("data is invalid")
)

// ParseError reports a ledger file that exists but cannot be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrParse) match any ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ValidationError reports a record that does not match the expected shape.
// Index is the record's position in the file, or -1 for records that did
// not come from a file (e.g. the add command's input).
type ValidationError struct {
	Index    int
	Message  string
	Problems []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Index >= 0 {
		fmt.Fprintf(&b, " (record %d)", e.Index)
	}
	if len(e.Problems) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Problems, "; "))
	}
	return b.String()
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
