package entry

import (
	"errors"
	"fmt"
)

// Kind enumerates every failure the entry pipeline can report.
// Kind implements error so callers can write errors.Is(err, entry.MissingYear).
type Kind int

const (
	MalformedLine Kind = iota + 1
	UnknownEntryKind
	InvalidDateArity
	InvalidDateValue
	UnexpectedYear
	MissingYear
	MissingRequiredField
	TooManyFields
	InvalidRange

	// I/O layer.
	ReadDir
	ReadFile
	WriteFile
)

var kindNames = map[Kind]string{
	MalformedLine:        "malformed line",
	UnknownEntryKind:     "unknown entry kind",
	InvalidDateArity:     "invalid date arity",
	InvalidDateValue:     "invalid date value",
	UnexpectedYear:       "unexpected year",
	MissingYear:          "missing year",
	MissingRequiredField: "missing required field",
	TooManyFields:        "too many fields",
	InvalidRange:         "invalid range",
	ReadDir:              "cannot read directory",
	ReadFile:             "cannot read file",
	WriteFile:            "cannot write file",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) Error() string { return k.String() }

// IsIO reports whether k is an I/O failure rather than a format failure.
func (k Kind) IsIO() bool {
	return k >= ReadDir
}

// Error is a classified failure, optionally located in a file.
type Error struct {
	Kind Kind
	File string
	Line int // 1-based; 0 for file-level failures
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, msg)
	case e.File != "":
		return e.File + ": " + msg
	default:
		return msg
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches a bare Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// IOError classifies an I/O failure on path.
func IOError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, File: path, Err: err}
}

// Locate attaches a file and line to err. Unclassified errors are reported
// as MalformedLine.
func Locate(err error, file string, line int) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		return &Error{Kind: MalformedLine, File: file, Line: line, Err: err}
	}
	located := *e
	located.File = file
	located.Line = line
	return &located
}

// KindOf returns the Kind carried by err, or 0 when err is not classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return 0
}
