package imgfs

import (
	"errors"
	"fmt"
)

// Kind enumerates the error categories surfaced by the store, the CLI, and
// the HTTP front-end. Ordering is stable and matches the source project's
// error table; None is the zero value so a struct embedding a Kind reads as
// "no error" before anything sets it.
type Kind int

const (
	None Kind = iota
	Io
	Runtime
	OutOfMemory
	NotEnoughArguments
	InvalidFilename
	InvalidCommand
	InvalidArgument
	MaxFiles
	Resolutions
	InvalidImgID
	Full
	NotFound
	DuplicateId
	ImgLib
	Threading
	Debug
)

var kindNames = [...]string{
	None:               "none",
	Io:                 "I/O error",
	Runtime:            "runtime error",
	OutOfMemory:        "out of memory",
	NotEnoughArguments: "not enough arguments",
	InvalidFilename:    "invalid filename",
	InvalidCommand:     "invalid command",
	InvalidArgument:    "invalid argument",
	MaxFiles:           "max_files error",
	Resolutions:        "resolutions error",
	InvalidImgID:       "invalid image ID",
	Full:               "imgFS full",
	NotFound:           "image not found",
	DuplicateId:        "duplicate image ID",
	ImgLib:             "image library error",
	Threading:          "threading error",
	Debug:              "debug",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown error"
	}
	return kindNames[k]
}

// Error wraps a [Kind] with an optional underlying cause, supporting
// errors.Is/errors.As against both the Kind and the wrapped cause (e.g. an
// *os.PathError under Kind Io).
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// newErr builds an *Error with a formatted message.
func newErr(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error carrying the same Kind, so callers
// can write errors.Is(err, imgfs.KindError(NotFound)).
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

// KindError returns a bare *Error of the given Kind, suitable as an
// errors.Is target: errors.Is(err, imgfs.KindError(imgfs.NotFound)).
func KindError(k Kind) error {
	return &Error{Kind: k}
}

// KindOf extracts the Kind carried by err: None if err is nil, Runtime if
// err is not an *Error.
func KindOf(err error) Kind {
	if err == nil {
		return None
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Runtime
}
