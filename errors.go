package citypop

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by errors.Is for any *Error of KindNotFound.
var ErrNotFound = errors.New("no matching cities found")

// Kind classifies a search failure. The set is closed: every error
// returned by Search is an *Error carrying one of the kinds below.
type Kind uint8

const (
	// KindIO means the source could not be opened or read.
	KindIO Kind = iota + 1
	// KindDecode means a record could not be parsed into a Row.
	KindDecode
	// KindNotFound means the whole input was scanned without a match.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindDecode:
		return "decode"
	case KindNotFound:
		return "not_found"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is the error type returned by Search and SearchReader.
type Error struct {
	Op     string // operation that failed, e.g. "open" or "decode"
	Kind   Kind
	Path   string // source path, empty for standard input
	Record int    // 1-based data record index, 0 when unknown
	Err    error  // underlying cause, nil for KindNotFound
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Kind == KindNotFound {
		return ErrNotFound.Error()
	}

	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Record > 0 {
		msg += fmt.Sprintf(" (record %d)", e.Record)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is ErrNotFound and e is a not-found error.
func (e *Error) Is(target error) bool {
	return e != nil && e.Kind == KindNotFound && target == ErrNotFound
}

// IsKind reports whether any error in err's chain is an *Error of kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func ioError(op, path string, err error) *Error {
	return &Error{Op: op, Kind: KindIO, Path: path, Err: err}
}

func decodeError(path string, record int, err error) *Error {
	return &Error{Op: "decode", Kind: KindDecode, Path: path, Record: record, Err: err}
}

func notFound(path string) *Error {
	return &Error{Op: "search", Kind: KindNotFound, Path: path}
}
