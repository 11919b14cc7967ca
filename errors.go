/* Go IPP - IPP core protocol codec in pure Go
 *
 * Error taxonomy for the decoder, encoder, stream parser and generator
 * helpers
 */

package ipp

import (
	"fmt"
)

// Kind classifies a codec Error into one of the outcomes the decoder,
// encoder, stream parser and generator helpers can produce.
type Kind int

// Kind values. These mirror the error taxonomy of the wire codec:
// every failure the decoder, encoder or stream parser can report maps
// to exactly one of them.
const (
	// Truncated means the input ended before a required field could
	// be read in full.
	Truncated Kind = iota

	// Malformed means a length prefix or fixed-size value failed its
	// invariant: a negative length, a fixed-size value with the wrong
	// payload size, or an out-of-range field such as an invalid UTC
	// direction byte in a DateTime. The encoder also reports it for a
	// message it refuses to encode: version major 0, request ID 0, an
	// attribute with no values or an over-long name, or a value stored
	// under a delimiter or extension tag.
	Malformed

	// UnsupportedGroup means a byte read where a group tag belongs
	// named neither a known group nor the end-of-attributes marker:
	// an unassigned delimiter in 0x00..0x0f, or a value tag appearing
	// before any group was opened.
	UnsupportedGroup

	// UnsupportedValueTag means a value-tag byte had no entry in the
	// decoder's dispatch table.
	UnsupportedValueTag

	// UnexpectedContinuation means a zero-length attribute name was
	// read with no preceding named attribute in the current group to
	// attach the value to.
	UnexpectedContinuation

	// InvalidInput means a generator helper's input failed validation
	// (out-of-range integer, non-ASCII octet in an ASCII-only kind,
	// unknown resolution unit, empty language tag, and so on).
	InvalidInput

	// PrematureEnd means the stream parser's writable side finished
	// before the header was fully parsed. A Feed after Close also
	// reports it.
	PrematureEnd
)

// String names the Kind, for use in error messages and logging.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var kindNames = map[Kind]string{
	Truncated:              "Truncated",
	Malformed:              "Malformed",
	UnsupportedGroup:       "UnsupportedGroup",
	UnsupportedValueTag:    "UnsupportedValueTag",
	UnexpectedContinuation: "UnexpectedContinuation",
	InvalidInput:           "InvalidInput",
	PrematureEnd:           "PrematureEnd",
}

// Error is the concrete error type returned by this package. It
// carries the Kind of failure, the byte offset within the input at
// which it was detected (-1 when not applicable, e.g. for generator
// helpers), and an optional wrapped cause.
type Error struct {
	Kind   Kind
	Offset int
	Msg    string
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Offset >= 0 {
		if e.Err != nil {
			return fmt.Sprintf("ipp: %s at offset 0x%x: %s: %s",
				e.Kind, e.Offset, e.Msg, e.Err)
		}
		return fmt.Sprintf("ipp: %s at offset 0x%x: %s", e.Kind, e.Offset, e.Msg)
	}

	if e.Err != nil {
		return fmt.Sprintf("ipp: %s: %s: %s", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("ipp: %s: %s", e.Kind, e.Msg)
}

// Unwrap returns the wrapped cause, if any, so that errors.Is and
// errors.As see through an *Error to the underlying failure.
func (e *Error) Unwrap() error {
	return e.Err
}

// newErr builds an *Error with a byte offset, for decoder and stream
// parser failures where the position in the input is known.
func newErr(kind Kind, offset int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// newErrNoOffset builds an *Error with no byte offset, for encoder
// and generator-helper failures that have no position in a byte
// stream to report.
func newErrNoOffset(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Offset: -1, Msg: fmt.Sprintf(format, args...)}
}

// wrapErr builds an *Error that wraps a lower-level cause (the
// decoder uses it for a failure reported by a per-kind value decoder).
func wrapErr(kind Kind, offset int, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, args...), Err: err}
}
