package rlp

import "fmt"

// ErrorKind is the closed set of ways an RLP operation can fail. Every
// failure raised by this package carries exactly one kind so callers can
// branch on failure mode instead of parsing message text.
type ErrorKind int

const (
	// MissingBytes: input truncated before an expected payload.
	MissingBytes ErrorKind = iota
	// TrailingBytes: extra bytes after a complete decode, or a decoded
	// struct/list left unconsumed items, or a non-canonical leading-zero
	// length prefix.
	TrailingBytes
	// ExpectedBytes: tree shape mismatch — a List was found where Bytes
	// was required.
	ExpectedBytes
	// ExpectedList: tree shape mismatch — Bytes was found where a List
	// was required.
	ExpectedList
	// InvalidBytes: value out of range for its target type (bad bool,
	// non-UTF-8 string, unknown envelope tag, ...).
	InvalidBytes
	// InvalidLength: declared length exceeds what the format or target
	// type can carry (length prefix too wide, non-canonical short/long
	// form choice, integer payload too wide for its target).
	InvalidLength
	// Message is a catch-all for bridge-level errors raised on behalf of
	// application types (e.g. unsupported field shape).
	Message
)

func (k ErrorKind) String() string {
	switch k {
	case MissingBytes:
		return "MissingBytes"
	case TrailingBytes:
		return "TrailingBytes"
	case ExpectedBytes:
		return "ExpectedBytes"
	case ExpectedList:
		return "ExpectedList"
	case InvalidBytes:
		return "InvalidBytes"
	case InvalidLength:
		return "InvalidLength"
	case Message:
		return "Message"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every fallible operation in this
// package. It is never recovered internally: on the first failure, parsing
// or encoding stops and the error propagates unchanged to the caller.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "rlp: " + e.Kind.String()
	}
	return fmt.Sprintf("rlp: %s: %s", e.Kind, e.Msg)
}

// Is allows errors.Is(err, rlp.ErrTrailingBytes) and friends to match any
// *Error of the same kind, regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func newErrorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Sentinel errors for errors.Is comparisons against a specific kind without
// needing a message.
var (
	ErrMissingBytes  = &Error{Kind: MissingBytes}
	ErrTrailingBytes = &Error{Kind: TrailingBytes}
	ErrExpectedBytes = &Error{Kind: ExpectedBytes}
	ErrExpectedList  = &Error{Kind: ExpectedList}
	ErrInvalidBytes  = &Error{Kind: InvalidBytes}
	ErrInvalidLength = &Error{Kind: InvalidLength}
)
