// Package errs defines the error taxonomy shared by every layer of the
// Deribit FIX client: codec, session, message catalog, transport, and
// the concurrent runtime.
package errs

import "fmt"

// Kind classifies an Error so callers can branch on failure category
// with errors.Is instead of string matching.
type Kind int

const (
	// KindConnection covers transport establishment failure, unexpected
	// close, or a write attempted after close.
	KindConnection Kind = iota
	// KindAuthentication covers a server Logon rejection or an inability
	// to derive the password hash.
	KindAuthentication
	// KindMessageParsing covers malformed inbound bytes, a missing
	// required tag, or a non-numeric tag.
	KindMessageParsing
	// KindMessageConstruction covers a builder invoked without a
	// required field.
	KindMessageConstruction
	// KindSession covers an operation attempted in the wrong session
	// state, e.g. a send before logon.
	KindSession
	// KindIO covers an underlying byte-level I/O error.
	KindIO
	// KindConfig covers invalid configuration at validate time.
	KindConfig
	// KindTimeout covers a bounded wait that elapsed.
	KindTimeout
	// KindProtocol covers a sequence violation, checksum mismatch, or
	// unknown MsgType where one is required.
	KindProtocol
	// KindGeneric is the catch-all, carrying a human-readable message.
	KindGeneric
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "Connection"
	case KindAuthentication:
		return "Authentication"
	case KindMessageParsing:
		return "MessageParsing"
	case KindMessageConstruction:
		return "MessageConstruction"
	case KindSession:
		return "Session"
	case KindIO:
		return "Io"
	case KindConfig:
		return "Config"
	case KindTimeout:
		return "Timeout"
	case KindProtocol:
		return "Protocol"
	default:
		return "Generic"
	}
}

// Error is the concrete error type returned throughout this module. It
// wraps an optional underlying cause so errors.Unwrap/errors.Is chains
// work against both the Kind and the original cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, errs.Sentinel(errs.KindProtocol)) style
// sentinels work: a *Error target matches when its Kind is equal and
// its Message is either empty or equal to e's.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// New builds an *Error of the given Kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given Kind around an existing cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Sentinel returns a zero-message *Error of the given Kind, suitable as
// an errors.Is target: errors.Is(err, errs.Sentinel(errs.KindTimeout)).
func Sentinel(kind Kind) *Error { return &Error{Kind: kind} }
