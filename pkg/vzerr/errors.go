// Package vzerr defines the vvSQL error taxonomy: tagged error variants
// carrying line/column and context, as specified in spec.md §7. Every
// error surfaced across the compiler boundary is one of these kinds; none
// are silently swallowed.
package vzerr

import (
	"fmt"

	"github.com/vvsql/vvsql/pkg/token"
)

// Kind identifies which branch of the error taxonomy an Error belongs to.
type Kind int

// Recognized error kinds (spec.md §7).
const (
	KindSplit Kind = iota
	KindParse
	KindModel
	KindBackend
	KindEmit
	KindIO
)

// String returns the kind's canonical name, used as the API "type" field.
func (k Kind) String() string {
	switch k {
	case KindSplit:
		return "SplitError"
	case KindParse:
		return "ParseError"
	case KindModel:
		return "ModelError"
	case KindBackend:
		return "BackendError"
	case KindEmit:
		return "EmitError"
	case KindIO:
		return "IOError"
	default:
		return "UnknownError"
	}
}

// Error is the single error type produced by every vvSQL component.
// Position and Context are optional: BackendError and IOError rarely
// carry a source position.
type Error struct {
	Kind    Kind
	Message string
	Pos     token.Position // zero value means "no position"
	Context string         // short description of the enclosing clause, e.g. "SCALE color"

	// Backend-specific detail, set only for KindBackend.
	Backend     string
	SQLSnippet  string
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindBackend:
		if e.Backend != "" {
			return fmt.Sprintf("%s (%s): %s", e.Kind, e.Backend, e.Message)
		}
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Pos.IsValid() && e.Context != "":
		return fmt.Sprintf("%s at line %d, column %d (%s): %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Context, e.Message)
	case e.Pos.IsValid():
		return fmt.Sprintf("%s at line %d, column %d: %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Message)
	case e.Context != "":
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Context, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// Split builds a SplitError.
func Split(msg string) *Error {
	return &Error{Kind: KindSplit, Message: msg}
}

// Parse builds a ParseError at pos. Lexer positions are already 1-based
// (see toOneBased), so pos is reported to users as given.
func Parse(pos token.Position, context, format string, args ...any) *Error {
	return &Error{
		Kind:    KindParse,
		Message: fmt.Sprintf(format, args...),
		Pos:     toOneBased(pos),
		Context: context,
	}
}

// Model builds a ModelError.
func Model(pos token.Position, context, format string, args ...any) *Error {
	return &Error{
		Kind:    KindModel,
		Message: fmt.Sprintf(format, args...),
		Pos:     toOneBased(pos),
		Context: context,
	}
}

// Backend builds a BackendError wrapping an engine-originated failure.
func Backend(backend, sqlSnippet string, err error) *Error {
	return &Error{
		Kind:       KindBackend,
		Message:    err.Error(),
		Backend:    backend,
		SQLSnippet: sqlSnippet,
	}
}

// Emit builds an EmitError.
func Emit(format string, args ...any) *Error {
	return &Error{Kind: KindEmit, Message: fmt.Sprintf(format, args...)}
}

// IO builds an IOError.
func IO(err error) *Error {
	return &Error{Kind: KindIO, Message: err.Error()}
}

// toOneBased converts a lexer's 0-based line/column into the 1-based
// coordinates reported to users. Lexer positions in pkg/token are already
// 1-based (line starts at 1, column at 1 after the first readChar), so
// this is a passthrough guarded against the zero value.
func toOneBased(pos token.Position) token.Position {
	if pos.Line <= 0 {
		return pos
	}
	return pos
}

// As reports whether err is a *Error of the given kind, returning it if so.
func As(err error, kind Kind) (*Error, bool) {
	ve, ok := err.(*Error)
	if !ok || ve.Kind != kind {
		return nil, false
	}
	return ve, true
}
