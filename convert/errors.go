package convert

import "errors"

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind rather than matching error strings;
// Error() messages are for humans and may evolve.
type Kind string

const (
	// KindTypeNotFound: a type id did not resolve in the registry.
	KindTypeNotFound Kind = "TypeNotFound"
	// KindMissingTypeName: a composite or variant type has no path to
	// render a name from.
	KindMissingTypeName Kind = "MissingTypeName"
	// KindNotAVariant: a call/event/error type expected to be an enum
	// resolved to something else.
	KindNotAVariant Kind = "NotAVariant"
	// KindUnnamedField: a call argument field lacks the name the older
	// format requires.
	KindUnnamedField Kind = "UnnamedField"
	// KindKeyArityMismatch: a two-hasher map's key type did not resolve
	// to a two-element tuple.
	KindKeyArityMismatch Kind = "KeyArityMismatch"
	// KindUnsupportedVersion: the requested version pairing is not
	// implemented; only next-older-version conversion is supported.
	KindUnsupportedVersion Kind = "UnsupportedVersion"
	// KindInvariant: the input metadata violates a structural contract
	// (e.g. a map entry with zero hashers). Never tolerated with a
	// default.
	KindInvariant Kind = "Invariant"
)

// Error is the conversion error type. Conversion is all-or-nothing: the
// first Error raised anywhere aborts the whole call and surfaces
// unchanged.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func newError(kind Kind, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

// IsKind reports whether err is (or wraps) an *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
