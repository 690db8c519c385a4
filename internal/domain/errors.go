package domain

import "errors"

// ErrNotFound is returned by repositories when no row matches the identity.
// Use cases translate it into a NotFound error carrying the route's code.
var ErrNotFound = errors.New("record not found")

type ErrorKind int

const (
	KindInvalid ErrorKind = iota + 1
	KindNotFound
)

// Error is a client-attributable failure with a stable machine-readable code.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func Invalid(code, message string) *Error {
	return &Error{Kind: KindInvalid, Code: code, Message: message}
}

func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

// AsError unwraps err into *Error when it is one.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
