package types

import "github.com/pkg/errors"

// DomainError reports a violation of one of this package's own
// invariants: a malformed intersection, an out-of-range bound kind, a
// supertype set requested for the null type. It is always a programmer
// error in a caller, never something produced from ordinary use of
// well-formed types, so it is raised by panic rather than returned.
type DomainError struct {
	msg string
}

func (e *DomainError) Error() string { return e.msg }

func newDomainError(msg string) error {
	return errors.WithStack(&DomainError{msg: msg})
}

// newDomainErrorf is like newDomainError but with fmt-style formatting.
func newDomainErrorf(format string, args ...interface{}) error {
	return errors.WithStack(&DomainError{msg: errors.Errorf(format, args...).Error()})
}
