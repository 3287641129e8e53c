package db

import (
	"errors"
	"fmt"
)

// Kind classifies a store failure so callers can map it without knowing
// about SQL.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalid
	KindClosed
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindClosed:
		return "closed"
	default:
		return "internal"
	}
}

const (
	entPost   = "post"
	entThread = "thread"
)

// OpError describes a failed store operation.
type OpError struct {
	Op       string
	Kind     Kind
	Entity   string
	EntityID int64
	Err      error
}

func (e *OpError) Error() string {
	if e.EntityID != 0 {
		return fmt.Sprintf("%s: %s %d %s: %v", e.Op, e.Entity, e.EntityID, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Entity, e.Kind, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

type opOption func(*OpError)

func withEntityID(id int64) opOption {
	return func(e *OpError) {
		e.EntityID = id
	}
}

func newOpError(op string, kind Kind, entity string, err error, opts ...opOption) *OpError {
	e := &OpError{
		Op:     op,
		Kind:   kind,
		Entity: entity,
		Err:    err,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func notFoundError(op, entity string, id int64) *OpError {
	return newOpError(op, KindNotFound, entity, ErrEntityNotFound, withEntityID(id))
}

func closedError(op string, id int64) *OpError {
	return newOpError(op, KindClosed, entPost, ErrPostClosed, withEntityID(id))
}

func sqlError(op, entity string, id int64, err error) *OpError {
	return newOpError(op, KindInternal, entity, err, withEntityID(id))
}

// ErrorKind returns the Kind of the first OpError in err's chain, or
// KindInternal when there is none.
func ErrorKind(err error) Kind {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return KindInternal
}
