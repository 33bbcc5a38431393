package service

import (
	"errors"
	"fmt"
)

// Kind discriminates failures the boundary layer has to tell apart.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidTransition
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidTransition:
		return "invalid_transition"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

type Entity string

const (
	EntityAuthor Entity = "author"
	EntityBook   Entity = "book"
)

// Error is a classified service failure. Msg is safe to show to API clients.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}

	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind and Msg, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Kind == e.Kind && t.Msg == e.Msg
}

var ErrInvalidTransition = &Error{
	Kind: KindInvalidTransition,
	Msg:  "cannot revert a published book to unpublished",
}

func NotFound(entity Entity, id int64) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf("%s with id=%d not found", entity, id)}
}

func Persistence(msg string, err error) *Error {
	return &Error{Kind: KindPersistence, Msg: msg, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, KindUnknown if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}

// Message returns the client-facing message of the first *Error in err's chain.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}

	return ""
}
