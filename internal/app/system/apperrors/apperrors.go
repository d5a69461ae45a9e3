// Package apperrors defines the error taxonomy for BeanLedger handlers.
//
// Every error surfaced by a store, the ledger, or a handler is one of
// four kinds, each with a fixed HTTP mapping:
//
//   - Validation: malformed or missing input, bad identifier format → 400
//   - NotFound: a referenced entity does not exist → 404
//   - Rule: a business rule was violated (expired membership,
//     insufficient points, duplicate name, ...) → 400
//   - Storage: the underlying store failed → 500 (logged, generic
//     message to the caller)
//
// Handlers convert every error they see through Status/Message so
// nothing escapes with an undefined shape.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies an error for HTTP mapping.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindRule
	KindStorage
)

// Error is a classified application error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, set for Storage errors
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error { return e.Err }

// Validation returns a 400 validation error with the given message.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// NotFound returns a 404 error with the given message.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Rule returns a 400 business-rule violation with the given message.
func Rule(msg string) error {
	return &Error{Kind: KindRule, Msg: msg}
}

// Storage wraps an underlying store failure. The cause is kept for
// logging; callers only ever see a generic message.
func Storage(err error) error {
	return &Error{Kind: KindStorage, Msg: "Internal server error.", Err: err}
}

// Status returns the HTTP status code for err. Unclassified errors are
// treated as storage failures.
func Status(err error) int {
	var ae *Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Kind {
	case KindValidation, KindRule:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the caller-facing message for err. Storage and
// unclassified errors always read "Internal server error." so internal
// details never leak.
func Message(err error) string {
	var ae *Error
	if !errors.As(err, &ae) || ae.Kind == KindStorage {
		return "Internal server error."
	}
	return ae.Msg
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}
