// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"strings"

	"github.com/danielhkuo/avurudu-games/metrics"
)

// Kind is a machine-checkable failure category.
type Kind string

const (
	KindInvalidInput   Kind = "invalid_input"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindStore          Kind = "store_error"
	KindInitialization Kind = "initialization_error"
)

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrInvalidInput   = &Error{Kind: KindInvalidInput}
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrConflict       = &Error{Kind: KindConflict}
	ErrStore          = &Error{Kind: KindStore}
	ErrInitialization = &Error{Kind: KindInitialization}
)

// Error is the failure type returned by every store operation.
type Error struct {
	Kind     Kind              // Failure category
	Op       string            // Operation, e.g. "create game"
	Message  string            // Safe to show to API callers
	Metadata map[string]string // Structured detail, e.g. participant count
	Err      error             // Underlying driver error, if any
}

// Error implements the error interface. The driver error is included for logs.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// KindOf returns the kind of err. Errors not produced by this package are
// reported as KindStore; nil has no kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}

func invalidInput(op, message string) *Error {
	return &Error{Kind: KindInvalidInput, Op: op, Message: message}
}

func notFound(op, message string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: message}
}

func conflict(op, message string, metadata map[string]string) *Error {
	return &Error{Kind: KindConflict, Op: op, Message: message, Metadata: metadata}
}

func storeFailure(op, message string, cause error) *Error {
	return &Error{Kind: KindStore, Op: op, Message: message, Err: cause}
}

// outcome labels err for metrics.
func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}
	return string(KindOf(err))
}
