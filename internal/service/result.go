package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
)

// Kind classifies an operation failure. Expected business outcomes never
// surface as raw errors; they ride back inside the Result envelope and the
// HTTP layer maps the kind to a status code.
type Kind int

const (
	KindNone Kind = iota
	KindNotFound
	KindValidation
	KindBusinessRule
	KindUnauthorized
	KindInternal
)

// Error is an expected failure with a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Invalidf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func RuleViolationf(format string, args ...any) *Error {
	return &Error{Kind: KindBusinessRule, Message: fmt.Sprintf(format, args...)}
}

func Unauthorizedf(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// Result is the uniform envelope returned by every service operation.
// Kind is not serialized; it only drives HTTP status selection.
type Result[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    T        `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Kind    Kind     `json:"-"`
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func okMsg[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Data: data, Message: message}
}

func fail[T any](kind Kind, message string) Result[T] {
	return Result[T]{Success: false, Message: message, Kind: kind}
}

// failErr converts any error into a failure envelope. Expected *Error values
// keep their kind and message; sql.ErrNoRows becomes not-found; everything
// else is an infrastructure fault, logged with context and surfaced with a
// generic message (the underlying text rides in Errors for diagnostics).
func failErr[T any](op string, err error) Result[T] {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return fail[T](svcErr.Kind, svcErr.Message)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fail[T](KindNotFound, "record not found")
	}
	log.Printf("[dinehall] %s: %v", op, err)
	return Result[T]{
		Success: false,
		Message: "unexpected storage error",
		Errors:  []string{err.Error()},
		Kind:    KindInternal,
	}
}
