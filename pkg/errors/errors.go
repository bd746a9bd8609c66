// Package errors provides the coded error type shared by the wizard, the
// plan store, the CLI and the HTTP API.
//
// The synthesizer itself never fails on well-formed input. Only config
// validation and the outer surfaces return these errors, and every one of
// them carries a [Code] that falls into a [Class]:
//
//	INVALID_*, CONFIG_OUT_OF_RANGE   ClassInvalid    (HTTP 400)
//	NOT_FOUND, PLAN_NOT_FOUND        ClassNotFound   (HTTP 404)
//	UNSUPPORTED                      ClassUnsupported (HTTP 501)
//	STORAGE_ERROR, INTERNAL_ERROR    ClassInternal   (HTTP 500)
//
// Validation errors also name the config field they reject:
//
//	err := errors.OutOfRange("room_count", 12, 1, 10, "")
//	errors.FieldOf(err) // "room_count"
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput       Code = "INVALID_INPUT"
	ErrCodeConfigOutOfRange   Code = "CONFIG_OUT_OF_RANGE"
	ErrCodeInvalidProjectType Code = "INVALID_PROJECT_TYPE"
	ErrCodeInvalidBudget      Code = "INVALID_BUDGET"
	ErrCodeInvalidFormat      Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle       Code = "INVALID_STYLE"
	ErrCodeInvalidPlanID      Code = "INVALID_PLAN_ID"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodePlanNotFound Code = "PLAN_NOT_FOUND"

	ErrCodeStorage     Code = "STORAGE_ERROR"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Class groups codes by who is at fault.
type Class int

const (
	ClassInternal Class = iota
	ClassInvalid
	ClassNotFound
	ClassUnsupported
)

var classes = map[Code]Class{
	ErrCodeInvalidInput:       ClassInvalid,
	ErrCodeConfigOutOfRange:   ClassInvalid,
	ErrCodeInvalidProjectType: ClassInvalid,
	ErrCodeInvalidBudget:      ClassInvalid,
	ErrCodeInvalidFormat:      ClassInvalid,
	ErrCodeInvalidStyle:       ClassInvalid,
	ErrCodeInvalidPlanID:      ClassInvalid,
	ErrCodeNotFound:           ClassNotFound,
	ErrCodePlanNotFound:       ClassNotFound,
	ErrCodeUnsupported:        ClassUnsupported,
}

// Class returns the class of c. Unknown codes are internal.
func (c Code) Class() Class {
	return classes[c]
}

// Error is a coded error with an optional offending field and cause.
type Error struct {
	Code    Code
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	s := string(e.Code) + ": "
	if e.Field != "" {
		s += e.Field + ": "
	}
	s += e.Message
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// WithField returns a copy of e naming the field it rejects.
func (e *Error) WithField(field string) *Error {
	cp := *e
	cp.Field = field
	return &cp
}

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// OutOfRange reports a numeric config field outside [lo, hi]. unit, when
// set, is appended to the bounds.
func OutOfRange(field string, got, lo, hi any, unit string) *Error {
	msg := fmt.Sprintf("%v outside %v..%v", got, lo, hi)
	if unit != "" {
		msg += " " + unit
	}
	return &Error{Code: ErrCodeConfigOutOfRange, Field: field, Message: msg}
}

func find(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Is reports whether the first *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	e := find(err)
	return e != nil && e.Code == code
}

// GetCode returns err's code, or "" if err carries none.
func GetCode(err error) Code {
	if e := find(err); e != nil {
		return e.Code
	}
	return ""
}

// FieldOf returns the config field err rejects, or "".
func FieldOf(err error) string {
	if e := find(err); e != nil {
		return e.Field
	}
	return ""
}

// UserMessage returns err's message without the code and field prefix.
func UserMessage(err error) string {
	if e := find(err); e != nil {
		return e.Message
	}
	return err.Error()
}

// ClassOf returns the class of err's code. Uncoded errors are internal.
func ClassOf(err error) Class {
	return GetCode(err).Class()
}

// IsInvalid reports whether err was caused by bad input.
func IsInvalid(err error) bool { return ClassOf(err) == ClassInvalid }

// IsNotFound reports whether err is a missing resource.
func IsNotFound(err error) bool { return ClassOf(err) == ClassNotFound }
