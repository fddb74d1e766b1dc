package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// New returns an error carrying a stack trace
var New = errors.New

// Errorf is re-exported from github.com/pkg/errors and records a stack trace
var Errorf = errors.Errorf

// WrapfOrNil annotates err with a message, returning nil if err is nil
func WrapfOrNil(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(err, fmt.Sprintf(format, args...))
}

// Wrapf is WrapfOrNil if err != nil, and Errorf otherwise: it never returns nil
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return Errorf(format, args...)
	}
	return WrapfOrNil(err, format, args...)
}

// WithStack is re-exported from github.com/pkg/errors
var WithStack = errors.WithStack

// Cause is re-exported from github.com/pkg/errors
var Cause = errors.Cause
