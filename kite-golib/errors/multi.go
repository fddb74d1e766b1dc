package errors

import (
	"strings"
)

// Errors is a non-empty list of errors. A nil Errors means no error occurred.
type Errors []error

func (m Errors) Error() string {
	msgs := make([]string, 0, len(m))
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// Combine combines e and f into a single error, dropping nils
func Combine(e, f error) error {
	var errs Errors
	for _, err := range []error{e, f} {
		switch err := err.(type) {
		case nil:
		case Errors:
			errs = append(errs, err...)
		default:
			errs = append(errs, err)
		}
	}
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errs
	}
}

// Defer is a helper for deferring error-returning functions such as Close
func Defer(err *error, f func() error) {
	*err = Combine(*err, f())
}
