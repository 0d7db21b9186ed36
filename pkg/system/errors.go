package system

import (
	"github.com/pkg/errors"
)

// ErrsWrap annotates every error in errs with the same message.
func ErrsWrap(errs []error, message string) []error {
	wrapped := make([]error, 0, len(errs))
	for _, err := range errs {
		wrapped = append(wrapped, errors.Wrap(err, message))
	}
	return wrapped
}

// ErrsWrapf annotates every error in errs with the same formatted message.
func ErrsWrapf(errs []error, format string, a ...any) []error {
	wrapped := make([]error, 0, len(errs))
	for _, err := range errs {
		wrapped = append(wrapped, errors.Wrapf(err, format, a...))
	}
	return wrapped
}
