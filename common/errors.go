package common

import "github.com/cockroachdb/errors"

var (
	// ErrorDomain: a parameter or argument is outside the mathematically valid range.
	ErrorDomain = errors.New("domain error")

	// ErrorDataFormat: sample input is not a flat numeric sequence.
	ErrorDataFormat = errors.New("data format error")

	// more specific causes, always reported together with ErrorDomain
	ErrorPole       = errors.New("gamma function pole")
	ErrorDegenerate = errors.New("degenerate distribution")

	// ErrorNumericalEdge marks a value that was clamped because floating point
	// cancellation pushed it outside its valid range.
	ErrorNumericalEdge = errors.New("numerical edge condition")
)

// DomainErrorf returns an ErrorDomain carrying the formatted message.
func DomainErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrorDomain, format, args...)
}

// DomainCause returns an ErrorDomain that also matches cause under errors.Is.
func DomainCause(cause error, format string, args ...interface{}) error {
	return errors.Mark(errors.Wrapf(cause, format, args...), ErrorDomain)
}

func DataFormatErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrorDataFormat, format, args...)
}
