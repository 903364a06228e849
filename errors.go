package strseg

import (
	"errors"
	"regexp/syntax"
)

// ErrInvalidEscape is returned when the escape character is not a valid
// Unicode scalar value.
var ErrInvalidEscape = errors.New("strseg: invalid escape character")

// ErrInvalidConfig is returned by New for an unusable Config.
var ErrInvalidConfig = errors.New("strseg: invalid config")

// PatternError reports a pattern the matching engine cannot compile.
//
// Construct names the offending part of the pattern, e.g.
// "missing closing ): `(abc`". Err is the engine's own error; for the default
// engine it is formatted like (and usually is) a *syntax.Error.
//
// Example:
//
//	_, err := strseg.Split("(abc", "text", 0, false)
//	var perr *strseg.PatternError
//	if errors.As(err, &perr) {
//	    fmt.Println(perr.Construct) // missing closing ): `(abc`
//	}
type PatternError struct {
	Pattern   string
	Construct string
	Err       error
}

func (e *PatternError) Error() string {
	return "strseg: invalid pattern `" + e.Pattern + "`: " + e.Construct
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

func newPatternError(pattern string, err error) *PatternError {
	construct := err.Error()
	var serr *syntax.Error
	if errors.As(err, &serr) {
		construct = serr.Code.String()
		if serr.Expr != "" {
			construct += ": `" + serr.Expr + "`"
		}
	}
	return &PatternError{Pattern: pattern, Construct: construct, Err: err}
}

// PatternIntrospectionError reports a valid pattern whose capture-group
// layout cannot be determined positionally, so the group holding a region's
// interior cannot be located.
type PatternIntrospectionError struct {
	Pattern string
	Reason  string
}

func (e *PatternIntrospectionError) Error() string {
	return "strseg: cannot introspect pattern `" + e.Pattern + "`: " + e.Reason
}
