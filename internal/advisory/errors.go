// Package advisory holds the error taxonomy and agent descriptors shared by
// the four advisory scorers.
package advisory

import (
	"errors"

	"github.com/rotisserie/eris"
)

// Sentinel errors surfaced by the scoring engine. Callers match with eris.Is.
var (
	// ErrInvalidInput indicates a required field is missing or has the
	// wrong shape.
	ErrInvalidInput = eris.New("invalid input")

	// ErrEmptyPortfolio indicates portfolio exposure was requested on zero
	// policies.
	ErrEmptyPortfolio = eris.New("empty portfolio")

	// ErrDivisionByZero indicates carbon intensity was requested with zero
	// revenue.
	ErrDivisionByZero = eris.New("division by zero")
)

// UpstreamError wraps a failure from an external data provider with the
// provider name attached.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return "upstream " + e.Provider + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError wraps err as an upstream failure of the named provider.
func NewUpstreamError(provider string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Err: err}
}

// IsUpstream reports whether any error in the chain is an UpstreamError and,
// if so, returns the provider name.
func IsUpstream(err error) (string, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Provider, true
	}
	return "", false
}
