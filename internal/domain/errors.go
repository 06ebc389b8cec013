package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a calculation failure so callers can branch on it without
// parsing messages.
type Kind string

const (
	KindInvalidInput             Kind = "invalid_input"
	KindNonAmortizingPayment     Kind = "non_amortizing_payment"
	KindPayoffHorizonExceeded    Kind = "payoff_horizon_exceeded"
	KindInvalidBandConfiguration Kind = "invalid_band_configuration"
)

// Sentinels for errors.Is. They carry only a kind.
var (
	ErrInvalidInput             = &CalcError{Kind: KindInvalidInput}
	ErrNonAmortizingPayment     = &CalcError{Kind: KindNonAmortizingPayment}
	ErrPayoffHorizonExceeded    = &CalcError{Kind: KindPayoffHorizonExceeded}
	ErrInvalidBandConfiguration = &CalcError{Kind: KindInvalidBandConfiguration}
)

// CalcError is the structured failure returned by the calculation engines.
type CalcError struct {
	Kind    Kind   `json:"kind"`
	Op      string `json:"op,omitempty"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// NewCalcError builds a CalcError with a formatted message.
func NewCalcError(kind Kind, op, format string, args ...any) *CalcError {
	return &CalcError{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

func (e *CalcError) Error() string {
	msg := string(e.Kind)
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *CalcError) Unwrap() error {
	return e.Cause
}

// Is matches on kind. A band configuration error is also an invalid input.
func (e *CalcError) Is(target error) bool {
	t, ok := target.(*CalcError)
	if !ok {
		return false
	}
	if t.Kind == e.Kind {
		return true
	}
	return t.Kind == KindInvalidInput && e.Kind == KindInvalidBandConfiguration
}

// KindOf returns the kind of the first CalcError in err's chain, or "".
func KindOf(err error) Kind {
	var ce *CalcError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}
