package entities

import (
	"errors"
	"fmt"
)

// AdapterErrorKind classifies why an insurer could not quote.
// It is persisted as the line result's error_code.
type AdapterErrorKind string

const (
	AdapterErrAuthentication      AdapterErrorKind = "authentication"
	AdapterErrTimeout             AdapterErrorKind = "timeout"
	AdapterErrUpstreamUnavailable AdapterErrorKind = "upstream_unavailable"
	AdapterErrMalformedResponse   AdapterErrorKind = "malformed_response"
	AdapterErrUnsupportedProduct  AdapterErrorKind = "unsupported_product"
	AdapterErrNoMatchingTariff    AdapterErrorKind = "no_matching_tariff"
	AdapterErrInvalidCredentials  AdapterErrorKind = "invalid_credentials"
	AdapterErrInternal            AdapterErrorKind = "internal"
	// AdapterErrCanceled marks calls abandoned because the caller went away.
	AdapterErrCanceled AdapterErrorKind = "canceled"
)

// AdapterError is the only way an adapter reports failure.
type AdapterError struct {
	Kind        AdapterErrorKind
	InsurerSlug string
	Message     string
	Err         error
}

func NewAdapterError(kind AdapterErrorKind, insurerSlug, message string, err error) *AdapterError {
	return &AdapterError{Kind: kind, InsurerSlug: insurerSlug, Message: message, Err: err}
}

func (e *AdapterError) Error() string {
	msg := fmt.Sprintf("insurer %s: %s: %s", e.InsurerSlug, e.Kind, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AdapterError) Unwrap() error { return e.Err }

// AsAdapterError converts any error into an AdapterError, classifying
// unknown errors as internal.
func AsAdapterError(err error, insurerSlug string) *AdapterError {
	var ae *AdapterError
	if errors.As(err, &ae) {
		return ae
	}
	return NewAdapterError(AdapterErrInternal, insurerSlug, "unexpected adapter failure", err)
}
