package flight

import (
	"context"
	"errors"
	"net/http"
	"skybook/pkg/duffelclient"
)

type ErrorCode string

const (
	ErrorCodeValidation      ErrorCode = "VALIDATION"
	ErrorCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrorCodeTimeout         ErrorCode = "TIMEOUT"
	ErrorCodeProviderFailure ErrorCode = "PROVIDER_FAILURE"
	ErrorCodeInternalFailure ErrorCode = "INTERNAL_FAILURE"
)

type AppError struct {
	Status  int
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func validationError(msg string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: ErrorCodeValidation, Message: msg}
}

// providerError classifies a failed provider call.
func providerError(msg string, err error) *AppError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Status: http.StatusGatewayTimeout, Code: ErrorCodeTimeout, Message: msg, Err: err}
	}
	if apiErr, ok := duffelclient.AsAPIError(err); ok {
		switch {
		case apiErr.NotFound():
			return &AppError{Status: http.StatusNotFound, Code: ErrorCodeNotFound, Message: msg, Err: err}
		case apiErr.ClientError():
			return &AppError{Status: http.StatusUnprocessableEntity, Code: ErrorCodeProviderFailure, Message: msg, Err: err}
		}
	}
	return &AppError{Status: http.StatusBadGateway, Code: ErrorCodeProviderFailure, Message: msg, Err: err}
}
