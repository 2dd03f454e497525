package app

import (
	"errors"
	"fmt"
	"net/http"
)

// InvalidRequestError is special error type returned when any request params are invalid.
type InvalidRequestError string

// Error implements error interface.
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request.
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	var ire invalidReqErr
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// ConfigurationError is returned when the run can't start because of missing or invalid configuration.
type ConfigurationError string

// Error implements error interface.
func (e ConfigurationError) Error() string {
	return string(e)
}

// IsConfiguration tells that this error is 'configuration error'.
// Returns always true.
func (ConfigurationError) IsConfiguration() bool {
	return true
}

// IsConfigurationError checks if given error is caused by invalid configuration.
func IsConfigurationError(err error) bool {
	type configurationErr interface {
		IsConfiguration() bool
	}

	var ce configurationErr
	if errors.As(err, &ce) {
		return ce.IsConfiguration()
	}

	return false
}

// TooManyRequestsError is returned when a request couldn't be sent within the allowed call rate.
type TooManyRequestsError string

// Error implements error interface.
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequests tells that this error is 'too many requests'.
// Returns always true.
func (TooManyRequestsError) IsTooManyRequests() bool {
	return true
}

// IsTooManyRequestsError checks if given error is caused by exceeded call rate.
func IsTooManyRequestsError(err error) bool {
	type tooManyRequestsErr interface {
		IsTooManyRequests() bool
	}

	var tmr tooManyRequestsErr
	if errors.As(err, &tmr) {
		return tmr.IsTooManyRequests()
	}

	return false
}

// FetchError is returned when the call to the Github API itself fails:
// either the transport returned an error or the response status was not 2xx.
// StatusCode is 0 for transport failures.
type FetchError struct {
	StatusCode  int
	RateLimited bool
	Err         error
}

// Error implements error interface.
func (e *FetchError) Error() string {
	switch {
	case e.RateLimited:
		return fmt.Sprintf("github api rate limit exceeded (status %d)", e.StatusCode)
	case e.StatusCode != 0 && e.Err == nil:
		return fmt.Sprintf("github api returned status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	case e.StatusCode != 0:
		return fmt.Sprintf("github api returned status %d: %v", e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("calling github api: %v", e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError checks if given error is caused by a failed Github API call.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
