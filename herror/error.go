// Copyright 2023 strand-http
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package herror supplies the HTTP error type and some common errors.
package herror

import (
	"errors"
	"fmt"
	"net/http"
)

// Some non-HTTP errors.
var (
	// ErrResponseSent is returned when code tries to send a second
	// terminal response for a request that already has one.
	ErrResponseSent = errors.New("terminal response already sent")

	ErrMissingContentType = errors.New("missing the header 'Content-Type'")
)

// Some HTTP errors.
var (
	ErrBadRequest           = NewHTTPError(http.StatusBadRequest)
	ErrUnauthorized         = NewHTTPError(http.StatusUnauthorized)
	ErrForbidden            = NewHTTPError(http.StatusForbidden)
	ErrNotFound             = NewHTTPError(http.StatusNotFound)
	ErrMethodNotAllowed     = NewHTTPError(http.StatusMethodNotAllowed)
	ErrRequestTimeout       = NewHTTPError(http.StatusRequestTimeout)
	ErrTooManyRequests      = NewHTTPError(http.StatusTooManyRequests)
	ErrInternalServerError  = NewHTTPError(http.StatusInternalServerError)
	ErrNotImplemented       = NewHTTPError(http.StatusNotImplemented)
	ErrBadGateway           = NewHTTPError(http.StatusBadGateway)
	ErrServiceUnavailable   = NewHTTPError(http.StatusServiceUnavailable)
	ErrGatewayTimeout       = NewHTTPError(http.StatusGatewayTimeout)
	ErrUnsupportedMediaType = NewHTTPError(http.StatusUnsupportedMediaType)
)

// HTTPError represents an error with an HTTP status code.
type HTTPError struct {
	Code int
	Err  error
}

// NewHTTPError returns a new HTTPError.
func NewHTTPError(code int, msg ...string) HTTPError {
	if len(msg) > 0 {
		return HTTPError{Code: code, Err: errors.New(msg[0])}
	}
	return HTTPError{Code: code}
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

// Unwrap unwraps the inner error.
func (e HTTPError) Unwrap() error { return e.Err }

// New returns a new HTTPError with the new error.
func (e HTTPError) New(err error) HTTPError { e.Err = err; return e }

// Newf is equal to New(fmt.Errorf(msg, args...)).
func (e HTTPError) Newf(msg string, args ...interface{}) HTTPError {
	if len(args) == 0 {
		return e.New(errors.New(msg))
	}
	return e.New(fmt.Errorf(msg, args...))
}
