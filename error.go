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

package strand

import "github.com/strand-http/strand/herror"

// Re-export some errors.
var (
	ErrResponseSent = herror.ErrResponseSent

	ErrBadRequest          = herror.ErrBadRequest
	ErrUnauthorized        = herror.ErrUnauthorized
	ErrForbidden           = herror.ErrForbidden
	ErrNotFound            = herror.ErrNotFound
	ErrMethodNotAllowed    = herror.ErrMethodNotAllowed
	ErrTooManyRequests     = herror.ErrTooManyRequests
	ErrInternalServerError = herror.ErrInternalServerError
	ErrServiceUnavailable  = herror.ErrServiceUnavailable
)

// HTTPError is the alias of herror.HTTPError.
type HTTPError = herror.HTTPError

// NewHTTPError is the alias of herror.NewHTTPError.
var NewHTTPError = herror.NewHTTPError
