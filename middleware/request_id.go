// Copyright 2024 strand-http
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

package middleware

import (
	"github.com/google/uuid"

	"github.com/strand-http/strand"
)

// RequestID returns a X-Request-Id middleware.
//
// If the request header does not contain X-Request-Id, it will set a
// new one. generateRequestID is uuid.NewString by default.
func RequestID(generateRequestID ...func() string) Middleware {
	getRequestID := uuid.NewString
	if len(generateRequestID) > 0 {
		getRequestID = generateRequestID[0]
	}

	return func(next strand.Handler) strand.Handler {
		return func(c *strand.Context) error {
			req := c.Request()
			xid := req.Header.Get(strand.HeaderXRequestID)
			if xid == "" {
				xid = getRequestID()
				req.Header.Set(strand.HeaderXRequestID, xid)
			}
			c.Response().Header().Set(strand.HeaderXRequestID, xid)

			return next(c)
		}
	}
}
