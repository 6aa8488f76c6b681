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
	"net/http"
	"time"

	"github.com/strand-http/strand"
)

// Logger returns a middleware logging one line per request.
func Logger() Middleware {
	return func(next strand.Handler) strand.Handler {
		return func(c *strand.Context) (err error) {
			start := time.Now()
			err = next(c)
			cost := time.Since(start).String()

			code := c.StatusCode()
			errmsg := ""

			switch e := err.(type) {
			case nil:
			case strand.HTTPError:
				if !c.IsResponded() {
					code = e.Code
				}
				if e.Code >= 400 {
					errmsg = e.Error()
				}
			default:
				errmsg = e.Error()
				if !c.IsResponded() {
					code = http.StatusInternalServerError
				}
			}

			if errmsg == "" {
				c.Logger().Infof("addr=%s, method=%s, path=%s, code=%d, cost=%s",
					c.RemoteAddr(), c.Method(), c.Path(), code, cost)
			} else {
				c.Logger().Errorf("addr=%s, method=%s, path=%s, code=%d, cost=%s, err=%s",
					c.RemoteAddr(), c.Method(), c.Path(), code, cost, errmsg)
			}

			return
		}
	}
}
