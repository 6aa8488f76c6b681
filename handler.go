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

package strand

import (
	"net/http"
	"strings"

	"github.com/strand-http/strand/asyncchain"
)

// Handler is a synchronous handler of the HTTP request.
type Handler func(*Context) error

// Middleware wraps a synchronous Handler.
type Middleware func(Handler) Handler

// AsyncHandler is one entry of a request's async chain. It owns the
// controller from the moment it is invoked and reports whether it
// managed to schedule the processing of the request.
type AsyncHandler = asyncchain.Handler[*Context]

// AsyncController is the per-request cursor over a route's chain.
type AsyncController = asyncchain.Controller[*Context]

// Chain is the growable handler sequence a route drives requests through.
type Chain = asyncchain.GrowableChain[*Context]

// Advance performs the next dispatch step of the chain. An async handler
// that declines a request calls it with its own controller, either
// synchronously or from wherever its deferred work completes.
func Advance(c AsyncController) { asyncchain.Next(c) }

// Sync adapts a synchronous Handler into an async chain entry.
//
// The handler runs on the calling goroutine. An error is turned into a
// response via the app's error handler; a handler that neither errors
// nor responds declines, and the request passes on to the next entry of
// the chain.
func Sync(h Handler) AsyncHandler {
	return func(c AsyncController) asyncchain.ScheduleResult {
		ctx := c.RequestHandle()
		if err := h(ctx); err != nil {
			ctx.strand.handleError(ctx, err)
			return asyncchain.Ok()
		}
		if !ctx.IsResponded() {
			Advance(c)
		}
		return asyncchain.Ok()
	}
}

// FromHTTPHandler converts an http.Handler into a Handler. The wrapped
// handler writes to the response writer directly, so the request is
// considered responded when it returns.
func FromHTTPHandler(h http.Handler) Handler {
	return func(c *Context) error {
		h.ServeHTTP(c.res, c.req)
		c.end()
		return nil
	}
}

// FromHTTPHandlerFunc converts an http.HandlerFunc into a Handler.
func FromHTTPHandlerFunc(h http.HandlerFunc) Handler {
	return FromHTTPHandler(h)
}

// NothingHandler returns a Handler doing nothing.
func NothingHandler() Handler { return func(*Context) error { return nil } }

// OkHandler returns a Handler only sending the response "200 OK".
func OkHandler() Handler {
	return func(c *Context) error { return c.Text(http.StatusOK, "OK") }
}

// NotFoundHandler returns a NotFound handler.
func NotFoundHandler() Handler {
	return func(c *Context) error {
		return c.Text(http.StatusNotFound, "Not Found")
	}
}

// MethodNotAllowedHandler returns a MethodNotAllowed handler.
func MethodNotAllowedHandler(allowedMethods []string) Handler {
	return func(c *Context) error {
		return c.CreateResponse(http.StatusMethodNotAllowed).
			SetHeader(HeaderAllow, strings.Join(allowedMethods, ", ")).
			Done()
	}
}
