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
	"bytes"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/xgfone/go-tools/pools"

	"github.com/strand-http/strand/asyncchain"
	"github.com/strand-http/strand/herror"
)

// Strand is the app: it owns the route table and drives every request
// through the async handler chain of the route it matches.
type Strand struct {
	// Logger logs for the app and the handlers. Default: stderr.
	Logger Logger

	// NotFound, when set, answers requests matching no route. When nil,
	// an unmatched request is driven through an empty chain and the
	// chain machinery itself synthesizes the 404.
	NotFound Handler

	// MethodNotAllowed answers requests whose path matches some route
	// but whose method matches none. Default: MethodNotAllowedHandler.
	MethodNotAllowed func(allowed []string) Handler

	// HandleError turns an error returned by a synchronous handler
	// into a response. Default: an herror.HTTPError answers with its
	// code and message, anything else is logged and answered with 500.
	HandleError func(*Context, error)

	// Upgrader upgrades requests to websocket connections,
	// see Context.Websocket.
	Upgrader websocket.Upgrader

	routes      routeTable
	middlewares []Middleware
	asyncPre    []AsyncHandler
	emptyChain  *Chain
	bufpool     pools.BufferPool
}

// New returns a new Strand.
func New() *Strand {
	return &Strand{
		Logger:     NewLoggerFromWriter(os.Stderr, ""),
		emptyChain: asyncchain.NewGrowableChain[*Context](),
		bufpool:    pools.NewBufferPool(1024),
	}
}

// AcquireBuffer gets a buffer from the pool.
func (s *Strand) AcquireBuffer() *bytes.Buffer { return s.bufpool.Get() }

// ReleaseBuffer puts a buffer back into the pool.
func (s *Strand) ReleaseBuffer(buf *bytes.Buffer) {
	if buf != nil {
		s.bufpool.Put(buf)
	}
}

// Use appends middlewares applied to the synchronous handler of every
// route registered afterwards. Register middlewares before routes.
func (s *Strand) Use(mws ...Middleware) *Strand {
	for _, mw := range mws {
		if mw == nil {
			panic("strand: nil middleware passed to Use")
		}
	}
	s.middlewares = append(s.middlewares, mws...)
	return s
}

// UseAsync appends chain entries that precede the handlers of every
// route registered afterwards in its chain.
func (s *Strand) UseAsync(handlers ...AsyncHandler) *Strand {
	for _, h := range handlers {
		if h == nil {
			panic("strand: nil handler passed to UseAsync")
		}
	}
	s.asyncPre = append(s.asyncPre, handlers...)
	return s
}

// Route registers a synchronous handler for the method and path, with
// the optional route-local middlewares applied innermost.
func (s *Strand) Route(method, path string, handler Handler, mws ...Middleware) *Strand {
	if handler == nil {
		panic("strand: nil handler passed to Route")
	}
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		handler = s.middlewares[i](handler)
	}
	return s.RouteAsync(method, path, Sync(handler))
}

// RouteAsync registers the chain entries of one route. The route's
// chain is the global UseAsync entries followed by the given handlers,
// in order.
func (s *Strand) RouteAsync(method, path string, handlers ...AsyncHandler) *Strand {
	if len(handlers) == 0 {
		panic("strand: no handlers passed to RouteAsync")
	}
	pattern, err := compilePath(path)
	if err != nil {
		panic(err)
	}

	chain := asyncchain.NewGrowableChain[*Context]().
		Append(s.asyncPre...).
		Append(handlers...)
	s.routes = append(s.routes, &route{
		method:  strings.ToUpper(method),
		path:    path,
		pattern: pattern,
		chain:   chain,
	})
	return s
}

// GET is short for Route(http.MethodGet, path, handler, mws...).
func (s *Strand) GET(path string, h Handler, mws ...Middleware) *Strand {
	return s.Route(http.MethodGet, path, h, mws...)
}

// POST is short for Route(http.MethodPost, path, handler, mws...).
func (s *Strand) POST(path string, h Handler, mws ...Middleware) *Strand {
	return s.Route(http.MethodPost, path, h, mws...)
}

// PUT is short for Route(http.MethodPut, path, handler, mws...).
func (s *Strand) PUT(path string, h Handler, mws ...Middleware) *Strand {
	return s.Route(http.MethodPut, path, h, mws...)
}

// DELETE is short for Route(http.MethodDelete, path, handler, mws...).
func (s *Strand) DELETE(path string, h Handler, mws ...Middleware) *Strand {
	return s.Route(http.MethodDelete, path, h, mws...)
}

// ServeHTTP implements http.Handler. It selects the route's chain,
// builds the request handle and the controller positioned at the first
// entry, and drives the first dispatch step. The connection is held
// open until some execution context produces the terminal response or
// the client goes away.
func (s *Strand) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := newContext(s, r, w)

	if rt, params, allowed := s.routes.match(r.Method, r.URL.Path); rt != nil {
		ctx.params = params
		ctx.routePath = rt.path
		rt.chain.Handle(ctx)
	} else if len(allowed) > 0 {
		h := MethodNotAllowedHandler(allowed)
		if s.MethodNotAllowed != nil {
			h = s.MethodNotAllowed(allowed)
		}
		s.execute(ctx, h)
	} else if s.NotFound != nil {
		s.execute(ctx, s.NotFound)
	} else {
		s.emptyChain.Handle(ctx)
	}

	select {
	case <-ctx.Done():
	case <-r.Context().Done():
		// The client went away. The response writer dies with this
		// return, so the request has to be closed out here: taking the
		// claim makes every later sender fail with ErrResponseSent
		// before touching the writer. Losing the claim means a sender
		// is already mid-write; wait for it to finish first.
		if ctx.claim() {
			ctx.finish()
		} else {
			<-ctx.Done()
		}
	}
}

// execute runs a top-level synchronous handler. A handler here that
// never responds must not wedge the transport wait, so the request is
// closed out with 204.
func (s *Strand) execute(ctx *Context, h Handler) {
	if err := h(ctx); err != nil {
		s.handleError(ctx, err)
	}
	if !ctx.IsResponded() {
		_ = ctx.SendStatus(http.StatusNoContent)
	}
}

func (s *Strand) handleError(ctx *Context, err error) {
	if s.HandleError != nil {
		s.HandleError(ctx, err)
		if !ctx.IsResponded() {
			_ = ctx.SendStatus(http.StatusInternalServerError)
		}
		return
	}

	var herr herror.HTTPError
	if errors.As(err, &herr) {
		_ = ctx.Text(herr.Code, herr.Error())
		return
	}
	s.Logger.Errorf("request failed: method=%s, path=%s, err=%s",
		ctx.Method(), ctx.Path(), err.Error())
	_ = ctx.SendStatus(http.StatusInternalServerError)
}
