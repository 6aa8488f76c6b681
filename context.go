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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/strand-http/strand/herror"
)

// Context is the handle of one in-flight request. It is shared between
// the transport goroutine and whichever goroutine currently owns the
// request's continuation, and it guarantees that exactly one terminal
// response is ever produced: the first sender wins, later attempts get
// herror.ErrResponseSent.
//
// The transport goroutine blocks until the terminal response is sent,
// so a handler may finish the request from any goroutine at any time.
// If the client goes away first, the transport takes the claim itself
// and late senders get herror.ErrResponseSent.
type Context struct {
	// Data is the extra per-request data shared between the handlers.
	Data map[string]interface{}

	strand    *Strand
	req       *http.Request
	res       *Response
	params    url.Values
	routePath string

	responded atomic.Bool
	done      chan struct{}
}

func newContext(s *Strand, r *http.Request, w http.ResponseWriter) *Context {
	return &Context{
		strand: s,
		req:    r,
		res:    NewResponse(w),
		done:   make(chan struct{}),
	}
}

// claim takes the right to produce the terminal response.
func (c *Context) claim() bool { return c.responded.CompareAndSwap(false, true) }

// finish unblocks the transport goroutine. Callers must hold the claim.
func (c *Context) finish() { close(c.done) }

// end claims and finishes in one go for code that has already written
// to the underlying writer directly.
func (c *Context) end() {
	if c.claim() {
		c.finish()
	}
}

// Done returns a channel closed once the terminal response is produced.
func (c *Context) Done() <-chan struct{} { return c.done }

// IsResponded reports whether the terminal response has been produced.
func (c *Context) IsResponded() bool { return c.responded.Load() }

// Request returns the underlying http.Request.
func (c *Context) Request() *http.Request { return c.req }

// Response returns the response writer wrapper.
func (c *Context) Response() *Response { return c.res }

// StatusCode returns the status code of the response.
func (c *Context) StatusCode() int { return c.res.Status }

// Logger returns the logger of the app the request came through.
func (c *Context) Logger() Logger { return c.strand.Logger }

// Method returns the request method.
func (c *Context) Method() string { return c.req.Method }

// Path returns the request URL path.
func (c *Context) Path() string { return c.req.URL.Path }

// RoutePath returns the registered path pattern of the matched route,
// or "" if the request did not match a route.
func (c *Context) RoutePath() string { return c.routePath }

// RemoteAddr returns the remote address of the connection.
func (c *Context) RemoteAddr() string { return c.req.RemoteAddr }

// ClientIP returns the client address from the X-Real-Ip or
// X-Forwarded-For header, falling back to the connection address.
func (c *Context) ClientIP() string {
	if ip := c.req.Header.Get(HeaderXRealIP); ip != "" {
		return ip
	}
	if ip := c.req.Header.Get(HeaderXForwardedFor); ip != "" {
		if i := strings.IndexByte(ip, ','); i > 0 {
			return strings.TrimSpace(ip[:i])
		}
		return ip
	}
	addr := c.req.RemoteAddr
	if i := strings.LastIndexByte(addr, ':'); i > 0 {
		return addr[:i]
	}
	return addr
}

// Param returns the value of the named route parameter.
func (c *Context) Param(name string) string { return c.params.Get(name) }

// Params returns all the route parameters.
func (c *Context) Params() url.Values { return c.params }

// Query returns the value of the named query parameter.
func (c *Context) Query(name string) string { return c.req.URL.Query().Get(name) }

// Body returns the request body.
func (c *Context) Body() io.ReadCloser { return c.req.Body }

// Bind decodes the request body as JSON into v.
func (c *Context) Bind(v interface{}) error {
	return json.NewDecoder(c.req.Body).Decode(v)
}

// SetData stores a per-request value shared between the handlers.
func (c *Context) SetData(key string, value interface{}) {
	if c.Data == nil {
		c.Data = make(map[string]interface{}, 4)
	}
	c.Data[key] = value
}

// GetData returns the per-request value stored under key.
func (c *Context) GetData(key string) interface{} { return c.Data[key] }

// CreateResponse starts building the terminal response with the given
// status code. Nothing is written until Done is called, so a builder
// may be carried across goroutines together with the context.
func (c *Context) CreateResponse(code int) *ResponseBuilder {
	return &ResponseBuilder{ctx: c, code: code, header: make(http.Header, 4)}
}

// SendStatus sends a header-only terminal response. It implements
// asyncchain.Handle.
func (c *Context) SendStatus(code int) error {
	return c.CreateResponse(code).Done()
}

// NoContent sends a bodyless terminal response.
func (c *Context) NoContent(code int) error { return c.SendStatus(code) }

// Text sends a plain-text terminal response.
func (c *Context) Text(code int, format string, args ...interface{}) error {
	b := c.CreateResponse(code).SetContentType(MIMETextPlainCharsetUTF8)
	if len(args) == 0 {
		return b.AppendBody(format).Done()
	}
	return b.AppendBody(fmt.Sprintf(format, args...)).Done()
}

// JSON sends a JSON terminal response.
func (c *Context) JSON(code int, v interface{}) error {
	b := c.CreateResponse(code).SetContentType(MIMEApplicationJSONCharsetUTF8)
	if err := json.NewEncoder(b.body()).Encode(v); err != nil {
		b.discard()
		return err
	}
	return b.Done()
}

// Blob sends a terminal response with the given content type and body.
func (c *Context) Blob(code int, contentType string, b []byte) error {
	builder := c.CreateResponse(code).SetContentType(contentType)
	builder.body().Write(b)
	return builder.Done()
}

// Redirect sends a redirect terminal response to toURL.
func (c *Context) Redirect(code int, toURL string) error {
	if code < 300 || code >= 400 {
		return fmt.Errorf("invalid redirect status code %d", code)
	}
	return c.CreateResponse(code).SetHeader(HeaderLocation, toURL).Done()
}

// Websocket upgrades the request to a websocket connection. The upgrade
// consumes the terminal response: after a successful upgrade the caller
// owns the connection and the chain is finished for this request.
func (c *Context) Websocket() (*websocket.Conn, error) {
	if !c.claim() {
		return nil, herror.ErrResponseSent
	}
	defer c.finish()
	return c.strand.Upgrader.Upgrade(c.res, c.req, nil)
}
