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

import (
	"bufio"
	"io"
	"net"
	"net/http"
)

// Response implements http.ResponseWriter and records the status code,
// the number of written bytes and whether anything has been written.
//
// A Response may be written to from whichever goroutine currently owns
// the request's continuation, but only until the terminal response is
// produced; the per-request Context enforces that hand-off.
type Response struct {
	http.ResponseWriter

	Size   int64
	Wrote  bool
	Status int
}

// NewResponse returns a new Response wrapping w.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{ResponseWriter: w, Status: http.StatusOK}
}

// WriteHeader implements http.ResponseWriter#WriteHeader().
func (r *Response) WriteHeader(code int) {
	if !r.Wrote {
		r.Wrote = true
		r.Status = code
		r.ResponseWriter.WriteHeader(code)
	}
}

// Write implements http.ResponseWriter#Write().
func (r *Response) Write(b []byte) (n int, err error) {
	if len(b) == 0 {
		return
	}

	r.WriteHeader(http.StatusOK)
	n, err = r.ResponseWriter.Write(b)
	r.Size += int64(n)
	return
}

// WriteString implements io.StringWriter.
func (r *Response) WriteString(s string) (n int, err error) {
	if len(s) == 0 {
		return
	}

	r.WriteHeader(http.StatusOK)
	n, err = io.WriteString(r.ResponseWriter, s)
	r.Size += int64(n)
	return
}

// Hijack implements the http.Hijacker interface to allow an HTTP handler
// to take over the connection.
func (r *Response) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return r.ResponseWriter.(http.Hijacker).Hijack()
}

// Push implements the http.Pusher interface to support HTTP/2 server push.
func (r *Response) Push(target string, opts *http.PushOptions) error {
	return r.ResponseWriter.(http.Pusher).Push(target, opts)
}

// Flush implements the http.Flusher interface to allow an HTTP handler
// to flush buffered data to the client.
func (r *Response) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
