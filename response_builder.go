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
	"net/http"

	"github.com/strand-http/strand/herror"
)

// ResponseBuilder stages a terminal response: status code, headers and
// body are collected first and written out atomically by Done. Nothing
// touches the wire before Done, so a builder may travel with deferred
// work and be finished from another goroutine.
type ResponseBuilder struct {
	ctx    *Context
	code   int
	header http.Header
	buf    *bytes.Buffer
}

func (b *ResponseBuilder) body() *bytes.Buffer {
	if b.buf == nil {
		b.buf = b.ctx.strand.AcquireBuffer()
	}
	return b.buf
}

func (b *ResponseBuilder) discard() {
	if b.buf != nil {
		b.ctx.strand.ReleaseBuffer(b.buf)
		b.buf = nil
	}
}

// SetHeader sets a response header and returns the builder.
func (b *ResponseBuilder) SetHeader(name, value string) *ResponseBuilder {
	b.header.Set(name, value)
	return b
}

// AddHeader adds a response header value and returns the builder.
func (b *ResponseBuilder) AddHeader(name, value string) *ResponseBuilder {
	b.header.Add(name, value)
	return b
}

// SetContentType sets the Content-Type header and returns the builder.
func (b *ResponseBuilder) SetContentType(ct string) *ResponseBuilder {
	return b.SetHeader(HeaderContentType, ct)
}

// SetBody replaces the staged body and returns the builder.
func (b *ResponseBuilder) SetBody(s string) *ResponseBuilder {
	buf := b.body()
	buf.Reset()
	buf.WriteString(s)
	return b
}

// AppendBody appends to the staged body and returns the builder.
func (b *ResponseBuilder) AppendBody(s string) *ResponseBuilder {
	b.body().WriteString(s)
	return b
}

// Done sends the staged response as the request's terminal response.
// If some other holder of the context already produced the terminal
// response, nothing is written and herror.ErrResponseSent is returned.
func (b *ResponseBuilder) Done() error {
	c := b.ctx
	if !c.claim() {
		b.discard()
		return herror.ErrResponseSent
	}

	header := c.res.Header()
	for name, values := range b.header {
		header[name] = values
	}
	c.res.WriteHeader(b.code)

	var err error
	if b.buf != nil {
		_, err = c.res.Write(b.buf.Bytes())
		b.discard()
	}
	c.finish()
	return err
}
