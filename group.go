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
	"fmt"
	"net/http"
	"strings"
)

// Group manages a set of routes under a common path prefix with its own
// middlewares, applied after the app-level ones.
type Group struct {
	strand      *Strand
	prefix      string
	middlewares []Middleware
}

// Group returns a new route group under prefix.
func (s *Strand) Group(prefix string, mws ...Middleware) *Group {
	if prefix == "" || prefix[0] != '/' {
		panic(fmt.Errorf("group prefix %q does not start with '/'", prefix))
	}
	return &Group{
		strand:      s,
		prefix:      strings.TrimRight(prefix, "/"),
		middlewares: append([]Middleware{}, mws...),
	}
}

// Group returns a new sub-group inheriting the middlewares of the parent.
func (g *Group) Group(prefix string, mws ...Middleware) *Group {
	if prefix == "" || prefix[0] != '/' {
		panic(fmt.Errorf("group prefix %q does not start with '/'", prefix))
	}
	return &Group{
		strand:      g.strand,
		prefix:      g.prefix + strings.TrimRight(prefix, "/"),
		middlewares: append(append([]Middleware{}, g.middlewares...), mws...),
	}
}

// Use adds middlewares for the routes registered on the group afterwards.
func (g *Group) Use(mws ...Middleware) *Group {
	g.middlewares = append(g.middlewares, mws...)
	return g
}

// Route registers a synchronous handler under the group prefix.
func (g *Group) Route(method, path string, handler Handler, mws ...Middleware) *Group {
	mws = append(append([]Middleware{}, g.middlewares...), mws...)
	g.strand.Route(method, g.prefix+path, handler, mws...)
	return g
}

// RouteAsync registers the chain entries of one route under the group
// prefix. Group middlewares do not apply; they wrap synchronous
// handlers only.
func (g *Group) RouteAsync(method, path string, handlers ...AsyncHandler) *Group {
	g.strand.RouteAsync(method, g.prefix+path, handlers...)
	return g
}

// GET is short for Route(http.MethodGet, path, handler, mws...).
func (g *Group) GET(path string, h Handler, mws ...Middleware) *Group {
	return g.Route(http.MethodGet, path, h, mws...)
}

// POST is short for Route(http.MethodPost, path, handler, mws...).
func (g *Group) POST(path string, h Handler, mws ...Middleware) *Group {
	return g.Route(http.MethodPost, path, h, mws...)
}

// PUT is short for Route(http.MethodPut, path, handler, mws...).
func (g *Group) PUT(path string, h Handler, mws ...Middleware) *Group {
	return g.Route(http.MethodPut, path, h, mws...)
}

// DELETE is short for Route(http.MethodDelete, path, handler, mws...).
func (g *Group) DELETE(path string, h Handler, mws ...Middleware) *Group {
	return g.Route(http.MethodDelete, path, h, mws...)
}
