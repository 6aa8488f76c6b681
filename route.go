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
	"net/url"
	"regexp"
	"strings"
)

// route binds a method and a compiled path pattern to the async chain
// driving the requests that match it.
type route struct {
	method  string
	path    string
	pattern *regexp.Regexp
	chain   *Chain
}

// routeTable is the ordered route list; routes match in registration
// order, first match wins.
type routeTable []*route

// match returns the route and path parameters for the request line.
// When only the method differs, it returns the methods that would have
// matched so the caller can answer 405 with an Allow header.
func (rs routeTable) match(method, path string) (*route, url.Values, []string) {
	var allowed []string
	for _, r := range rs {
		m := r.pattern.FindStringSubmatch(path)
		if m == nil {
			continue
		}
		if r.method != method {
			allowed = appendMethod(allowed, r.method)
			continue
		}

		params := make(url.Values, 4)
		for i, name := range r.pattern.SubexpNames() {
			if i > 0 && name != "" {
				params.Set(name, m[i])
			}
		}
		return r, params, nil
	}
	return nil, nil, allowed
}

func appendMethod(methods []string, method string) []string {
	for _, m := range methods {
		if m == method {
			return methods
		}
	}
	return append(methods, method)
}

// compilePath turns an express-style path pattern into an anchored
// regular expression. A ":name" segment captures one non-slash segment;
// ":name(expr)" captures the custom expression, as in "/:booknum(\d+)".
// Everything else matches literally.
func compilePath(path string) (*regexp.Regexp, error) {
	if path == "" || path[0] != '/' {
		return nil, fmt.Errorf("route path %q does not start with '/'", path)
	}

	var b strings.Builder
	b.WriteByte('^')
	for _, seg := range strings.Split(path[1:], "/") {
		b.WriteByte('/')
		switch {
		case seg == "":
		case seg[0] == ':':
			name, expr := seg[1:], "[^/]+"
			if i := strings.IndexByte(name, '('); i >= 0 {
				if !strings.HasSuffix(name, ")") {
					return nil, fmt.Errorf("unbalanced parameter pattern in route path %q", path)
				}
				name, expr = name[:i], name[i+1:len(name)-1]
			}
			if name == "" {
				return nil, fmt.Errorf("missing parameter name in route path %q", path)
			}
			fmt.Fprintf(&b, "(?P<%s>%s)", name, expr)
		default:
			b.WriteString(regexp.QuoteMeta(seg))
		}
	}
	b.WriteByte('$')
	return regexp.Compile(b.String())
}
