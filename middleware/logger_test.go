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
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strand-http/strand"
)

func TestLogger(t *testing.T) {
	buf := new(strings.Builder)

	s := strand.New()
	s.Logger = strand.NewLoggerFromWriter(buf, "")
	s.Use(Logger())
	s.GET("/ok", strand.OkHandler())
	s.GET("/fail", func(c *strand.Context) error {
		return strand.NewHTTPError(http.StatusBadGateway, "upstream is down")
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	s.ServeHTTP(httptest.NewRecorder(), req)
	assert.Contains(t, buf.String(), "[I] ")
	assert.Contains(t, buf.String(), "method=GET, path=/ok, code=200")

	buf.Reset()
	req = httptest.NewRequest(http.MethodGet, "/fail", nil)
	s.ServeHTTP(httptest.NewRecorder(), req)
	assert.Contains(t, buf.String(), "[E] ")
	assert.Contains(t, buf.String(), "code=502")
	assert.Contains(t, buf.String(), "err=upstream is down")
}
