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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strand-http/strand"
)

func TestRateLimit(t *testing.T) {
	s := strand.New()
	s.Use(RateLimit(1, 2))
	s.GET("/", strand.OkHandler())

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		return rec.Code
	}

	// The burst of 2 admits two requests, the third is rejected.
	assert.Equal(t, http.StatusOK, send("1.1.1.1:1000"))
	assert.Equal(t, http.StatusOK, send("1.1.1.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, send("1.1.1.1:1000"))

	// Another client has its own bucket.
	assert.Equal(t, http.StatusOK, send("2.2.2.2:1000"))
}
