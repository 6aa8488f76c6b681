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

func TestRequestID(t *testing.T) {
	s := strand.New()
	s.Use(RequestID(func() string { return "fixed-id" }))
	s.GET("/", strand.OkHandler())

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "fixed-id", rec.Header().Get(strand.HeaderXRequestID))
}

func TestRequestIDKeepsTheIncomingOne(t *testing.T) {
	s := strand.New()
	s.Use(RequestID())
	s.GET("/", strand.OkHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(strand.HeaderXRequestID, "from-the-client")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, "from-the-client", rec.Header().Get(strand.HeaderXRequestID))
}

func TestRequestIDGeneratesUnique(t *testing.T) {
	s := strand.New()
	s.Use(RequestID())
	s.GET("/", strand.OkHandler())

	get := func() string {
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		return rec.Header().Get(strand.HeaderXRequestID)
	}

	first, second := get(), get()
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
