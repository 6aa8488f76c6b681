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

func TestRecover(t *testing.T) {
	s := strand.New()
	s.Logger = strand.NewLoggerFromWriter(&strings.Builder{}, "")
	s.Use(Recover())
	s.GET("/panic", func(c *strand.Context) error {
		panic("something went badly")
	})

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecoverKeepsErrorValue(t *testing.T) {
	var got error
	h := Recover()(func(c *strand.Context) error {
		panic(strand.NewHTTPError(http.StatusConflict, "duplicate book"))
	})

	s := strand.New()
	s.HandleError = func(c *strand.Context, err error) {
		got = err
		_ = c.SendStatus(http.StatusConflict)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	s.GET("/", h)
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var herr strand.HTTPError
	assert.ErrorAs(t, got, &herr)
	assert.Equal(t, "duplicate book", herr.Error())
}
