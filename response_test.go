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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	resp := NewResponse(rec)

	resp.WriteHeader(http.StatusTeapot)
	resp.WriteHeader(http.StatusOK)

	assert.True(t, resp.Wrote)
	assert.Equal(t, http.StatusTeapot, resp.Status)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestResponseWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	resp := NewResponse(rec)

	n, err := resp.Write([]byte("hello, "))
	assert.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = resp.WriteString("world")
	assert.NoError(t, err)
	assert.Equal(t, 5, n)

	assert.Equal(t, int64(12), resp.Size)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "hello, world", rec.Body.String())
}

func TestResponseEmptyWriteDoesNotCommit(t *testing.T) {
	rec := httptest.NewRecorder()
	resp := NewResponse(rec)

	n, err := resp.Write(nil)
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.False(t, resp.Wrote)

	resp.WriteHeader(http.StatusAccepted)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
