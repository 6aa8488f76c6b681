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

package herror

import (
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPError(t *testing.T) {
	assert.Equal(t, "Not Found", ErrNotFound.Error())
	assert.Equal(t, http.StatusNotFound, ErrNotFound.Code)

	err := ErrBadRequest.Newf("bad book #%d", 7)
	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, "bad book #7", err.Error())

	var herr HTTPError
	assert.ErrorAs(t, error(err), &herr)
}

func TestHTTPErrorUnwrap(t *testing.T) {
	err := ErrInternalServerError.New(io.ErrUnexpectedEOF)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}
