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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsocketEcho(t *testing.T) {
	s := New()
	s.GET("/echo", func(c *Context) error {
		conn, err := c.Websocket()
		if err != nil {
			return err
		}
		defer conn.Close()

		mt, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		return conn.WriteMessage(mt, msg)
	})

	srv := httptest.NewServer(s)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/echo"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "ping", string(msg))
}

func TestWebsocketAfterResponseFails(t *testing.T) {
	ctx, _ := newTestContext(http.MethodGet, "/echo")
	require.NoError(t, ctx.SendStatus(http.StatusOK))

	_, err := ctx.Websocket()
	assert.ErrorIs(t, err, ErrResponseSent)
}
