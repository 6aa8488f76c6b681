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

// CharsetUTF8 is the UTF-8 charset suffix of the Content-Type value.
const CharsetUTF8 = "charset=UTF-8"

// MIME types.
const (
	MIMETextPlain            = "text/plain"
	MIMETextHTML             = "text/html"
	MIMEApplicationJSON      = "application/json"
	MIMEOctetStream          = "application/octet-stream"
	MIMEApplicationForm      = "application/x-www-form-urlencoded"
	MIMETextPlainCharsetUTF8 = MIMETextPlain + "; " + CharsetUTF8
	MIMETextHTMLCharsetUTF8  = MIMETextHTML + "; " + CharsetUTF8

	MIMEApplicationJSONCharsetUTF8 = MIMEApplicationJSON + "; " + CharsetUTF8
)

// HTTP headers.
const (
	HeaderAccept        = "Accept"
	HeaderAllow         = "Allow"
	HeaderContentLength = "Content-Length"
	HeaderContentType   = "Content-Type"
	HeaderLocation      = "Location"
	HeaderServer        = "Server"
	HeaderUpgrade       = "Upgrade"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderXRealIP       = "X-Real-Ip"
	HeaderXRequestID    = "X-Request-Id"
)
