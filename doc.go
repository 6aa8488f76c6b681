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

// Package strand is a small HTTP server framework whose routing is
// built on asynchronous handler chains: every route owns an ordered
// chain of handlers, and each handler may answer the request in place,
// hand it to deferred work that finishes it from another goroutine, or
// decline and pass it down the chain. The chain machinery, in package
// asyncchain, guarantees exactly one terminal response per request no
// matter where and in which order completions happen.
//
//	app := strand.New()
//	app.GET("/books/:id", func(c *strand.Context) error {
//		return c.Text(http.StatusOK, "book %s", c.Param("id"))
//	})
//	http.ListenAndServe(":8080", app)
package strand
