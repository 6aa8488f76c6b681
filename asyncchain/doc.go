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

// Package asyncchain drives a request through an ordered sequence
// of handlers, where each handler may process the request in place,
// hand it off to deferred work on another goroutine and resume the
// chain later, or decline and pass the request to the next handler.
//
// A handler receives a Controller, the per-request cursor coupling the
// request handle to a position in the chain, and reports a ScheduleResult:
// Ok when it has taken responsibility for eventually finishing the request,
// Failure when it could not even schedule the work. Whoever holds the
// controller continues the chain by calling Next, from any goroutine.
//
// The package guarantees that, no matter how many handlers participate
// or on which goroutines their completions arrive, the machinery itself
// produces at most one terminal response per request: a 404 when the
// chain runs out of handlers, or a 500 when a handler fails to schedule.
//
//	chain := asyncchain.NewGrowableChain[*myHandle]()
//	chain.Append(func(c asyncchain.Controller[*myHandle]) asyncchain.ScheduleResult {
//		req := c.RequestHandle()
//		if !pool.Submit(func() { process(req); /* or asyncchain.Next(c) */ }) {
//			return asyncchain.Failure()
//		}
//		return asyncchain.Ok()
//	})
//	chain.Handle(handle)
package asyncchain
