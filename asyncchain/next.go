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

package asyncchain

import "net/http"

// Next performs one dispatch step of the chain: it asks the controller
// what comes next and either invokes that handler, with ownership of the
// controller transferred to it, or finishes the request.
//
// When the chain is exhausted, Next sends a 404 against the request
// handle: no handler accepted the request, which is a routing outcome,
// not a fault. When the invoked handler returns Failure, Next sends a
// 500. When it returns Ok, nothing more happens here; the handler, or
// whatever deferred work it scheduled, finishes the request or calls
// Next again from wherever that work completes.
//
// The caller must own the controller and must not touch it after Next
// returns. A handler that declines synchronously may call Next from
// within its own invocation; the recursion is bounded by the number of
// handlers remaining.
func Next[H Handle](controller Controller[H]) {
	step := controller.OnNext()
	if step.Exhausted() {
		_ = controller.RequestHandle().SendStatus(http.StatusNotFound)
		return
	}

	// The handler may stash the controller in deferred work, so the
	// handle for the failure path has to be taken out before the call.
	handle := controller.RequestHandle()
	controller.regrant()
	switch step.Handler()(controller) {
	case Ok():
		// The handler owns the rest of the request's lifetime.
	case Failure():
		// The chain ends here; no later handler runs for this request,
		// so any stale reference to the controller is dead too.
		controller.revoke()
		_ = handle.SendStatus(http.StatusInternalServerError)
	}
}
