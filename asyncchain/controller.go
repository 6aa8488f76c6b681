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

import "sync/atomic"

// Handle is the view of an in-flight request the chain machinery needs.
// The implementation must make the terminal send exactly-once safe: the
// machinery may call SendStatus from whichever goroutine currently drives
// the chain, and so may handler code.
type Handle interface {
	// SendStatus sends a terminal header-only response.
	SendStatus(code int) error
}

// Handler processes one step of a chain. It owns the controller from the
// moment it is invoked: it may finish the request, stash the controller
// for deferred resumption, or pass the request on by calling Next.
// A Handler must not let a panic escape; faults are reported as Failure
// or as a response sent before returning Ok.
type Handler[H Handle] func(Controller[H]) ScheduleResult

// NextStep is the answer to "what happens next" for a chain: either a
// handler to invoke, or nothing because the position is past the last
// handler. There is no third case.
type NextStep[H Handle] struct {
	handler Handler[H]
}

// StepHandler returns a NextStep carrying the handler to invoke.
func StepHandler[H Handle](h Handler[H]) NextStep[H] {
	if h == nil {
		panic("asyncchain: nil handler in a chain")
	}
	return NextStep[H]{handler: h}
}

// StepExhausted returns the NextStep signalling that no handlers remain.
func StepExhausted[H Handle]() NextStep[H] { return NextStep[H]{} }

// Exhausted reports whether the chain has no handlers left.
func (s NextStep[H]) Exhausted() bool { return s.handler == nil }

// Handler returns the handler to invoke. It is nil iff Exhausted.
func (s NextStep[H]) Handler() Handler[H] { return s.handler }

// Controller is the per-request cursor over an ordered handler sequence.
// It is a uniquely-owned value: it is handed from the chain to the driver,
// from the driver to a handler, and possibly from the handler to deferred
// work on another goroutine, but it is never shared. The position only
// ever moves forward and the controller is never reused across requests.
//
// RequestHandle may be called any number of times while the caller owns
// the controller. OnNext consumes the right to advance; calling it from a
// context that no longer owns the controller panics.
type Controller[H Handle] interface {
	// RequestHandle returns the handle of the request being processed.
	RequestHandle() H

	// OnNext advances the position by one step and returns either the
	// handler now under the cursor or the exhaustion marker.
	OnNext() NextStep[H]

	// regrant restores the advance right when the driver hands the
	// controller to a handler. Unexported: the two chain-storage
	// implementations in this package are the only controllers.
	regrant()

	// revoke withdraws the advance right for good once the driver has
	// terminated the chain on the handler's behalf.
	revoke()
}

// controllerState carries what both controller implementations share:
// the request handle, the cursor position, and the ownership grant.
//
// The grant is the move-emulation for a language without move semantics:
// it is live exactly while one call site is allowed to advance the chain,
// consumed by OnNext and restored only when ownership is transferred to
// the next handler. Any stale holder that tries to advance trips the
// guard instead of double-dispatching.
type controllerState[H Handle] struct {
	handle  H
	pos     int
	granted atomic.Bool
}

func (s *controllerState[H]) init(handle H, pos int) {
	s.handle = handle
	s.pos = pos
	s.granted.Store(true)
}

func (s *controllerState[H]) RequestHandle() H { return s.handle }

func (s *controllerState[H]) regrant() { s.granted.Store(true) }

func (s *controllerState[H]) revoke() { s.granted.Store(false) }

// consume takes the advance right or panics if it is already gone.
func (s *controllerState[H]) consume() {
	if !s.granted.CompareAndSwap(true, false) {
		panic("asyncchain: controller advanced by a holder that gave ownership away")
	}
}
