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

// FixedChain is an ordered handler sequence whose handlers are all given
// at construction time.
type FixedChain[H Handle] struct {
	handlers []Handler[H]
}

// NewFixedChain returns a chain over exactly the given handlers.
func NewFixedChain[H Handle](handlers ...Handler[H]) *FixedChain[H] {
	for _, h := range handlers {
		if h == nil {
			panic("asyncchain: nil handler passed to NewFixedChain")
		}
	}
	return &FixedChain[H]{handlers: handlers}
}

// Len returns the number of handlers in the chain.
func (c *FixedChain[H]) Len() int { return len(c.handlers) }

// NewController returns a fresh controller for one traversal of the
// chain, positioned before the first handler.
func (c *FixedChain[H]) NewController(handle H) Controller[H] {
	ctrl := &fixedController[H]{handlers: c.handlers}
	ctrl.controllerState.init(handle, 0)
	return ctrl
}

// Handle runs one request through the chain.
func (c *FixedChain[H]) Handle(handle H) { Next(c.NewController(handle)) }

type fixedController[H Handle] struct {
	controllerState[H]
	handlers []Handler[H]
}

func (c *fixedController[H]) OnNext() NextStep[H] {
	c.consume()
	if c.pos >= len(c.handlers) {
		return StepExhausted[H]()
	}
	h := c.handlers[c.pos]
	c.pos++
	return StepHandler(h)
}

// GrowableChain is an ordered handler sequence that is assembled
// incrementally with Append. Appending is not safe concurrently with
// serving requests; grow the chain first, then hand it to the router.
type GrowableChain[H Handle] struct {
	handlers []Handler[H]
}

// NewGrowableChain returns an empty growable chain.
func NewGrowableChain[H Handle]() *GrowableChain[H] {
	return &GrowableChain[H]{}
}

// Append adds handlers at the end of the chain and returns the chain.
func (c *GrowableChain[H]) Append(handlers ...Handler[H]) *GrowableChain[H] {
	for _, h := range handlers {
		if h == nil {
			panic("asyncchain: nil handler passed to Append")
		}
	}
	c.handlers = append(c.handlers, handlers...)
	return c
}

// Len returns the number of handlers in the chain.
func (c *GrowableChain[H]) Len() int { return len(c.handlers) }

// NewController returns a fresh controller for one traversal of the
// chain, positioned before the first handler.
func (c *GrowableChain[H]) NewController(handle H) Controller[H] {
	ctrl := &growableController[H]{chain: c}
	ctrl.controllerState.init(handle, 0)
	return ctrl
}

// Handle runs one request through the chain.
func (c *GrowableChain[H]) Handle(handle H) { Next(c.NewController(handle)) }

type growableController[H Handle] struct {
	controllerState[H]
	chain *GrowableChain[H]
}

func (c *growableController[H]) OnNext() NextStep[H] {
	c.consume()
	if c.pos >= len(c.chain.handlers) {
		return StepExhausted[H]()
	}
	h := c.chain.handlers[c.pos]
	c.pos++
	return StepHandler(h)
}
