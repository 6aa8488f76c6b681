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
	"sync"

	"golang.org/x/time/rate"

	"github.com/strand-http/strand"
	"github.com/strand-http/strand/herror"
)

// limiterPool keeps one token-bucket limiter per client key.
type limiterPool struct {
	mu    sync.Mutex
	m     map[string]*rate.Limiter
	rps   rate.Limit
	burst int
}

func (p *limiterPool) get(key string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.m == nil {
		p.m = make(map[string]*rate.Limiter)
	}
	if l, ok := p.m[key]; ok {
		return l
	}
	l := rate.NewLimiter(p.rps, p.burst)
	p.m[key] = l
	return l
}

func (p *limiterPool) allow(key string) bool { return p.get(key).Allow() }

// RateLimit returns a middleware rejecting requests above rps requests
// per second per client address, with the given burst, as 429.
func RateLimit(rps float64, burst int) Middleware {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}
	pool := &limiterPool{rps: rate.Limit(rps), burst: burst}

	return func(next strand.Handler) strand.Handler {
		return func(c *strand.Context) error {
			if !pool.allow(c.ClientIP()) {
				return herror.ErrTooManyRequests
			}
			return next(c)
		}
	}
}
