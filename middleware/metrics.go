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
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/strand-http/strand"
)

// register registers c with reg, reusing the collector already
// registered under the same descriptor when there is one. Two Metrics
// middlewares on one registry therefore share their collectors instead
// of panicking, and separate registries keep separate state.
func register(reg prometheus.Registerer, c prometheus.Collector) prometheus.Collector {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector
		}
		panic(err)
	}
	return c
}

// Metrics returns a middleware recording a request counter and a
// duration histogram per method and route path. The collectors are
// registered with the given registerer, or the default one.
func Metrics(registerer ...prometheus.Registerer) Middleware {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	requestsTotal := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strand_http_requests_total",
			Help: "The number of the handled HTTP requests.",
		},
		[]string{"method", "path", "code"},
	)).(*prometheus.CounterVec)

	requestDuration := register(reg, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "strand_http_request_duration_seconds",
			Help:    "The duration of the handled HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)).(*prometheus.HistogramVec)

	return func(next strand.Handler) strand.Handler {
		return func(c *strand.Context) error {
			start := time.Now()
			err := next(c)

			path := c.RoutePath()
			if path == "" {
				path = c.Path()
			}
			requestsTotal.
				WithLabelValues(c.Method(), path, strconv.Itoa(c.StatusCode())).
				Inc()
			requestDuration.
				WithLabelValues(c.Method(), path).
				Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// MetricsHandler returns a handler exposing the prometheus metrics,
// to be mounted on a route such as "/metrics".
func MetricsHandler() strand.Handler {
	return strand.FromHTTPHandler(promhttp.Handler())
}
