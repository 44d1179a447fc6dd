// Copyright (c) 2025, The cn-food-mcp Authors.  All rights reserved.
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
package query

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	cnerrors "github.com/cnfood/cn-food-mcp/pkg/errors"
)

var (
	// Query operation metrics
	queryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cnfood_query_requests_total",
			Help: "Total number of query engine operations by outcome code",
		},
		[]string{"operation", "code"},
	)
	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cnfood_query_duration_seconds",
			Help:    "Duration of query engine operations in seconds",
			Buckets: []float64{.00005, .0001, .0005, .001, .005, .01, .05},
		},
		[]string{"operation"},
	)
	queryResultSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cnfood_query_result_size",
			Help:    "Number of records returned by query engine operations",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
		[]string{"operation"},
	)
)

const codeOK = "OK"

// observe records the outcome of one operation started at start.
func observe(operation string, start time.Time, size int, err error) {
	queryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	code := codeOK
	if err != nil {
		code = string(cnerrors.CodeOf(err))
	} else {
		queryResultSize.WithLabelValues(operation).Observe(float64(size))
	}
	queryRequestsTotal.WithLabelValues(operation, code).Inc()
}
