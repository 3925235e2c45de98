// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	orderTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "epicerie",
		Subsystem: "order",
		Name:      "transitions_total",
		Help:      "Number of order status transitions",
	}, []string{"status"})

	checkoutFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "epicerie",
		Subsystem: "order",
		Name:      "checkout_failures_total",
		Help:      "Number of failed checkouts",
	}, []string{"reason"})

	snapshots = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "epicerie",
		Subsystem: "order",
		Name:      "snapshots_total",
		Help:      "Number of order history snapshots written",
	})
)
