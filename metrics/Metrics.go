// Copyright 2024-2025 NetCracker Technology Corporation
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

package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const (
	OutcomeSuccess         = "success"
	OutcomeUpstreamHttp    = "upstream_http"
	OutcomeUpstreamLogical = "upstream_logical"
	OutcomeEmptyReply      = "empty_reply"
	OutcomeTransport       = "transport"
)

var TotalRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "portfolio_http_requests_total",
		Help: "Number of http requests.",
	},
	[]string{"path", "code", "method"},
)

var HttpDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "portfolio_http_request_duration_seconds",
		Help: "Duration of http requests.",
		Buckets: []float64{
			0.05,
			0.1,
			0.25,
			0.5,
			1,
			2.5,
			5,
			10,
			30,
		},
	},
	[]string{"path", "code", "method"},
)

var ChatRepliesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "portfolio_chat_replies_total",
		Help: "Chat completions by outcome.",
	},
	[]string{"outcome"},
)

var OpenAIRequestDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "portfolio_openai_request_duration_seconds",
		Help:    "Duration of completion API calls.",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
	},
)

func RegisterAllPrometheusApplicationMetrics() {
	register(TotalRequests)
	register(HttpDuration)
	register(ChatRepliesTotal)
	register(OpenAIRequestDuration)
}

func register(collector prometheus.Collector) {
	if err := prometheus.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			return
		}
		log.Errorf("Failed to register prometheus collector: %v", err)
	}
}
