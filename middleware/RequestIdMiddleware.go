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

package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/kennethstamaria/portfolio/portfolio-service/logger"
)

const RequestIdHeader = "X-Request-Id"

const maxRequestIdLength = 64

// RequestIdMiddleware keeps a sane incoming X-Request-Id or issues a new one,
// echoes it in the response and puts it on the request context for logging.
func RequestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get(RequestIdHeader)
		if !isAcceptableRequestId(requestId) {
			requestId = uuid.NewString()
		}
		w.Header().Set(RequestIdHeader, requestId)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestId(r.Context(), requestId)))
	})
}

func isAcceptableRequestId(requestId string) bool {
	if requestId == "" || len(requestId) > maxRequestIdLength {
		return false
	}
	for _, c := range requestId {
		if !(c == '-' || c == '_' || c == '.' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return false
		}
	}
	return true
}
