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

package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kennethstamaria/portfolio/portfolio-service/controller"
	"github.com/kennethstamaria/portfolio/portfolio-service/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

type Controllers struct {
	Chat      controller.ChatController
	Assistant controller.AssistantController
	Health    controller.HealthController
	// Static is optional, nil disables the SPA routes.
	Static controller.StaticController
}

func NewRouter(controllers Controllers) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestIdMiddleware)
	r.Use(middleware.PrometheusMiddleware)

	// any method: the controller answers non-POST requests itself
	r.HandleFunc("/api/chat", controllers.Chat.Chat)
	r.HandleFunc("/api/assistant", controllers.Assistant.GetAssistantInfo).Methods(http.MethodGet, http.MethodHead)
	r.PathPrefix("/api/").HandlerFunc(controller.NotFound)

	r.HandleFunc("/live", controllers.Health.HandleLiveRequest).Methods(http.MethodGet)
	r.HandleFunc("/ready", controllers.Health.HandleReadyRequest).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	if controllers.Static != nil {
		r.PathPrefix("/").
			Handler(handlers.CompressHandler(http.HandlerFunc(controllers.Static.Serve))).
			Methods(http.MethodGet, http.MethodHead)
	}

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(log.StandardLogger()),
		handlers.PrintRecoveryStack(true),
	)(handlers.ProxyHeaders(r))
}
