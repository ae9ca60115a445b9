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

package controller

import (
	"net/http"

	"github.com/kennethstamaria/portfolio/portfolio-service/config"
	"github.com/kennethstamaria/portfolio/portfolio-service/exception"
	"github.com/kennethstamaria/portfolio/portfolio-service/logger"
	"github.com/kennethstamaria/portfolio/portfolio-service/service"
	"github.com/kennethstamaria/portfolio/portfolio-service/utils"
	"github.com/kennethstamaria/portfolio/portfolio-service/view"
)

type ChatController interface {
	Chat(w http.ResponseWriter, r *http.Request)
}

func NewChatController(chatService service.ChatService, openAIConfig config.OpenAIConfig, maxBodyBytes int64) ChatController {
	return &chatControllerImpl{
		chatService:  chatService,
		apiKey:       openAIConfig.ApiKey,
		maxBodyBytes: maxBodyBytes,
	}
}

type chatControllerImpl struct {
	chatService  service.ChatService
	apiKey       string
	maxBodyBytes int64
}

func (c *chatControllerImpl) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		utils.RespondWithCustomError(w, exception.NewMethodNotAllowedError(r.Method))
		return
	}

	if c.apiKey == "" {
		logger.Errorf(ctx, "Chat request rejected: OPENAI_API_KEY is not configured")
		utils.RespondWithCustomError(w, exception.NewServerConfigurationError())
		return
	}

	body, err := readLimitedBody(w, r, c.maxBodyBytes)
	if err != nil {
		utils.RespondWithCustomError(w, exception.NewMalformedRequestError(err))
		return
	}
	params, err := getRawBodyParams(body)
	if err != nil {
		utils.RespondWithCustomError(w, exception.NewMalformedRequestError(err))
		return
	}
	chatReq := view.ChatRequest{Messages: params["messages"]}

	sanitized := service.SanitizeTurns(chatReq.Messages)
	for _, rejection := range sanitized.Rejected {
		logger.Debugf(ctx, "Message #%d dropped: %s", rejection.Index, rejection.Reason)
	}
	logger.Infof(ctx, "Chat request received with %d turns", len(sanitized.Turns))

	reply, err := c.chatService.Reply(ctx, sanitized.Turns)
	if err != nil {
		logger.Errorf(ctx, "Chat reply failed: %v", err)
		utils.RespondWithCustomError(w, exception.NewUpstreamFailureError(err))
		return
	}

	utils.RespondWithJson(w, http.StatusOK, view.ChatResponse{Reply: reply})
}
