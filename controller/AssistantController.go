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
	"encoding/json"
	"net/http"

	"github.com/kennethstamaria/portfolio/portfolio-service/service"
	"github.com/kennethstamaria/portfolio/portfolio-service/utils"
	log "github.com/sirupsen/logrus"
)

type AssistantController interface {
	GetAssistantInfo(w http.ResponseWriter, r *http.Request)
}

func NewAssistantController(assistantService service.AssistantService) AssistantController {
	return &assistantControllerImpl{assistantService: assistantService}
}

type assistantControllerImpl struct {
	assistantService service.AssistantService
}

func (a assistantControllerImpl) GetAssistantInfo(w http.ResponseWriter, r *http.Request) {
	body, err := json.Marshal(a.assistantService.GetAssistantInfo())
	if err != nil {
		utils.RespondWithError(w, "Failed to build assistant info", err)
		return
	}
	etag := `"` + utils.GetEncodedXXHash128(body) + `"`

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", utils.JsonContentType)
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(body); err != nil {
		log.Errorf("failed to write http response: %v", err)
	}
}
