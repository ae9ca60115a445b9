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

package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kennethstamaria/portfolio/portfolio-service/exception"
	"github.com/kennethstamaria/portfolio/portfolio-service/view"
	log "github.com/sirupsen/logrus"
)

const JsonContentType = "application/json; charset=utf-8"

func RespondWithError(w http.ResponseWriter, msg string, err error) {
	log.Errorf("%s: %s", msg, err.Error())
	var customError *exception.CustomError
	if errors.As(err, &customError) {
		RespondWithCustomError(w, customError)
	} else {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusInternalServerError,
			Code:    exception.InternalServerError,
			Message: msg,
			Debug:   err.Error()})
	}
}

func RespondWithCustomError(w http.ResponseWriter, err *exception.CustomError) {
	log.Debugf("Request failed. Code = %d (%s). Message = %s. Params: %v. Debug: %s", err.Status, err.Code, err.Message, err.Params, err.Debug)
	RespondWithJson(w, err.Status, view.ErrorResponse{Error: err.UserMessage()})
}

// RespondWithJson writes payload as an uncacheable JSON response.
func RespondWithJson(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("failed to marshal http response: %v", err)
		code = http.StatusInternalServerError
		response, _ = json.Marshal(view.ErrorResponse{Error: exception.InternalServerErrorMsg})
	}
	w.Header().Set("Content-Type", JsonContentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Errorf("failed to write http response: %v", err)
	}
}
