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
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/kennethstamaria/portfolio/portfolio-service/exception"
	"github.com/kennethstamaria/portfolio/portfolio-service/utils"
)

var errInvalidJson = errors.New("request body is not valid JSON")

func readLimitedBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
}

// getRawBodyParams returns top-level members of a JSON object body.
// A blank body, or any valid JSON that is not an object, has no members.
func getRawBodyParams(body []byte) (map[string]json.RawMessage, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]json.RawMessage{}, nil
	}
	if !json.Valid(body) {
		return nil, errInvalidJson
	}
	var params map[string]json.RawMessage
	if err := json.Unmarshal(body, &params); err != nil || params == nil {
		return map[string]json.RawMessage{}, nil
	}
	return params, nil
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithCustomError(w, &exception.CustomError{
		Status:  http.StatusNotFound,
		Code:    exception.NotFound,
		Message: exception.NotFoundMsg,
		Params:  map[string]interface{}{"path": r.URL.Path},
	})
}
