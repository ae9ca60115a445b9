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

package exception

import (
	"fmt"
	"net/http"
	"strings"
)

type CustomError struct {
	Status  int                    `json:"status"`
	Code    string                 `json:"code,omitempty"`
	Message string                 `json:"message,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
	Debug   string                 `json:"debug,omitempty"`
}

func (c CustomError) Error() string {
	msg := c.UserMessage()
	if c.Debug != "" {
		return msg + " | " + c.Debug
	} else {
		return msg
	}
}

// UserMessage is the text that may be shown to the caller, Debug is never part of it.
func (c CustomError) UserMessage() string {
	msg := c.Message
	for k, v := range c.Params {
		msg = strings.ReplaceAll(msg, "$"+k, fmt.Sprintf("%v", v))
	}
	return msg
}

func NewMethodNotAllowedError(method string) *CustomError {
	return &CustomError{
		Status:  http.StatusMethodNotAllowed,
		Code:    MethodNotAllowed,
		Message: MethodNotAllowedMsg,
		Params:  map[string]interface{}{"method": method},
	}
}

func NewServerConfigurationError() *CustomError {
	return &CustomError{
		Status:  http.StatusInternalServerError,
		Code:    MissingApiKey,
		Message: MissingApiKeyMsg,
	}
}

func NewMalformedRequestError(err error) *CustomError {
	return &CustomError{
		Status:  http.StatusInternalServerError,
		Code:    InvalidRequestBody,
		Message: InvalidRequestBodyMsg,
		Debug:   err.Error(),
	}
}

// NewUpstreamFailureError exposes the upstream failure text to the caller as is.
func NewUpstreamFailureError(err error) *CustomError {
	return &CustomError{
		Status:  http.StatusInternalServerError,
		Code:    UpstreamFailure,
		Message: err.Error(),
	}
}
