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

const UpstreamLogicalErrorMsg = "OpenAI returned an error response."
const EmptyReplyErrorMsg = "OpenAI returned an empty response."

// UpstreamHTTPError is returned when the completion API answers with a non-2xx status.
type UpstreamHTTPError struct {
	Status int
	Body   string
}

func (e *UpstreamHTTPError) Error() string {
	detail := e.Body
	if strings.TrimSpace(detail) == "" {
		detail = http.StatusText(e.Status)
	}
	return fmt.Sprintf("OpenAI request failed (%d): %s", e.Status, detail)
}

// UpstreamLogicalError is returned when a 2xx response carries an error object.
type UpstreamLogicalError struct {
	Detail string
}

func (e *UpstreamLogicalError) Error() string {
	return UpstreamLogicalErrorMsg
}

type EmptyReplyError struct{}

func (e *EmptyReplyError) Error() string {
	return EmptyReplyErrorMsg
}
