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

const MethodNotAllowed = "PS-0001"
const MethodNotAllowedMsg = "Method not allowed"

const MissingApiKey = "PS-0002"
const MissingApiKeyMsg = "Missing OPENAI_API_KEY on server"

const InvalidRequestBody = "PS-0003"
const InvalidRequestBodyMsg = "Invalid request body"

const UpstreamFailure = "PS-0004"

const InvalidObject = "PS-0005"
const InvalidObjectMsg = "Validation failed for fields: $fields"

const NotFound = "PS-0006"
const NotFoundMsg = "Not found"

const InternalServerError = "PS-0007"
const InternalServerErrorMsg = "Internal server error"
