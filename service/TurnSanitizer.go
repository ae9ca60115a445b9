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

package service

import (
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kennethstamaria/portfolio/portfolio-service/view"
)

const (
	MaxChatTurns         = 14
	MaxTurnContentLength = 900
)

const (
	RejectNotAnObject    = "not_an_object"
	RejectInvalidRole    = "invalid_role"
	RejectInvalidContent = "invalid_content"
	RejectEmptyContent   = "empty_content"
)

// TurnRejection explains why an element of the incoming messages array was dropped.
// Index refers to the position in the original array.
type TurnRejection struct {
	Index  int
	Reason string
}

type SanitizeResult struct {
	Turns    []view.ChatTurn
	Rejected []TurnRejection
}

// SanitizeTurns turns an untrusted messages value into a bounded list of chat turns.
// It never fails: anything that is not an array yields no turns and invalid
// elements are skipped. Only the last MaxChatTurns elements are considered,
// before filtering, and content is trimmed and cut to MaxTurnContentLength runes.
func SanitizeTurns(raw json.RawMessage) SanitizeResult {
	result := SanitizeResult{Turns: make([]view.ChatTurn, 0)}

	var elements []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &elements) != nil {
		return result
	}

	offset := 0
	if len(elements) > MaxChatTurns {
		offset = len(elements) - MaxChatTurns
		elements = elements[offset:]
	}

	for i, element := range elements {
		turn, reason := sanitizeTurn(element)
		if reason != "" {
			result.Rejected = append(result.Rejected, TurnRejection{Index: offset + i, Reason: reason})
			continue
		}
		result.Turns = append(result.Turns, turn)
	}
	return result
}

func sanitizeTurn(element json.RawMessage) (view.ChatTurn, string) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(element, &fields); err != nil || fields == nil {
		return view.ChatTurn{}, RejectNotAnObject
	}

	var role string
	if err := json.Unmarshal(fields["role"], &role); err != nil {
		return view.ChatTurn{}, RejectInvalidRole
	}
	if role != view.ChatRoleUser && role != view.ChatRoleAssistant {
		return view.ChatTurn{}, RejectInvalidRole
	}

	rawContent, exists := fields["content"]
	if !exists || string(rawContent) == "null" {
		return view.ChatTurn{}, RejectInvalidContent
	}
	var content string
	if err := json.Unmarshal(rawContent, &content); err != nil {
		return view.ChatTurn{}, RejectInvalidContent
	}

	content = strings.TrimFunc(content, isTrimmable)
	if content == "" {
		return view.ChatTurn{}, RejectEmptyContent
	}
	return view.ChatTurn{Role: role, Content: truncateRunes(content, MaxTurnContentLength)}, ""
}

// isTrimmable matches Unicode White_Space and the byte order mark. NEL is kept.
func isTrimmable(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func truncateRunes(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	return string([]rune(value)[:limit])
}
