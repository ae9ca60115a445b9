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
	"testing"
	"unicode/utf8"

	"github.com/kennethstamaria/portfolio/portfolio-service/view"
	"pgregory.net/rapid"
)

func elementGenerator() *rapid.Generator[any] {
	return rapid.OneOf(
		rapid.Custom(func(t *rapid.T) any {
			return map[string]any{
				"role":    rapid.SampledFrom([]string{"user", "assistant", "system", "developer", "", "User"}).Draw(t, "role"),
				"content": rapid.String().Draw(t, "content"),
			}
		}),
		rapid.Custom(func(t *rapid.T) any {
			return map[string]any{
				"role":    rapid.SampledFrom([]string{"user", "assistant"}).Draw(t, "role"),
				"content": rapid.IntRange(-10, 10).Draw(t, "content"),
			}
		}),
		rapid.Custom(func(t *rapid.T) any {
			return map[string]any{"content": rapid.String().Draw(t, "content")}
		}),
		rapid.Custom(func(t *rapid.T) any {
			return rapid.String().Draw(t, "text")
		}),
		rapid.Custom(func(t *rapid.T) any {
			return rapid.IntRange(-1000, 1000).Draw(t, "number")
		}),
		rapid.Custom(func(t *rapid.T) any {
			return []any{rapid.Bool().Draw(t, "flag")}
		}),
		rapid.Just[any](nil),
	)
}

func TestSanitizeTurns_ArbitraryInputProducesValidTurns(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		elements := rapid.SliceOfN(elementGenerator(), 0, 40).Draw(t, "elements")
		raw, err := json.Marshal(elements)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		result := SanitizeTurns(raw)

		considered := len(elements)
		if considered > MaxChatTurns {
			considered = MaxChatTurns
		}
		if len(result.Turns)+len(result.Rejected) != considered {
			t.Fatalf("expected %d considered elements, got %d turns and %d rejections", considered, len(result.Turns), len(result.Rejected))
		}
		for _, turn := range result.Turns {
			if turn.Role != view.ChatRoleUser && turn.Role != view.ChatRoleAssistant {
				t.Fatalf("unexpected role %q", turn.Role)
			}
			if turn.Content == "" {
				t.Fatalf("empty content kept")
			}
			if utf8.RuneCountInString(turn.Content) > MaxTurnContentLength {
				t.Fatalf("content longer than %d runes", MaxTurnContentLength)
			}
		}
	})
}

func TestSanitizeTurns_TruncationKeepsTrimmedPrefix(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		content := rapid.StringN(0, 1500, -1).Draw(t, "content")
		raw, _ := json.Marshal([]view.ChatTurn{{Role: view.ChatRoleUser, Content: content}})

		result := SanitizeTurns(raw)

		trimmed := []rune(strings.TrimFunc(content, isTrimmable))
		if len(trimmed) == 0 {
			if len(result.Turns) != 0 {
				t.Fatalf("blank content must be dropped")
			}
			return
		}
		if len(trimmed) > MaxTurnContentLength {
			trimmed = trimmed[:MaxTurnContentLength]
		}
		if len(result.Turns) != 1 || result.Turns[0].Content != string(trimmed) {
			t.Fatalf("expected content %q, got %+v", string(trimmed), result.Turns)
		}
	})
}

func TestSanitizeTurns_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		turnGenerator := rapid.Custom(func(t *rapid.T) view.ChatTurn {
			head := rapid.StringMatching(`[a-zA-Z0-9.,!?]{1,1000}`).Draw(t, "head")
			tail := rapid.StringMatching(`[a-zA-Z0-9.,!?]{0,600}`).Draw(t, "tail")
			padding := rapid.StringMatching(`[ \t\n]{0,3}`).Draw(t, "padding")
			return view.ChatTurn{
				Role:    rapid.SampledFrom([]string{view.ChatRoleUser, view.ChatRoleAssistant}).Draw(t, "role"),
				Content: padding + head + tail + padding,
			}
		})
		turns := rapid.SliceOfN(turnGenerator, 0, 20).Draw(t, "turns")
		raw, _ := json.Marshal(turns)

		first := SanitizeTurns(raw)
		again, _ := json.Marshal(first.Turns)
		second := SanitizeTurns(again)

		if len(first.Turns) != len(second.Turns) {
			t.Fatalf("second pass changed the number of turns: %d != %d", len(first.Turns), len(second.Turns))
		}
		for i := range first.Turns {
			if first.Turns[i] != second.Turns[i] {
				t.Fatalf("second pass changed turn %d: %+v != %+v", i, first.Turns[i], second.Turns[i])
			}
		}
	})
}
