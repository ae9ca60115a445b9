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
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kennethstamaria/portfolio/portfolio-service/config"
	"github.com/kennethstamaria/portfolio/portfolio-service/content"
	"github.com/kennethstamaria/portfolio/portfolio-service/exception"
	"github.com/kennethstamaria/portfolio/portfolio-service/service"
	"github.com/kennethstamaria/portfolio/portfolio-service/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMaxBodyBytes = 64 * 1024

type fakeChatService struct {
	reply string
	err   error
	calls int
	turns []view.ChatTurn
}

func (f *fakeChatService) Reply(ctx context.Context, turns []view.ChatTurn) (string, error) {
	f.calls++
	f.turns = turns
	return f.reply, f.err
}

func newUpstreamChatController(t *testing.T, apiKey string, handler http.HandlerFunc) ChatController {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	portfolio, err := content.Load("")
	require.NoError(t, err)
	openAIConfig := config.OpenAIConfig{
		ApiKey:  apiKey,
		Model:   config.DefaultModel,
		BaseUrl: server.URL + "/v1",
		Timeout: 5 * time.Second,
	}
	chatService := service.NewChatService(openAIConfig, service.NewPortfolioContextService(portfolio), service.NewPromptBuilder())
	return NewChatController(chatService, openAIConfig, testMaxBodyBytes)
}

func upstreamReplying(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func doChat(controller ChatController, method string, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, "/api/chat", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	controller.Chat(recorder, request)
	return recorder
}

func assertChatHeaders(t *testing.T, recorder *httptest.ResponseRecorder) {
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", recorder.Header().Get("Cache-Control"))
}

func TestChat_WrongMethod(t *testing.T) {
	chatService := &fakeChatService{reply: "unused"}
	controller := NewChatController(chatService, config.OpenAIConfig{ApiKey: "test-key"}, testMaxBodyBytes)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodOptions} {
		recorder := doChat(controller, method, "")

		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code, method)
		assert.Equal(t, "POST", recorder.Header().Get("Allow"))
		assert.JSONEq(t, `{"error":"Method not allowed"}`, recorder.Body.String())
		assertChatHeaders(t, recorder)
	}
	assert.Equal(t, 0, chatService.calls)
}

func TestChat_MissingApiKey(t *testing.T) {
	chatService := &fakeChatService{reply: "unused"}
	controller := NewChatController(chatService, config.OpenAIConfig{}, testMaxBodyBytes)

	recorder := doChat(controller, http.MethodPost, `{"messages":[{"role":"user","content":"hi"}]}`)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"Missing OPENAI_API_KEY on server"}`, recorder.Body.String())
	assertChatHeaders(t, recorder)
	assert.Equal(t, 0, chatService.calls)
}

func TestChat_MalformedBody(t *testing.T) {
	chatService := &fakeChatService{reply: "unused"}
	controller := NewChatController(chatService, config.OpenAIConfig{ApiKey: "test-key"}, 32)

	for _, body := range []string{`{"messages":[`, `not json`, `{"messages":"` + strings.Repeat("x", 64) + `"}`} {
		recorder := doChat(controller, http.MethodPost, body)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code, body)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, recorder.Body.String())
		assertChatHeaders(t, recorder)
	}
	assert.Equal(t, 0, chatService.calls)
}

func TestChat_OddShapesDegradeToEmptyConversation(t *testing.T) {
	for _, body := range []string{``, `   `, `[]`, `"hello"`, `{}`, `{"messages":"hello"}`, `{"messages":[1,2,3]}`} {
		chatService := &fakeChatService{reply: "Ask me anything."}
		controller := NewChatController(chatService, config.OpenAIConfig{ApiKey: "test-key"}, testMaxBodyBytes)

		recorder := doChat(controller, http.MethodPost, body)

		assert.Equal(t, http.StatusOK, recorder.Code, body)
		assert.JSONEq(t, `{"reply":"Ask me anything."}`, recorder.Body.String())
		assert.Equal(t, 1, chatService.calls)
		assert.Empty(t, chatService.turns)
	}
}

func TestChat_PassesSanitizedTurns(t *testing.T) {
	chatService := &fakeChatService{reply: "Sure."}
	controller := NewChatController(chatService, config.OpenAIConfig{ApiKey: "test-key"}, testMaxBodyBytes)

	recorder := doChat(controller, http.MethodPost, `{"messages":[{"role":"system","content":"x"},{"role":"user","content":"  hi  "}]}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []view.ChatTurn{{Role: view.ChatRoleUser, Content: "hi"}}, chatService.turns)
}

func TestChat_ServiceErrorMessageIsReturned(t *testing.T) {
	chatService := &fakeChatService{err: &exception.UpstreamHTTPError{Status: http.StatusTooManyRequests, Body: "rate limited"}}
	controller := NewChatController(chatService, config.OpenAIConfig{ApiKey: "test-key"}, testMaxBodyBytes)

	recorder := doChat(controller, http.MethodPost, `{"messages":[]}`)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"OpenAI request failed (429): rate limited"}`, recorder.Body.String())
	assertChatHeaders(t, recorder)
}

func TestChat_HealthyUpstream(t *testing.T) {
	controller := newUpstreamChatController(t, "test-key", upstreamReplying(http.StatusOK,
		`{"output":[{"type":"message","role":"assistant","content":[{"type":"output_text","text":"I mostly use React, Node.js and Tailwind CSS."}]}]}`))

	recorder := doChat(controller, http.MethodPost, `{"messages":[{"role":"user","content":"What technologies do you use?"}]}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"reply":"I mostly use React, Node.js and Tailwind CSS."}`, recorder.Body.String())
	assertChatHeaders(t, recorder)
}

func TestChat_UpstreamServerError(t *testing.T) {
	controller := newUpstreamChatController(t, "test-key", upstreamReplying(http.StatusInternalServerError, `{"error":{"message":"boom"}}`))

	recorder := doChat(controller, http.MethodPost, `{"messages":[{"role":"user","content":"hi"}]}`)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "OpenAI request failed (500)")
	assertChatHeaders(t, recorder)
}

func TestChat_UpstreamEmptyReply(t *testing.T) {
	controller := newUpstreamChatController(t, "test-key", upstreamReplying(http.StatusOK, `{"output":[{"type":"reasoning","summary":[]}]}`))

	recorder := doChat(controller, http.MethodPost, `{"messages":[{"role":"user","content":"hi"}]}`)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"OpenAI returned an empty response."}`, recorder.Body.String())
}

func TestChat_UpstreamUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseUrl := server.URL + "/v1"
	server.Close()

	openAIConfig := config.OpenAIConfig{ApiKey: "test-key", Model: config.DefaultModel, BaseUrl: baseUrl, Timeout: time.Second}
	portfolio, err := content.Load("")
	require.NoError(t, err)
	chatService := service.NewChatService(openAIConfig, service.NewPortfolioContextService(portfolio), service.NewPromptBuilder())
	controller := NewChatController(chatService, openAIConfig, testMaxBodyBytes)

	recorder := doChat(controller, http.MethodPost, `{"messages":[]}`)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "OpenAI request failed")
}

func TestGetRawBodyParams(t *testing.T) {
	params, err := getRawBodyParams([]byte(`{"messages":[],"other":1}`))
	require.NoError(t, err)
	assert.Len(t, params, 2)

	params, err = getRawBodyParams([]byte(`null`))
	require.NoError(t, err)
	assert.Empty(t, params)

	_, err = getRawBodyParams([]byte(`{`))
	assert.True(t, errors.Is(err, errInvalidJson))
}
