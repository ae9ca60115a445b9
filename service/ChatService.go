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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kennethstamaria/portfolio/portfolio-service/client"
	"github.com/kennethstamaria/portfolio/portfolio-service/config"
	"github.com/kennethstamaria/portfolio/portfolio-service/exception"
	"github.com/kennethstamaria/portfolio/portfolio-service/logger"
	"github.com/kennethstamaria/portfolio/portfolio-service/metrics"
	"github.com/kennethstamaria/portfolio/portfolio-service/utils"
	"github.com/kennethstamaria/portfolio/portfolio-service/view"
	"github.com/openai/openai-go/v3"
	log "github.com/sirupsen/logrus"
)

const (
	responsesPath          = "responses"
	replyTemperature       = 0.2
	replyMaxOutputTokens   = 320
	toolChoiceNone         = "none"
	upstreamErrorBodyLimit = 4096
	slowReplyThreshold     = 10 * time.Second
)

type ChatService interface {
	Reply(ctx context.Context, turns []view.ChatTurn) (string, error)
}

func NewChatService(openAIConfig config.OpenAIConfig, contextService PortfolioContextService, promptBuilder PromptBuilder) ChatService {
	return &chatServiceImpl{
		openAIClient:   client.NewOpenAIClient(openAIConfig.ApiKey, openAIConfig.BaseUrl, client.NewHttpClient(openAIConfig.Timeout)),
		model:          openAIConfig.Model,
		contextService: contextService,
		promptBuilder:  promptBuilder,
	}
}

type chatServiceImpl struct {
	openAIClient   openai.Client
	model          string
	contextService PortfolioContextService
	promptBuilder  PromptBuilder
}

type responsesRequest struct {
	Model           string                  `json:"model"`
	Input           []responsesInputMessage `json:"input"`
	ToolChoice      string                  `json:"tool_choice"`
	Temperature     float64                 `json:"temperature"`
	MaxOutputTokens int                     `json:"max_output_tokens"`
}

// MarshalJSON makes the request usable as a raw body for the generic client methods.
func (r responsesRequest) MarshalJSON() ([]byte, error) {
	type plain responsesRequest
	return json.Marshal(plain(r))
}

type responsesInputMessage struct {
	Type    string                 `json:"type"`
	Role    string                 `json:"role"`
	Content []responsesContentPart `json:"content"`
}

type responsesContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type responsesEnvelope struct {
	Output json.RawMessage `json:"output"`
	Error  json.RawMessage `json:"error"`
}

type responsesOutputItem struct {
	Type    string          `json:"type"`
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

type responsesOutputPart struct {
	Type    string          `json:"type"`
	Text    json.RawMessage `json:"text"`
	Refusal json.RawMessage `json:"refusal"`
}

func (c *chatServiceImpl) Reply(ctx context.Context, turns []view.ChatTurn) (string, error) {
	prompt, err := c.promptBuilder.Build(c.contextService.GetContext())
	if err != nil {
		return "", err
	}
	logger.Debugf(ctx, "Developer prompt fingerprint: %s", c.promptBuilder.Fingerprint(prompt))

	request := makeResponsesRequest(c.model, prompt, turns)

	var body json.RawMessage
	start := time.Now()
	err = c.openAIClient.Post(ctx, responsesPath, request, &body)
	elapsed := time.Since(start)
	metrics.OpenAIRequestDuration.Observe(elapsed.Seconds())
	utils.PerfLog(elapsed, slowReplyThreshold, "OpenAI responses call")
	if err != nil {
		return "", c.handleRequestError(ctx, err)
	}

	reply, err := extractReply(body)
	if err != nil {
		var logicalErr *exception.UpstreamLogicalError
		if errors.As(err, &logicalErr) {
			metrics.ChatRepliesTotal.WithLabelValues(metrics.OutcomeUpstreamLogical).Inc()
			logger.Errorf(ctx, "OpenAI returned an error object: %s", logicalErr.Detail)
		} else {
			metrics.ChatRepliesTotal.WithLabelValues(metrics.OutcomeEmptyReply).Inc()
			logger.Warnf(ctx, "OpenAI response contained no text")
		}
		return "", err
	}

	metrics.ChatRepliesTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	logger.Debugf(ctx, "OpenAI reply received. Reply length: %d", len(reply))
	return reply, nil
}

func makeResponsesRequest(model string, prompt string, turns []view.ChatTurn) responsesRequest {
	input := make([]responsesInputMessage, 0, len(turns)+1)
	input = append(input, responsesInputMessage{
		Type:    "message",
		Role:    "developer",
		Content: []responsesContentPart{{Type: "input_text", Text: prompt}},
	})
	for _, turn := range turns {
		partType := "input_text"
		if turn.Role == view.ChatRoleAssistant {
			partType = "output_text"
		}
		input = append(input, responsesInputMessage{
			Type:    "message",
			Role:    turn.Role,
			Content: []responsesContentPart{{Type: partType, Text: turn.Content}},
		})
	}
	return responsesRequest{
		Model:           model,
		Input:           input,
		ToolChoice:      toolChoiceNone,
		Temperature:     replyTemperature,
		MaxOutputTokens: replyMaxOutputTokens,
	}
}

func (c *chatServiceImpl) handleRequestError(ctx context.Context, err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		metrics.ChatRepliesTotal.WithLabelValues(metrics.OutcomeUpstreamHttp).Inc()
		log.WithFields(log.Fields{
			"request_id":    logger.RequestId(ctx),
			"error_type":    apiErr.Type,
			"error_code":    apiErr.Code,
			"error_message": apiErr.Message,
			"status_code":   apiErr.StatusCode,
		}).Errorf("OpenAI API error: status %d - %s", apiErr.StatusCode, apiErr.Message)
		return &exception.UpstreamHTTPError{
			Status: apiErr.StatusCode,
			Body:   readErrorBody(apiErr),
		}
	}
	metrics.ChatRepliesTotal.WithLabelValues(metrics.OutcomeTransport).Inc()
	logger.Errorf(ctx, "OpenAI request failed: %v", err)
	return fmt.Errorf("OpenAI request failed: %w", err)
}

func readErrorBody(apiErr *openai.Error) string {
	if apiErr.Response != nil && apiErr.Response.Body != nil {
		data, err := io.ReadAll(io.LimitReader(apiErr.Response.Body, upstreamErrorBodyLimit))
		if err == nil && len(data) > 0 {
			return string(data)
		}
	}
	return apiErr.RawJSON()
}

// extractReply walks output items and their content parts. Only message items
// from the assistant contribute, text and refusal parts are joined with newlines
// and every other part type is ignored.
func extractReply(body json.RawMessage) (string, error) {
	var envelope responsesEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", &exception.UpstreamLogicalError{Detail: fmt.Sprintf("undecodable response: %v", err)}
	}
	if isTruthy(envelope.Error) {
		return "", &exception.UpstreamLogicalError{Detail: string(envelope.Error)}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(envelope.Output, &items); err != nil {
		return "", &exception.EmptyReplyError{}
	}

	var texts []string
	for _, rawItem := range items {
		var item responsesOutputItem
		if err := json.Unmarshal(rawItem, &item); err != nil {
			continue
		}
		if item.Type != "message" || (item.Role != "" && item.Role != view.ChatRoleAssistant) {
			continue
		}
		var parts []json.RawMessage
		if err := json.Unmarshal(item.Content, &parts); err != nil {
			continue
		}
		for _, rawPart := range parts {
			var part responsesOutputPart
			if err := json.Unmarshal(rawPart, &part); err != nil {
				continue
			}
			var value json.RawMessage
			switch part.Type {
			case "output_text":
				value = part.Text
			case "refusal":
				value = part.Refusal
			}
			if text, ok := jsonString(value); ok {
				texts = append(texts, text)
			}
		}
	}

	reply := strings.TrimSpace(strings.Join(texts, "\n"))
	if reply == "" {
		return "", &exception.EmptyReplyError{}
	}
	return reply, nil
}

// jsonString reports whether raw holds a JSON string and returns its value.
func jsonString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	return value, true
}

// isTruthy treats a missing value, null, false, "" and numeric zero as unset.
func isTruthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	switch string(raw) {
	case "", "null", "false", `""`:
		return false
	}
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return number != 0
	}
	return true
}
