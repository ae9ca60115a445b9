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
	"fmt"

	"github.com/kennethstamaria/portfolio/portfolio-service/view"
)

const defaultOfflineReplyTemplate = "I can't answer right now (the chatbot is offline). You can email %s at %s."

type AssistantService interface {
	GetAssistantInfo() view.AssistantInfo
}

func NewAssistantService(portfolio *view.PortfolioContent) AssistantService {
	return &assistantServiceImpl{portfolio: portfolio}
}

type assistantServiceImpl struct {
	portfolio *view.PortfolioContent
}

func (a assistantServiceImpl) GetAssistantInfo() view.AssistantInfo {
	assistant := a.portfolio.Assistant
	offlineReply := assistant.OfflineReply
	if offlineReply == "" {
		offlineReply = fmt.Sprintf(defaultOfflineReplyTemplate, firstName(a.portfolio.Profile.Name), a.portfolio.Contact.Email)
	}
	return view.AssistantInfo{
		Heading:            assistant.Heading,
		Description:        assistant.Description,
		Greeting:           assistant.Greeting,
		SuggestedQuestions: copyStrings(assistant.SuggestedQuestions),
		OfflineReply:       offlineReply,
	}
}
