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

package view

// PortfolioContent is the static site content loaded once at startup.
type PortfolioContent struct {
	Profile   Profile       `yaml:"profile"`
	Skills    SkillsSection `yaml:"skills"`
	Projects  []Project     `yaml:"projects" validate:"required,min=1,unique=Id,dive"`
	Reviews   []Review      `yaml:"reviews" validate:"unique=Id,dive"`
	Contact   Contact       `yaml:"contact"`
	Assistant AssistantCopy `yaml:"assistant"`
}

type Profile struct {
	Name       string            `yaml:"name" validate:"required"`
	Title      string            `yaml:"title" validate:"required"`
	Tagline    string            `yaml:"tagline"`
	ShortBio   string            `yaml:"shortBio"`
	Bio        []string          `yaml:"bio" validate:"required,min=1,dive,required"`
	Highlights []string          `yaml:"highlights" validate:"dive,required"`
	Socials    []Link            `yaml:"socials" validate:"dive"`
	Extra      map[string]string `yaml:"extra"`
}

type Link struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	Href  string `yaml:"href" json:"href" validate:"required"`
}

type SkillsSection struct {
	Heading     string          `yaml:"heading"`
	Description string          `yaml:"description"`
	Categories  []SkillCategory `yaml:"categories" validate:"required,min=1,dive"`
}

type SkillCategory struct {
	Title string  `yaml:"title" validate:"required"`
	Items []Skill `yaml:"items" validate:"required,min=1,dive"`
}

type Skill struct {
	Id    string `yaml:"id" validate:"required"`
	Name  string `yaml:"name" validate:"required"`
	Level int    `yaml:"level" validate:"min=0,max=100"`
}

type Project struct {
	Id               string   `yaml:"id" validate:"required"`
	Title            string   `yaml:"title" validate:"required"`
	Category         string   `yaml:"category"`
	Date             string   `yaml:"date"`
	Role             string   `yaml:"role"`
	ShortDescription string   `yaml:"shortDescription" validate:"required"`
	FullDescription  string   `yaml:"fullDescription"`
	Tags             []string `yaml:"tags"`
	TechStack        []string `yaml:"techStack" validate:"dive,required"`
	Links            []Link   `yaml:"links" validate:"dive"`
	Highlights       []string `yaml:"highlights"`
	Challenges       []string `yaml:"challenges"`
	Outcomes         []string `yaml:"outcomes"`
}

type Review struct {
	Id      string   `yaml:"id" validate:"required"`
	Name    string   `yaml:"name" validate:"required"`
	Title   string   `yaml:"title"`
	Company string   `yaml:"company"`
	Quote   []string `yaml:"quote" validate:"required,min=1,dive,required"`
}

type Contact struct {
	Email        string `yaml:"email" validate:"required,email"`
	Heading      string `yaml:"heading"`
	Description  string `yaml:"description"`
	Availability string `yaml:"availability"`
	Links        []Link `yaml:"links" validate:"dive"`
}

type AssistantCopy struct {
	Heading            string                `yaml:"heading" validate:"required"`
	Description        string                `yaml:"description"`
	Greeting           string                `yaml:"greeting" validate:"required"`
	SuggestedQuestions []string              `yaml:"suggestedQuestions" validate:"max=8,dive,required"`
	ExtraContext       AssistantExtraContext `yaml:"extraContext"`
	OfflineReply       string                `yaml:"offlineReply"`
}

type AssistantExtraContext struct {
	Focus []string `yaml:"focus"`
	Notes []string `yaml:"notes"`
}

// PortfolioContext is the grounding snapshot embedded into the developer prompt.
// Field order defines the order of keys in the serialized prompt.
type PortfolioContext struct {
	Profile  ContextProfile   `json:"profile"`
	Skills   ContextSkills    `json:"skills"`
	Projects []ContextProject `json:"projects"`
	Reviews  []ContextReview  `json:"reviews"`
	Contact  ContextContact   `json:"contact"`
	Extra    ContextExtra     `json:"extra"`
}

type ContextProfile struct {
	Name       string            `json:"name"`
	Title      string            `json:"title"`
	Tagline    string            `json:"tagline,omitempty"`
	ShortBio   string            `json:"shortBio,omitempty"`
	Bio        []string          `json:"bio"`
	Highlights []string          `json:"highlights"`
	Socials    []Link            `json:"socials"`
	Details    map[string]string `json:"details,omitempty"`
}

type ContextSkills struct {
	Heading     string         `json:"heading,omitempty"`
	Description string         `json:"description,omitempty"`
	Items       []ContextSkill `json:"items"`
}

type ContextSkill struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
}

type ContextProject struct {
	Id         string   `json:"id"`
	Title      string   `json:"title"`
	Category   string   `json:"category,omitempty"`
	Date       string   `json:"date,omitempty"`
	Role       string   `json:"role,omitempty"`
	Summary    string   `json:"summary"`
	Details    string   `json:"details,omitempty"`
	TechStack  []string `json:"techStack"`
	Highlights []string `json:"highlights"`
	Outcomes   []string `json:"outcomes,omitempty"`
	Links      []Link   `json:"links"`
}

type ContextReview struct {
	Id          string   `json:"id"`
	Attribution string   `json:"attribution"`
	Quote       []string `json:"quote"`
}

type ContextContact struct {
	Heading      string `json:"heading,omitempty"`
	Email        string `json:"email"`
	Description  string `json:"description,omitempty"`
	Availability string `json:"availability,omitempty"`
	Links        []Link `json:"links"`
}

type ContextExtra struct {
	Focus []string `json:"focus"`
	Notes []string `json:"notes"`
}
