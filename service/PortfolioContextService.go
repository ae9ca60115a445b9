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
	"strings"

	"github.com/kennethstamaria/portfolio/portfolio-service/view"
)

type PortfolioContextService interface {
	GetContext() view.PortfolioContext
}

func NewPortfolioContextService(portfolio *view.PortfolioContent) PortfolioContextService {
	return &portfolioContextServiceImpl{portfolio: portfolio}
}

type portfolioContextServiceImpl struct {
	portfolio *view.PortfolioContent
}

// GetContext builds a new snapshot on every call, nothing in it aliases the loaded content.
func (p portfolioContextServiceImpl) GetContext() view.PortfolioContext {
	portfolio := p.portfolio
	return view.PortfolioContext{
		Profile: view.ContextProfile{
			Name:       portfolio.Profile.Name,
			Title:      portfolio.Profile.Title,
			Tagline:    portfolio.Profile.Tagline,
			ShortBio:   portfolio.Profile.ShortBio,
			Bio:        copyStrings(portfolio.Profile.Bio),
			Highlights: copyStrings(portfolio.Profile.Highlights),
			Socials:    copyLinks(portfolio.Profile.Socials),
			Details:    copyDetails(portfolio.Profile.Extra),
		},
		Skills:   makeContextSkills(portfolio.Skills),
		Projects: makeContextProjects(portfolio.Projects),
		Reviews:  makeContextReviews(portfolio.Reviews),
		Contact: view.ContextContact{
			Heading:      portfolio.Contact.Heading,
			Email:        portfolio.Contact.Email,
			Description:  portfolio.Contact.Description,
			Availability: portfolio.Contact.Availability,
			Links:        copyLinks(portfolio.Contact.Links),
		},
		Extra: view.ContextExtra{
			Focus: copyStrings(portfolio.Assistant.ExtraContext.Focus),
			Notes: copyStrings(portfolio.Assistant.ExtraContext.Notes),
		},
	}
}

func makeContextSkills(skills view.SkillsSection) view.ContextSkills {
	items := make([]view.ContextSkill, 0)
	for _, category := range skills.Categories {
		for _, skill := range category.Items {
			items = append(items, view.ContextSkill{
				Id:       skill.Id,
				Name:     skill.Name,
				Category: category.Title,
				Level:    skill.Level,
			})
		}
	}
	return view.ContextSkills{
		Heading:     skills.Heading,
		Description: skills.Description,
		Items:       items,
	}
}

func makeContextProjects(projects []view.Project) []view.ContextProject {
	result := make([]view.ContextProject, 0, len(projects))
	for _, project := range projects {
		result = append(result, view.ContextProject{
			Id:         project.Id,
			Title:      project.Title,
			Category:   project.Category,
			Date:       project.Date,
			Role:       project.Role,
			Summary:    project.ShortDescription,
			Details:    project.FullDescription,
			TechStack:  copyStrings(project.TechStack),
			Highlights: copyStrings(project.Highlights),
			Outcomes:   copyOptionalStrings(project.Outcomes),
			Links:      copyLinks(project.Links),
		})
	}
	return result
}

func makeContextReviews(reviews []view.Review) []view.ContextReview {
	result := make([]view.ContextReview, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, view.ContextReview{
			Id:          review.Id,
			Attribution: makeAttribution(review),
			Quote:       copyStrings(review.Quote),
		})
	}
	return result
}

func makeAttribution(review view.Review) string {
	var role []string
	if review.Title != "" {
		role = append(role, review.Title)
	}
	if review.Company != "" {
		role = append(role, review.Company)
	}
	if len(role) == 0 {
		return review.Name
	}
	return fmt.Sprintf("%s, %s", review.Name, strings.Join(role, " at "))
}

func copyStrings(values []string) []string {
	result := make([]string, len(values))
	copy(result, values)
	return result
}

func copyOptionalStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return copyStrings(values)
}

func copyLinks(links []view.Link) []view.Link {
	result := make([]view.Link, len(links))
	copy(result, links)
	return result
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	result := make(map[string]string, len(details))
	for k, v := range details {
		result[k] = v
	}
	return result
}
