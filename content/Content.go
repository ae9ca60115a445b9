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

package content

import (
	"bytes"
	_ "embed"
	"os"

	"github.com/kennethstamaria/portfolio/portfolio-service/utils"
	"github.com/kennethstamaria/portfolio/portfolio-service/view"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const embeddedSource = "embedded portfolio.yaml"

//go:embed portfolio.yaml
var embeddedPortfolio []byte

// Load reads portfolio content from file, or the embedded copy when file is empty.
func Load(file string) (*view.PortfolioContent, error) {
	if file == "" {
		return Parse(embeddedPortfolio, embeddedSource)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read portfolio content from %s", file)
	}
	return Parse(data, file)
}

// Parse decodes and validates portfolio content. Unknown keys are rejected.
func Parse(data []byte, source string) (*view.PortfolioContent, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var portfolio view.PortfolioContent
	if err := decoder.Decode(&portfolio); err != nil {
		return nil, errors.Wrapf(err, "failed to parse portfolio content from %s", source)
	}
	if err := utils.ValidateObject(portfolio); err != nil {
		return nil, errors.Wrapf(err, "invalid portfolio content in %s", source)
	}
	if err := checkSkillIds(portfolio.Skills); err != nil {
		return nil, errors.Wrapf(err, "invalid portfolio content in %s", source)
	}

	log.Debugf("Portfolio content loaded from %s: %d projects, %d reviews", source, len(portfolio.Projects), len(portfolio.Reviews))
	return &portfolio, nil
}

func checkSkillIds(skills view.SkillsSection) error {
	seen := make(map[string]string)
	for _, category := range skills.Categories {
		for _, skill := range category.Items {
			if previous, exists := seen[skill.Id]; exists {
				return errors.Errorf("skill id %q is used in both %q and %q", skill.Id, previous, category.Title)
			}
			seen[skill.Id] = category.Title
		}
	}
	return nil
}
