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

package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kennethstamaria/portfolio/portfolio-service/utils"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	CONFIG_FILE      = "CONFIG_FILE"
	OPENAI_API_KEY   = "OPENAI_API_KEY"
	OPENAI_MODEL     = "OPENAI_MODEL"
	OPENAI_BASE_URL  = "OPENAI_BASE_URL"
	OPENAI_TIMEOUT   = "OPENAI_TIMEOUT"
	LISTEN_ADDRESS   = "LISTEN_ADDRESS"
	STATIC_DIR       = "STATIC_DIR"
	CONTENT_FILE     = "CONTENT_FILE"
	MAX_BODY_BYTES   = "MAX_BODY_BYTES"
	SHUTDOWN_TIMEOUT = "SHUTDOWN_TIMEOUT"
	LOG_LEVEL        = "LOG_LEVEL"
	LOG_FILE         = "LOG_FILE"
	LOG_MAX_SIZE_MB  = "LOG_MAX_SIZE_MB"
	LOG_MAX_BACKUPS  = "LOG_MAX_BACKUPS"
	LOG_MAX_AGE_DAYS = "LOG_MAX_AGE_DAYS"
)

const DefaultModel = "gpt-4.1-mini"

// LoadEnvFiles populates the process environment from .env style files.
// Variables that are already set are left untouched, missing files are skipped.
func LoadEnvFiles(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			log.Debugf("env file %s was not loaded: %v", file, err)
		}
	}
}

// Load resolves configuration from defaults, the optional CONFIG_FILE and the environment.
// Environment variables take precedence over the file.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if file := strings.TrimSpace(v.GetString(CONFIG_FILE)); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			ListenAddress:   v.GetString(LISTEN_ADDRESS),
			StaticDir:       v.GetString(STATIC_DIR),
			MaxBodyBytes:    v.GetInt64(MAX_BODY_BYTES),
			ShutdownTimeout: v.GetDuration(SHUTDOWN_TIMEOUT),
		},
		OpenAI: OpenAIConfig{
			ApiKey:  strings.TrimSpace(v.GetString(OPENAI_API_KEY)),
			Model:   strings.TrimSpace(v.GetString(OPENAI_MODEL)),
			BaseUrl: strings.TrimSpace(v.GetString(OPENAI_BASE_URL)),
			Timeout: v.GetDuration(OPENAI_TIMEOUT),
		},
		Content: ContentConfig{
			File: v.GetString(CONTENT_FILE),
		},
		Logging: LoggingConfig{
			Level:      v.GetString(LOG_LEVEL),
			File:       v.GetString(LOG_FILE),
			MaxSizeMb:  v.GetInt(LOG_MAX_SIZE_MB),
			MaxBackups: v.GetInt(LOG_MAX_BACKUPS),
			MaxAgeDays: v.GetInt(LOG_MAX_AGE_DAYS),
		},
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = DefaultModel
	}

	if err := utils.ValidateObject(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(OPENAI_MODEL, DefaultModel)
	v.SetDefault(OPENAI_BASE_URL, "https://api.openai.com/v1")
	v.SetDefault(OPENAI_TIMEOUT, "60s")
	v.SetDefault(LISTEN_ADDRESS, ":8080")
	v.SetDefault(MAX_BODY_BYTES, 64*1024)
	v.SetDefault(SHUTDOWN_TIMEOUT, "10s")
	v.SetDefault(LOG_LEVEL, "INFO")
	v.SetDefault(LOG_MAX_SIZE_MB, 50)
	v.SetDefault(LOG_MAX_BACKUPS, 5)
	v.SetDefault(LOG_MAX_AGE_DAYS, 14)
}
