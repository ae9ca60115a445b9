package config

import "time"

type Config struct {
	Server  ServerConfig
	OpenAI  OpenAIConfig
	Content ContentConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	ListenAddress   string `validate:"required"`
	StaticDir       string
	MaxBodyBytes    int64         `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

type OpenAIConfig struct {
	ApiKey  string        `sensitive:"true"`
	Model   string        `validate:"required"`
	BaseUrl string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

type ContentConfig struct {
	File string
}

type LoggingConfig struct {
	Level      string `validate:"required"`
	File       string
	MaxSizeMb  int `validate:"gt=0"`
	MaxBackups int `validate:"gte=0"`
	MaxAgeDays int `validate:"gte=0"`
}
