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

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/kennethstamaria/portfolio/portfolio-service/config"
	"github.com/kennethstamaria/portfolio/portfolio-service/content"
	"github.com/kennethstamaria/portfolio/portfolio-service/controller"
	"github.com/kennethstamaria/portfolio/portfolio-service/logger"
	"github.com/kennethstamaria/portfolio/portfolio-service/metrics"
	"github.com/kennethstamaria/portfolio/portfolio-service/router"
	"github.com/kennethstamaria/portfolio/portfolio-service/service"
	"github.com/kennethstamaria/portfolio/portfolio-service/utils"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		log.Errorf("Service stopped with error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logCloser := logger.Init(cfg.Logging)
	defer logCloser.Close()
	utils.PrintConfig(cfg)

	if cfg.OpenAI.ApiKey == "" {
		log.Warn("OPENAI_API_KEY is not set, chat requests will be rejected")
	}

	portfolio, err := content.Load(cfg.Content.File)
	if err != nil {
		return err
	}

	metrics.RegisterAllPrometheusApplicationMetrics()

	contextService := service.NewPortfolioContextService(portfolio)
	promptBuilder := service.NewPromptBuilder()
	chatService := service.NewChatService(cfg.OpenAI, contextService, promptBuilder)
	assistantService := service.NewAssistantService(portfolio)

	readyChan := make(chan bool, 1)
	controllers := router.Controllers{
		Chat:      controller.NewChatController(chatService, cfg.OpenAI, cfg.Server.MaxBodyBytes),
		Assistant: controller.NewAssistantController(assistantService),
		Health:    controller.NewHealthController(readyChan),
	}
	if staticDir := cfg.Server.StaticDir; staticDir != "" {
		if info, err := os.Stat(staticDir); err != nil || !info.IsDir() {
			log.Warnf("Static directory %s is not available, SPA will not be served", staticDir)
		} else {
			controllers.Static = controller.NewStaticController(staticDir)
		}
	}

	accessLog := log.StandardLogger().WriterLevel(log.DebugLevel)
	defer accessLog.Close()

	server := &http.Server{
		Addr:              cfg.Server.ListenAddress,
		Handler:           handlers.CombinedLoggingHandler(accessLog, router.NewRouter(controllers)),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.OpenAI.Timeout + 10*time.Second,
	}

	listener, err := net.Listen("tcp", cfg.Server.ListenAddress)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return utils.SafeSync(func() error {
			log.Infof("Portfolio service is listening on %s", listener.Addr())
			if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	})
	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("Shutting down portfolio service")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	readyChan <- true
	return group.Wait()
}
