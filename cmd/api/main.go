package main

import (
	"context"
	"fmt"

	"shadergen-srv/config"
	configPostgre "shadergen-srv/config/postgre"
	configRedis "shadergen-srv/config/redis"
	"shadergen-srv/internal/httpserver"
	"shadergen-srv/internal/shader"
	"shadergen-srv/pkg/discord"
	"shadergen-srv/pkg/gemini"
	"shadergen-srv/pkg/log"
)

// @title       Shader Generation Service API
// @description Generate WebGL shader programs from natural-language prompts.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize Gemini client
	// A missing API key aborts startup here; it is never a per-request error.
	apiKey, err := cfg.MustGeminiAPIKey()
	if err != nil {
		logger.Fatalf(ctx, "Failed to read Gemini API key: %v", err)
		return
	}
	geminiClient, err := gemini.NewGemini(gemini.GeminiConfig{
		APIKey:            apiKey,
		Model:             cfg.Gemini.Model,
		SystemInstruction: shader.SystemInstruction,
		ResponseSchema:    shader.ResponseSchema(),
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Gemini client: %v", err)
		return
	}
	logger.Infof(ctx, "Gemini client initialized with model: %s", cfg.Gemini.Model)

	// 4. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Redis (optional - the shader library runs uncached without it)
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Warnf(ctx, "Redis not available, library cache disabled: %v", err)
		redisClient = nil
	} else {
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
		defer configRedis.Disconnect()
	}

	// 6. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 7. Initialize HTTP server
	serverCfg := httpserver.ConfigFromApp(cfg)
	serverCfg.Gemini = geminiClient
	serverCfg.PostgresDB = postgresDB
	serverCfg.RedisClient = redisClient
	serverCfg.Discord = discordClient

	httpServer, err := httpserver.New(logger, serverCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
