package main

import (
	_ "proposal_desk/docs"
	"proposal_desk/internal/adapter/http/routes"
	"proposal_desk/internal/config"
	"proposal_desk/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Proposal Desk API
// @version         1.0
// @description     Multi-currency quote pricing, versioned proposals and dashboard metrics backed by DynamoDB.

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:  cfg.LogConfig.LogLevel,
		Pretty: cfg.LogConfig.LogPretty,
	})
	log.Info().Str("log_level", cfg.LogConfig.LogLevel).Msg("Starting proposal desk")

	routes.Run(cfg, log)
}
