package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/finsmart/finsmart/config"
	"github.com/finsmart/finsmart/internal/application"
	"github.com/finsmart/finsmart/pkg/helpers"
	"github.com/finsmart/finsmart/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logger.WithField("details", validation.ToDetails(err)).Fatal("invalid config")
	}

	if !cfg.DemoEnabled {
		logger.Info("demo disabled, nothing to do")
		return
	}

	demo := application.NewDemoService(os.Stdout, logger)
	if _, err := demo.Run(); err != nil {
		logger.Fatalf("demo failed: %v", err)
	}
}
