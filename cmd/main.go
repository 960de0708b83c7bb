package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"detailwave.be/booking-api/internal/router"
	"detailwave.be/booking-api/pkg/cart"
	"detailwave.be/booking-api/pkg/config"
	"detailwave.be/booking-api/pkg/mailer"
)

func main() {
	// .env is a development convenience; deployed instances get real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load config")
	}

	if !cfg.IsProduction() {
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	switch cfg.StorageBackend {
	case config.BackendRedis:
		router.Carts = cart.NewRedisStore(cfg.RedisAddress, cfg.RedisPassword, cfg.CartTTL)
	default:
		router.Carts = cart.NewMemoryStore(cfg.CartTTL)
	}
	router.Mail = mailer.New(cfg.ResendAPIKey, cfg.BookingFrom, cfg.BookingTo)

	router.InitEngine(cfg)
	router.InitializeRoutes()

	zlog.Info().Str("port", cfg.Port).Str("storage", cfg.StorageBackend).Msg("server is running")

	if err := router.Router.Run(":" + cfg.Port); err != nil {
		zlog.Fatal().Err(err).Msg("failed to run server")
	}
}
