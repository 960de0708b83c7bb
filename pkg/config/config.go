package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"detailwave.be/booking-api/pkg/global"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config carries everything the server reads from the environment.
// RESEND_API_KEY and BOOKING_TO have no sensible defaults: without them no
// booking can ever be delivered, so startup fails instead.
type Config struct {
	Port string
	Env  string

	ResendAPIKey string `validate:"required"`
	BookingFrom  string `validate:"required,email"`
	BookingTo    string `validate:"required,email"`

	StorageBackend string `validate:"oneof=memory redis"`
	RedisAddress   string
	RedisPassword  string
	CartTTL        time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:           global.GetEnvOrDefault("PORT", "8000"),
		Env:            global.GetEnvOrDefault("ENV", "development"),
		ResendAPIKey:   global.GetEnvOrDefault("RESEND_API_KEY", ""),
		BookingFrom:    global.GetEnvOrDefault("BOOKING_FROM", "onboarding@resend.dev"),
		BookingTo:      global.GetEnvOrDefault("BOOKING_TO", ""),
		StorageBackend: global.GetEnvOrDefault("STORAGE_BACKEND", BackendMemory),
		RedisAddress:   global.GetEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword:  global.GetEnvOrDefault("REDIS_PASSWORD", ""),
	}

	ttlMinutes, err := strconv.Atoi(global.GetEnvOrDefault("CART_TTL_MINUTES", "60"))
	if err != nil || ttlMinutes <= 0 {
		return nil, fmt.Errorf("invalid CART_TTL_MINUTES: must be a positive integer")
	}
	cfg.CartTTL = time.Duration(ttlMinutes) * time.Minute

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
