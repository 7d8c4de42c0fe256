package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application settings loaded from environment variables.
// A .env file in the working directory is honored if present.
type Config struct {
	Port    string `envconfig:"PORT" default:"5000"`
	DBDSN   string `envconfig:"DB_DSN" default:"sistema.db"` // sqlite file in project root
	LogFile string `envconfig:"LOG_FILE" default:""`

	// Chat messages older than this many hours are pruned on room load.
	RetentionHours int `envconfig:"RETENTION_HOURS" default:"24"`

	// AllowNegativeStock lets admins reset the counter below zero
	// (back-order style accounting). Off by default.
	AllowNegativeStock bool `envconfig:"ALLOW_NEGATIVE_STOCK" default:"false"`

	// AllowAnonChat lets sessionless websocket clients post as "Anônimo".
	// Off by default so the realtime path matches the page gate.
	AllowAnonChat bool `envconfig:"ALLOW_ANON_CHAT" default:"false"`
}

func Load() Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("[config] %v", err)
	}
	log.Printf("[config] PORT=%s DB_DSN=%s RETENTION_HOURS=%d ALLOW_NEGATIVE_STOCK=%v ALLOW_ANON_CHAT=%v",
		cfg.Port, cfg.DBDSN, cfg.RetentionHours, cfg.AllowNegativeStock, cfg.AllowAnonChat)
	return cfg
}
