package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gitlab.com/tomas.hradek/address-book/internal/auth"
	"gitlab.com/tomas.hradek/address-book/internal/config"
	"gitlab.com/tomas.hradek/address-book/internal/service"
	"gitlab.com/tomas.hradek/address-book/internal/store"
)

// Usage example on the command line:
// > PORT=8080 DBHOST=localhost:3306 DBUSER=tomas DBPWD=changeit JWT_SECRET=hunter2 GIN_MODE=release GIN_LOGGING=off go run main.go
func main() {
	setupLogging()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}
	sqlDB, err := store.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection")
	}
	s, err := store.New(sqlDB)
	if err != nil {
		log.Fatal().Err(err).Msg("statement preparation")
	}
	guard := auth.NewManager(cfg.JWTSecret)
	router := service.SetupHttpRouter(s, guard)
	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// setupLogging configures the global zerolog logger. The development
// environment gets a human-readable console writer.
func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("APP_ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
