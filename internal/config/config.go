package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from its environment.
type Config struct {
	Port      string
	JWTSecret string
	Database  DatabaseConfig
}

// DatabaseConfig describes the MySQL connection.
type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
}

// DSN renders the data source name for the configured database.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", d.User, d.Password, d.Host, d.Name)
}

// Load reads the service configuration from environment variables. A .env
// file in the working directory is honored when present.
//
// Usage example on the command line:
// > PORT=8080 DBHOST=localhost:3306 DBUSER=tomas DBPWD=changeit JWT_SECRET=hunter2 go run main.go
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Database:  LoadDatabase(),
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	return cfg, nil
}

// LoadDatabase reads only the database part of the configuration. The
// migration tool uses it directly because it has no need for a signing
// secret or a listen port.
func LoadDatabase() DatabaseConfig {
	_ = godotenv.Load()

	return DatabaseConfig{
		Host:     getEnv("DBHOST", "localhost:3306"),
		User:     getEnv("DBUSER", "root"),
		Password: os.Getenv("DBPWD"),
		Name:     getEnv("DBNAME", "addressbook"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
