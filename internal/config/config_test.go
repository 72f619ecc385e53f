package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDSN checks the rendering of the MySQL data source name.
func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.example.com:3306",
		User:     "tomas",
		Password: "changeit",
		Name:     "addressbook",
	}
	assert.Equal(t, "tomas:changeit@tcp(db.example.com:3306)/addressbook?parseTime=true", cfg.DSN())
}

// TestLoadRequiresSecret checks that the service refuses to start without a
// token signing secret.
func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)
}

// TestLoadDefaults checks the fallback values for an otherwise empty
// environment.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "hunter2")
	t.Setenv("PORT", "")
	t.Setenv("DBHOST", "")
	t.Setenv("DBUSER", "")
	t.Setenv("DBNAME", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost:3306", cfg.Database.Host)
	assert.Equal(t, "root", cfg.Database.User)
	assert.Equal(t, "addressbook", cfg.Database.Name)
}
