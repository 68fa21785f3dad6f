package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "auth_service", cfg.DB.DBName)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, 24, cfg.JWT.ExpirationHours)
	assert.NotEmpty(t, cfg.JWT.SigningKey)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1*time.Hour, cfg.DB.ConnMaxLifetime)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_SIGNING_KEY", "supersecret")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("DB_LOG_LEVEL", "silent")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "5433", cfg.DB.Port)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "supersecret", cfg.JWT.SigningKey)
	assert.Equal(t, 2, cfg.JWT.ExpirationHours)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, gormlogger.Silent, cfg.DB.LogLevel)
}

func TestGetDSN(t *testing.T) {
	db := DBConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "password",
		DBName:   "auth_service",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=password dbname=auth_service sslmode=disable",
		db.GetDSN())
}
