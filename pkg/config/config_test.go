package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwise-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 7*24*60, cfg.JWT.Expiration)
	assert.NotEmpty(t, cfg.JWT.Secret, "en development se usa un secret de desarrollo")
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CLIENT_ORIGIN", "https://stock.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "super-secret", cfg.JWT.Secret)
	assert.Equal(t, "https://stock.example.com", cfg.HTTP.ClientOrigin)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_ProduccionSinSecret_RetornaError(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "inventory_db", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/inventory_db?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://u:p@h:1/x"
	assert.Equal(t, "postgres://u:p@h:1/x", c.ConnectionString())
}

func TestLoad_PoolDeConexiones(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_MAX_CONNS", "10")
	t.Setenv("DB_MIN_CONNS", "4")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, 4, cfg.DB.MinConns)

	t.Setenv("DB_MIN_CONNS", "20")
	_, err = config.Load()
	assert.Error(t, err, "min mayor que max")
}

func TestLoad_ClientOriginComodin_RetornaError(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("CLIENT_ORIGIN", "*")

	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("CLIENT_ORIGIN", "https://stock.example.com, *")
	_, err = config.Load()
	assert.Error(t, err)
}
