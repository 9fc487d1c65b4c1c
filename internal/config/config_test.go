package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.SeedFixtures)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.ConnectionString)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.Equal(t, 1, cfg.Database.MaxIdleConns)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 50.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
	assert.Equal(t, ":8081", cfg.Address())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_CONNECTION_STRING", "/var/lib/commission/app.db")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("SEED_FIXTURES", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/var/lib/commission/app.db", cfg.Database.ConnectionString)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.True(t, cfg.SeedFixtures)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment: EnvDevelopment,
			Port:        "8081",
			Database:    DatabaseConfig{ConnectionString: "x.db", MaxOpenConns: 1, MaxIdleConns: 1},
			Server:      ServerConfig{ShutdownTimeout: time.Second},
			RateLimit:   RateLimitConfig{RequestsPerSecond: 10, Burst: 20},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown environment", func(c *Config) { c.Environment = "staging" }, "invalid ENVIRONMENT"},
		{"port not a number", func(c *Config) { c.Port = "http" }, "invalid PORT"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "invalid PORT"},
		{"empty database", func(c *Config) { c.Database.ConnectionString = " " }, "DB_CONNECTION_STRING"},
		{"no open connections", func(c *Config) { c.Database.MaxOpenConns = 0 }, "DB_MAX_OPEN_CONNS"},
		{"idle above open", func(c *Config) { c.Database.MaxIdleConns = 2 }, "DB_MAX_IDLE_CONNS"},
		{"negative rate", func(c *Config) { c.RateLimit.RequestsPerSecond = -1 }, "RATE_LIMIT_RPS"},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, "RATE_LIMIT_BURST"},
		{"rate limiting off", func(c *Config) { c.RateLimit = RateLimitConfig{} }, ""},
		{"zero shutdown", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "SHUTDOWN_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("PORT", "0")

	_, err := Load()
	require.Error(t, err)
}

func TestAdaptConfigForServerless(t *testing.T) {
	t.Run("outside lambda", func(t *testing.T) {
		t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")
		cfg := &Config{Database: DatabaseConfig{ConnectionString: DefaultDatabasePath}}
		assert.Equal(t, DefaultDatabasePath, AdaptConfigForServerless(cfg).Database.ConnectionString)
		assert.Equal(t, "server", GetDeploymentMode())
	})

	t.Run("inside lambda", func(t *testing.T) {
		t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "commission-api")
		cfg := &Config{Database: DatabaseConfig{ConnectionString: DefaultDatabasePath}}
		cfg = AdaptConfigForServerless(cfg)
		assert.Equal(t, "/tmp/commission.db", cfg.Database.ConnectionString)
		assert.True(t, cfg.Database.AutoMigrate)
		assert.Equal(t, "serverless", GetDeploymentMode())
		assert.True(t, GetServerlessConfig().IsLambda)
	})

	t.Run("explicit path kept", func(t *testing.T) {
		t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "commission-api")
		cfg := &Config{Database: DatabaseConfig{ConnectionString: "/mnt/efs/commission.db"}}
		assert.Equal(t, "/mnt/efs/commission.db", AdaptConfigForServerless(cfg).Database.ConnectionString)
	})
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(&Config{Environment: EnvProduction, LogLevel: "debug"})
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
	assert.Equal(t, logrus.DebugLevel, logger.Level)

	logger = NewLogger(&Config{Environment: EnvDevelopment, LogLevel: "nonsense"})
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
	assert.Equal(t, logrus.InfoLevel, logger.Level)
}
