package config

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = base64.StdEncoding.EncodeToString([]byte("test-secret-key-32-bytes-long!!!"))

func TestConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", testSecret)

	cfg := NewConfig()
	require.NoError(t, cfg.Load())

	assert.Equal(t, "localhost:8080", cfg.ServerAddress)
	assert.Empty(t, cfg.DatabaseDSN)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, "weatherfav", cfg.MongoDatabase)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5/", cfg.WeatherBaseURL)
	assert.Equal(t, 10*time.Second, cfg.WeatherTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestConfig_FlagsThenEnv(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		env       map[string]string
		wantAddr  string
		wantDSN   string
		wantRedis string
		wantTTL   time.Duration
	}{
		{
			name:     "только флаги",
			args:     []string{"-a", ":9090", "--database-dsn", "postgres://flag", "--cache-ttl", "5m"},
			wantAddr: "localhost:9090",
			wantDSN:  "postgres://flag",
			wantTTL:  5 * time.Minute,
		},
		{
			name: "окружение перекрывает флаги",
			args: []string{"-a", "flag:1", "--redis-addr", "flag-redis:6379"},
			env: map[string]string{
				"SERVER_ADDRESS": "env:2",
				"REDIS_ADDR":     "env-redis:6379",
				"CACHE_TTL":      "30s",
			},
			wantAddr:  "env:2",
			wantRedis: "env-redis:6379",
			wantTTL:   30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET_KEY", testSecret)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := NewConfig()
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			cfg.BindFlags(fs)
			require.NoError(t, fs.Parse(tt.args))
			require.NoError(t, cfg.Load())

			assert.Equal(t, tt.wantAddr, cfg.ServerAddress)
			assert.Equal(t, tt.wantDSN, cfg.DatabaseDSN)
			assert.Equal(t, tt.wantRedis, cfg.RedisAddr)
			assert.Equal(t, tt.wantTTL, cfg.CacheTTL)
		})
	}
}

func TestConfig_JWTSecret(t *testing.T) {
	t.Run("генерация при отсутствии", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "")
		cfg := NewConfig()
		require.NoError(t, cfg.Load())

		key, err := base64.StdEncoding.DecodeString(cfg.JWTSecretKey)
		require.NoError(t, err)
		assert.Len(t, key, 32)
	})

	t.Run("слишком короткий ключ", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", base64.StdEncoding.EncodeToString([]byte("short")))
		cfg := NewConfig()
		assert.Error(t, cfg.Load())
	})
}

func TestConfig_WeatherBaseURLSlash(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", testSecret)
	t.Setenv("WEATHER_BASE_URL", "http://weather.local/data")

	cfg := NewConfig()
	require.NoError(t, cfg.Load())
	assert.Equal(t, "http://weather.local/data/", cfg.WeatherBaseURL)
}
