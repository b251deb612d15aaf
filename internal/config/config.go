package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

const (
	defaultServerAddress    = "localhost:8080"
	defaultMongoDatabase    = "weatherfav"
	defaultCacheTTL         = time.Hour
	defaultWeatherBaseURL   = "https://api.openweathermap.org/data/2.5/"
	defaultWeatherTimeout   = 10 * time.Second
	defaultJWTAccessExpire  = 15 * time.Minute
	defaultLogLevel         = "info"
	minJWTSecretKeyLength   = 32
	generatedJWTSecretBytes = 32
)

type Config struct {
	ServerAddress string `env:"SERVER_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_DSN"` // пустой DSN - хранилище в памяти

	RedisAddr     string        `env:"REDIS_ADDR"` // пустой адрес - кэш отключен
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"`
	CacheTTL      time.Duration `env:"CACHE_TTL"`

	MongoURI      string `env:"MONGO_URI"` // пустой URI - сессии в памяти
	MongoDatabase string `env:"MONGO_DATABASE"`

	WeatherAPIKey  string        `env:"WEATHER_API_KEY"`
	WeatherBaseURL string        `env:"WEATHER_BASE_URL"`
	WeatherTimeout time.Duration `env:"WEATHER_TIMEOUT"`

	JWTSecretKey    string        `env:"JWT_SECRET_KEY"` // Минимум 32 байта для HS256
	JWTAccessExpire time.Duration `env:"JWT_ACCESS_EXPIRE"`

	LogLevel string `env:"LOG_LEVEL"`
}

func NewConfig() *Config {
	return &Config{
		ServerAddress:   defaultServerAddress,
		CacheTTL:        defaultCacheTTL,
		MongoDatabase:   defaultMongoDatabase,
		WeatherBaseURL:  defaultWeatherBaseURL,
		WeatherTimeout:  defaultWeatherTimeout,
		JWTAccessExpire: defaultJWTAccessExpire,
		LogLevel:        defaultLogLevel,
	}
}

// BindFlags регистрирует флаги командной строки поверх значений по умолчанию
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.ServerAddress, "server-address", "a", c.ServerAddress, "Server address")
	fs.StringVarP(&c.DatabaseDSN, "database-dsn", "d", c.DatabaseDSN, "Database DSN")
	fs.StringVar(&c.RedisAddr, "redis-addr", c.RedisAddr, "Redis address for the favorites cache")
	fs.StringVar(&c.RedisPassword, "redis-password", c.RedisPassword, "Redis password")
	fs.IntVar(&c.RedisDB, "redis-db", c.RedisDB, "Redis database number")
	fs.DurationVar(&c.CacheTTL, "cache-ttl", c.CacheTTL, "Favorites cache entry TTL (0 disables expiry)")
	fs.StringVar(&c.MongoURI, "mongo-uri", c.MongoURI, "MongoDB URI for the session store")
	fs.StringVar(&c.MongoDatabase, "mongo-database", c.MongoDatabase, "MongoDB database name")
	fs.StringVar(&c.WeatherBaseURL, "weather-base-url", c.WeatherBaseURL, "Weather provider base URL")
	fs.DurationVar(&c.WeatherTimeout, "weather-timeout", c.WeatherTimeout, "Weather provider request timeout")
	fs.DurationVar(&c.JWTAccessExpire, "jwt-access-expire", c.JWTAccessExpire, "JWT access token expiration")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
}

// Load применяет переменные окружения (они важнее флагов) и проверяет результат
func (c *Config) Load() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to parse env: %w", err)
	}

	if err := c.validateJWTSecret(); err != nil {
		return err
	}
	c.normalizeServerAddress()
	c.normalizeWeatherBaseURL()

	if c.CacheTTL < 0 {
		return errors.New("cache ttl must not be negative")
	}
	if c.WeatherTimeout <= 0 {
		return errors.New("weather timeout must be positive")
	}
	return nil
}

func (c *Config) validateJWTSecret() error {
	if c.JWTSecretKey == "" {
		key := make([]byte, generatedJWTSecretBytes)
		if _, err := rand.Read(key); err != nil {
			return fmt.Errorf("failed to generate JWT secret key: %w", err)
		}
		c.JWTSecretKey = base64.StdEncoding.EncodeToString(key)
		fmt.Fprintln(os.Stderr, "WARNING: Using auto-generated JWT secret key. For production, set JWT_SECRET_KEY environment variable.")
	}

	decoded, err := base64.StdEncoding.DecodeString(c.JWTSecretKey)
	if err != nil || len(decoded) < minJWTSecretKeyLength {
		return errors.New("JWT secret key must be at least 32 bytes long (base64 encoded)")
	}
	return nil
}

func (c *Config) normalizeServerAddress() {
	if strings.HasPrefix(c.ServerAddress, ":") {
		c.ServerAddress = "localhost" + c.ServerAddress
	}
}

func (c *Config) normalizeWeatherBaseURL() {
	if c.WeatherBaseURL != "" && !strings.HasSuffix(c.WeatherBaseURL, "/") {
		c.WeatherBaseURL += "/"
	}
}
