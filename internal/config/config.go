package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kinde    KindeConfig
	Storage  StorageConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KindeConfig holds both the user-facing OAuth application and the
// machine-to-machine client used for the management API sync path.
type KindeConfig struct {
	Domain       string
	ClientID     string
	ClientSecret string

	M2MClientID     string
	M2MClientSecret string
	M2MAudience     string
	M2MScope        string
}

type StorageConfig struct {
	Path      string // local directory for uploaded media
	URLPrefix string // public prefix the files are served under
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables or .env file
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Try to read from .env file, but don't fail if it doesn't exist
	_ = viper.ReadInConfig()

	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", 8000)
	viper.SetDefault("STORAGE_PATH", "./uploads")
	viper.SetDefault("STORAGE_URL_PREFIX", "/uploads")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")

	config := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("SERVER_HOST"),
			Port:         viper.GetInt("SERVER_PORT"),
			Env:          viper.GetString("ENV"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Kinde: KindeConfig{
			Domain:          viper.GetString("KINDE_DOMAIN"),
			ClientID:        viper.GetString("KINDE_CLIENT_ID"),
			ClientSecret:    viper.GetString("KINDE_CLIENT_SECRET"),
			M2MClientID:     viper.GetString("KINDE_M2M_CLIENT_ID"),
			M2MClientSecret: viper.GetString("KINDE_M2M_CLIENT_SECRET"),
			M2MAudience:     viper.GetString("KINDE_M2M_AUDIENCE"),
			M2MScope:        viper.GetString("KINDE_M2M_SCOPE"),
		},
		Storage: StorageConfig{
			Path:      viper.GetString("STORAGE_PATH"),
			URLPrefix: viper.GetString("STORAGE_URL_PREFIX"),
		},
		Logging: LoggingConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates critical configuration values
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Kinde.Domain == "" {
		return fmt.Errorf("kinde domain is required")
	}
	// M2M credentials are optional: without them the outbound identity
	// sync is skipped rather than failing startup.
	return nil
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetAddr returns Redis address
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SyncConfigured reports whether the management API client is usable.
func (c *KindeConfig) SyncConfigured() bool {
	return c.M2MClientID != "" && c.M2MClientSecret != ""
}
