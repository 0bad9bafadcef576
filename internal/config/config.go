package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Command modes.
const (
	ModeStub  = "stub"
	ModeStore = "store"
)

// Config holds all configuration for the application.
type Config struct {
	App      App      `mapstructure:"app"`
	Logger   Logger   `mapstructure:"logger"`
	Server   Server   `mapstructure:"server"`
	Database Database `mapstructure:"database"`
	Commands Commands `mapstructure:"commands"`
	Client   Client   `mapstructure:"client"`
}

// App holds general application settings.
type App struct {
	Name string `mapstructure:"name"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Server holds the configuration for the local command server.
type Server struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Database holds the configuration for the SQLite database.
type Database struct {
	Path         string `mapstructure:"path"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// Commands selects how the journal commands behave.
// "stub" echoes payloads back, "store" persists them.
type Commands struct {
	Mode string `mapstructure:"mode"`
}

// Client holds the configuration for the command client.
type Client struct {
	BaseURL        string  `mapstructure:"base_url"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
	Timeout        int     `mapstructure:"timeout"` // seconds
}

// LoadConfig reads configuration from file or environment variables.
// A missing config file is not an error; defaults and the environment still apply.
func LoadConfig(path string) (config Config, err error) {
	// Values from .env become plain environment variables.
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "trading-journal")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.file", "")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 1420)
	v.SetDefault("database.path", "trading_journal.db")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("commands.mode", ModeStub)
	v.SetDefault("client.base_url", "http://127.0.0.1:1420")
	v.SetDefault("client.rate_limit", 20)      // requests per second
	v.SetDefault("client.rate_limit_burst", 5) // burst size
	v.SetDefault("client.timeout", 10)
}
