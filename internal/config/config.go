// Package config loads process configuration from the environment, an
// optional .env file and an optional CONFIG_FILE.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Subscriber backends selectable with SUBSCRIBER_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendAudience = "audience"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Config is the resolved process configuration. Required third-party values
// may be empty here; the endpoint that needs them reports a configuration
// error at request time instead of the process refusing to start.
type Config struct {
	Port        string
	FrontendURL string
	LogLevel    string

	ResendAPIKey     string
	ResendBaseURL    string
	ResendAudienceID string

	SubscriberBackend string
	DatabaseURL       string

	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	RedisSubscribersKey string

	ContactFrom string
	AckFrom     string
	WelcomeFrom string
	AdminEmail  string
	OwnerName   string
	SiteName    string
	SiteURL     string
	LogoURL     string

	RateLimitPerMinute int
	MaxMessageLength   int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("RESEND_BASE_URL", "https://api.resend.com")
	v.SetDefault("SUBSCRIBER_BACKEND", BackendPostgres)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_SUBSCRIBERS_KEY", "subscribers")
	v.SetDefault("CONTACT_FROM", "Contact Form <contact@co.ebnn.xyz>")
	v.SetDefault("ACK_FROM", "connect@social.ebnn.xyz")
	v.SetDefault("WELCOME_FROM", "welco@co.ebnn.xyz")
	v.SetDefault("ADMIN_EMAIL", "welco@ebnn.xyz")
	v.SetDefault("OWNER_NAME", "Ebin Sebastian Jiji")
	v.SetDefault("SITE_NAME", "ebnn.xyz")
	v.SetDefault("SITE_URL", "https://www.ebnn.xyz")
	v.SetDefault("LOGO_URL", "https://ebnn.xyz/pfp.png")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 10)
	v.SetDefault("MAX_MESSAGE_LENGTH", 5000)
}

// Load reads .env files (missing ones are ignored), then CONFIG_FILE if set,
// then the process environment, which wins over both.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if file := str(v, "CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:        str(v, "PORT"),
		FrontendURL: str(v, "FRONTEND_URL"),
		LogLevel:    str(v, "LOG_LEVEL"),

		ResendAPIKey:     str(v, "RESEND_API_KEY"),
		ResendBaseURL:    str(v, "RESEND_BASE_URL"),
		ResendAudienceID: str(v, "RESEND_AUDIENCE_ID"),

		SubscriberBackend: strings.ToLower(str(v, "SUBSCRIBER_BACKEND")),
		DatabaseURL:       str(v, "DATABASE_URL"),

		RedisAddr:           str(v, "REDIS_ADDR"),
		RedisPassword:       v.GetString("REDIS_PASSWORD"),
		RedisDB:             v.GetInt("REDIS_DB"),
		RedisSubscribersKey: str(v, "REDIS_SUBSCRIBERS_KEY"),

		ContactFrom: str(v, "CONTACT_FROM"),
		AckFrom:     str(v, "ACK_FROM"),
		WelcomeFrom: str(v, "WELCOME_FROM"),
		AdminEmail:  str(v, "ADMIN_EMAIL"),
		OwnerName:   str(v, "OWNER_NAME"),
		SiteName:    str(v, "SITE_NAME"),
		SiteURL:     str(v, "SITE_URL"),
		LogoURL:     str(v, "LOGO_URL"),

		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		MaxMessageLength:   v.GetInt("MAX_MESSAGE_LENGTH"),
	}

	switch cfg.SubscriberBackend {
	case BackendPostgres, BackendAudience, BackendRedis, BackendMemory:
	default:
		return nil, fmt.Errorf("config: unknown SUBSCRIBER_BACKEND %q", cfg.SubscriberBackend)
	}
	if cfg.RateLimitPerMinute < 0 {
		return nil, fmt.Errorf("config: RATE_LIMIT_PER_MINUTE must not be negative")
	}
	return cfg, nil
}

func str(v *viper.Viper, key string) string {
	return strings.TrimSpace(v.GetString(key))
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
