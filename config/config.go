// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Defaults let a bare checkout boot for local use. Every secret here must
// be overridden through the environment for a real event.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "debug")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 3*time.Second)

	v.SetDefault("store.backend", "jsonfile")
	v.SetDefault("store.dir", "data")

	v.SetDefault("security.admin_username", "adminmkce")
	v.SetDefault("security.admin_password", "hackfest-2k26")
	v.SetDefault("security.jwt_secret", "event-ticketing-super-secret-key-2024")
	v.SetDefault("security.token_ttl", time.Hour)
	v.SetDefault("security.fernet_key", "ZmVybmV0LWtleS1mb3ItZXZlbnQtdGlja2V0aW5nPT0=")
	v.SetDefault("security.hmac_secret", "hmac-secret-for-qr-signatures-2024")
	v.SetDefault("security.bcrypt_cost", 12)

	v.SetDefault("event.name", "HACKFEST2K26")
	v.SetDefault("event.tagline", "36-Hour Hackathon")
	v.SetDefault("event.college", "M. Kumarasamy College of Engineering, Karur")
	v.SetDefault("event.sponsors", "IBM  •  Adroit Technologies")
	v.SetDefault("event.schedule", "20 Feb 9:00 AM – 21 Feb 9:00 AM")
	v.SetDefault("event.default_slot", "20 Feb 9:00 AM - 21 Feb 9:00 AM")
	v.SetDefault("event.default_team_size", 3)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"store.backend",
		"store.dir",
		"security.admin_username",
		"security.admin_password",
		"security.jwt_secret",
		"security.token_ttl",
		"security.fernet_key",
		"security.hmac_secret",
		"security.bcrypt_cost",
		"event.name",
		"event.tagline",
		"event.college",
		"event.sponsors",
		"event.schedule",
		"event.default_slot",
		"event.default_team_size",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
