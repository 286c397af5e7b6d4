package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Security SecurityConfig `mapstructure:"security"`
	Event    EventConfig    `mapstructure:"event"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.Store.Dir == "" {
		return errors.New("store.dir is required")
	}
	if c.Security.AdminUsername == "" || c.Security.AdminPassword == "" {
		return errors.New("security admin credentials are required")
	}
	if c.Security.JWTSecret == "" || c.Security.FernetKey == "" || c.Security.HMACSecret == "" {
		return errors.New("security secrets are required")
	}
	if c.Security.TokenTTL <= 0 {
		return errors.New("security.token_ttl must be positive")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// StoreConfig describes the persistence backend. Dir holds the encrypted
// JSON documents for the jsonfile backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
}

// SecurityConfig groups every secret and crypto knob in one place.
type SecurityConfig struct {
	AdminUsername string        `mapstructure:"admin_username"`
	AdminPassword string        `mapstructure:"admin_password"`
	JWTSecret     string        `mapstructure:"jwt_secret"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	FernetKey     string        `mapstructure:"fernet_key"`
	HMACSecret    string        `mapstructure:"hmac_secret"`
	BcryptCost    int           `mapstructure:"bcrypt_cost"`
}

// EventConfig carries the event branding printed on entry passes and the
// defaults applied to new tickets.
type EventConfig struct {
	Name            string `mapstructure:"name"`
	Tagline         string `mapstructure:"tagline"`
	College         string `mapstructure:"college"`
	Sponsors        string `mapstructure:"sponsors"`
	Schedule        string `mapstructure:"schedule"`
	DefaultSlot     string `mapstructure:"default_slot"`
	DefaultTeamSize int    `mapstructure:"default_team_size"`
}
