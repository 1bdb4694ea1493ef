// Package config loads the fog controller configuration.
//
// Values come from a config file (TOML, YAML or JSON) and FOG_* environment
// variables. The server settings can further be overridden at runtime by the
// database-backed Store.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mugiliam/fogcontroller/internal/logging"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server" toml:"server"`
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	Log      logging.Config `mapstructure:"log" toml:"log"`
	Fog      FogConfig      `mapstructure:"fog" toml:"fog"`
}

type ServerConfig struct {
	Port             int           `mapstructure:"port" toml:"port"`
	SSLKey           string        `mapstructure:"ssl_key" toml:"ssl_key"`
	SSLCert          string        `mapstructure:"ssl_cert" toml:"ssl_cert"`
	IntermediateCert string        `mapstructure:"intermediate_cert" toml:"intermediate_cert"`
	HandleCORS       bool          `mapstructure:"handle_cors" toml:"handle_cors"`
	CORSOrigin       string        `mapstructure:"cors_origin" toml:"cors_origin"`
	ShutdownTimeout  time.Duration `mapstructure:"shutdown_timeout" toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	// URL takes precedence over the individual fields.
	URL          string `mapstructure:"url" toml:"url"`
	Host         string `mapstructure:"host" toml:"host"`
	Port         int    `mapstructure:"port" toml:"port"`
	User         string `mapstructure:"user" toml:"user"`
	Password     string `mapstructure:"password" toml:"password"`
	Name         string `mapstructure:"name" toml:"name"`
	SSLMode      string `mapstructure:"sslmode" toml:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns" toml:"max_open_conns"`
}

type FogConfig struct {
	ProvisionKeyTTL time.Duration `mapstructure:"provision_key_ttl" toml:"provision_key_ttl"`
	// ComsatHost is the public host used to build comsat pipe and stream viewer URLs.
	ComsatHost string `mapstructure:"comsat_host" toml:"comsat_host"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            54421,
			CORSOrigin:      "*",
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Host:         "localhost",
			Port:         5432,
			User:         "fog",
			Name:         "fogcontroller",
			SSLMode:      "disable",
			MaxOpenConns: 20,
		},
		Log: logging.DefaultConfig(),
		Fog: FogConfig{
			ProvisionKeyTTL: 20 * time.Minute,
			ComsatHost:      "localhost",
		},
	}
}

// DSN returns the connection string for the pgx driver.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	if d.Password != "" {
		u.User = url.UserPassword(d.User, d.Password)
	} else if d.User != "" {
		u.User = url.User(d.User)
	}
	if d.SSLMode != "" {
		u.RawQuery = "sslmode=" + d.SSLMode
	}
	return u.String()
}

// Load reads the config file at path, or searches for fogcontroller.{toml,yaml,json}
// in the working directory and /etc/fogcontroller when path is empty. A missing
// file is only an error when path was given explicitly.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("fogcontroller")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/fogcontroller")
	}
	v.SetEnvPrefix("FOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.ssl_key", d.Server.SSLKey)
	v.SetDefault("server.ssl_cert", d.Server.SSLCert)
	v.SetDefault("server.intermediate_cert", d.Server.IntermediateCert)
	v.SetDefault("server.handle_cors", d.Server.HandleCORS)
	v.SetDefault("server.cors_origin", d.Server.CORSOrigin)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)

	v.SetDefault("database.url", d.Database.URL)
	v.SetDefault("database.host", d.Database.Host)
	v.SetDefault("database.port", d.Database.Port)
	v.SetDefault("database.user", d.Database.User)
	v.SetDefault("database.password", d.Database.Password)
	v.SetDefault("database.name", d.Database.Name)
	v.SetDefault("database.sslmode", d.Database.SSLMode)
	v.SetDefault("database.max_open_conns", d.Database.MaxOpenConns)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)

	v.SetDefault("fog.provision_key_ttl", d.Fog.ProvisionKeyTTL)
	v.SetDefault("fog.comsat_host", d.Fog.ComsatHost)
}
