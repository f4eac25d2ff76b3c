package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	todohttp "todod/http"
	"todod/store"
)

// Config is the root configuration struct for todod.
type Config struct {
	Server ServerConfig        `mapstructure:"server"`
	Store  store.Config        `mapstructure:"store"`
	Auth   AuthConfig          `mapstructure:"auth"`
	CORS   todohttp.CORSConfig `mapstructure:"cors"`
	Log    LogConfig           `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
	// ServeFrontend mounts the embedded browser client at /app/.
	ServeFrontend bool `mapstructure:"serve_frontend"`
}

// AuthConfig holds the shared-secret gate configuration. When Enabled is
// false the API is public, for local development only.
type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Header is the request header carrying the secret.
	Header string `mapstructure:"header" validate:"required"`
	// Token is the single recognized secret value.
	Token string `mapstructure:"token" validate:"required_if=Enabled true"`
	// Identity is the label attached to allowed decisions.
	Identity string `mapstructure:"identity"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// flagToViperKey maps CLI flag names to viper configuration keys.
var flagToViperKey = map[string]string{
	"store-type": "store.type",
	"store-dsn":  "store.dsn",
	"table":      "store.table",
	"port":       "server.port",
}

// bindFlags binds CLI flags to viper keys with custom name mapping.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		viperKey := f.Name
		if mapped, ok := flagToViperKey[viperKey]; ok {
			viperKey = mapped
		}

		// Only bind if the flag was explicitly set
		if f.Changed {
			_ = v.BindPFlag(viperKey, f)
		}
	})
}

// setDefaults configures default values on the viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.serve_frontend", false)

	v.SetDefault("store.type", "sqlite")
	v.SetDefault("store.dsn", "todod.db")
	v.SetDefault("store.table", "todos")
	v.SetDefault("store.region", "us-east-1")

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.header", todohttp.DefaultCredentialHeader)
	v.SetDefault("auth.identity", "frontend-client")

	// cors.credential_header deliberately has no default: an unset value
	// follows auth.header below, so the CORS whitelist tracks the header
	// the gate actually reads.

	v.SetDefault("log.level", "info")
}

// Load reads configuration and returns a validated Config struct.
// Order of precedence (highest to lowest): flags > env > config files > defaults
func Load(configFiles []string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if len(configFiles) > 0 {
		v.SetConfigFile(configFiles[0])
		if err := v.ReadInConfig(); err != nil {
			slog.Warn("error reading config file", "file", configFiles[0], "err", err)
		}

		for _, cf := range configFiles[1:] {
			v.SetConfigFile(cf)
			if err := v.MergeInConfig(); err != nil {
				slog.Warn("error merging config file", "file", cf, "err", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				slog.Warn("error reading config file", "err", err)
			}
		}
	}

	v.SetEnvPrefix("TODOD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindFlags(v, flags)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// The credential header whitelisted for CORS must be the one the
	// gate reads, or browsers will strip it from real requests.
	if cfg.CORS.CredentialHeader == "" {
		cfg.CORS.CredentialHeader = cfg.Auth.Header
	}

	return &cfg, nil
}
