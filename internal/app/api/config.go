package api

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.temporal.io/sdk/client"
)

// ConfigFileEnv names the variable that points at an optional YAML config file.
const ConfigFileEnv = "BOUTIQUE_CONFIG"

// Config carries environment-driven settings for the API and worker processes.
type Config struct {
	ServiceName       string
	Port              string
	PostgresDSN       string
	SQLitePath        string
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
}

// LoadConfig reads the optional config file and environment variables, applies defaults,
// and validates basic constraints. Environment variables win over the file.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("service_name", "boutique-api")
	v.SetDefault("port", "8080")
	v.SetDefault("postgres_dsn", "")
	v.SetDefault("sqlite_path", "")
	v.SetDefault("temporal_address", client.DefaultHostPort)
	v.SetDefault("temporal_namespace", client.DefaultNamespace)
	v.SetDefault("temporal_disabled", "")

	if configFile := strings.TrimSpace(os.Getenv(ConfigFileEnv)); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	}

	cfg := Config{
		ServiceName:       strings.TrimSpace(v.GetString("service_name")),
		Port:              strings.TrimSpace(v.GetString("port")),
		PostgresDSN:       strings.TrimSpace(v.GetString("postgres_dsn")),
		SQLitePath:        strings.TrimSpace(v.GetString("sqlite_path")),
		TemporalAddress:   strings.TrimSpace(v.GetString("temporal_address")),
		TemporalNamespace: strings.TrimSpace(v.GetString("temporal_namespace")),
		TemporalDisabled:  isTruthy(v.GetString("temporal_disabled")),
	}
	if cfg.ServiceName == "" {
		return Config{}, errors.New("SERVICE_NAME must not be empty")
	}
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, errors.Errorf("PORT must be a TCP port number, got %q", cfg.Port)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
