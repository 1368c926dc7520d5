package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "AGING"

type Settings struct {
	Server   Server `mapstructure:"server"`
	Data     Data   `mapstructure:"data"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr joins host and port for http.Server.
func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type Data struct {
	CurrentPath string `mapstructure:"current_path"`
	LegacyPath  string `mapstructure:"legacy_path"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("data.current_path", "data/TOTAL2024-2026.xlsx")
	v.SetDefault("data.legacy_path", "data/dek2023_1-5_6-30_.xlsx")
	v.SetDefault("log_level", "info")
}

// Load reads settings from defaults, an optional YAML file and AGING_* environment
// variables, in increasing order of precedence. An empty path skips the file.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if settings.Data.CurrentPath == "" || settings.Data.LegacyPath == "" {
		return nil, errors.New("both data.current_path and data.legacy_path must be set")
	}
	return &settings, nil
}
