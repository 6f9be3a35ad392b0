package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Snapshot struct {
	URL           string `mapstructure:"url"`
	Dir           string `mapstructure:"dir"`
	File          string `mapstructure:"file"`
	MaxAgeSeconds int    `mapstructure:"max_age_seconds"`
}

// Path is the full location of the locally stored snapshot.
func (s *Snapshot) Path() string {
	dir := s.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, s.File)
}

func (s *Snapshot) MaxAge() time.Duration {
	return time.Duration(s.MaxAgeSeconds) * time.Second
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	Snapshot   Snapshot   `mapstructure:"snapshot"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Logging    Logging    `mapstructure:"logging"`
}

// Init assembles the configuration from defaults, an optional curconv.yaml
// in the working directory or ~/.config/curconv, environment variables and
// an optional .env file. Every source may be absent; the defaults alone are
// enough to run.
func Init() (*AppConfig, error) {
	var cfg AppConfig

	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("curconv")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "curconv"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetDefault("snapshot.url", "https://cdn.wahrungsrechner.info/api/latest.json")
	v.SetDefault("snapshot.dir", "")
	v.SetDefault("snapshot.file", "currency.json")
	v.SetDefault("snapshot.max_age_seconds", 3600)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("logging.level", "info")

	_ = v.BindEnv("snapshot.url", "CURCONV_SNAPSHOT_URL")
	_ = v.BindEnv("snapshot.dir", "CURCONV_SNAPSHOT_DIR")
	_ = v.BindEnv("snapshot.file", "CURCONV_SNAPSHOT_FILE")
	_ = v.BindEnv("snapshot.max_age_seconds", "CURCONV_SNAPSHOT_MAX_AGE")
	_ = v.BindEnv("http_client.timeout_seconds", "CURCONV_HTTP_TIMEOUT_SECONDS")
	_ = v.BindEnv("logging.level", "CURCONV_LOG_LEVEL")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
