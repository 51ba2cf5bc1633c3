package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configDir    = ".intellitask"
	dataFileName = "intellitask_data.json"
)

// Config represents the application configuration
type Config struct {
	DataDir  string `mapstructure:"data_dir"`
	DataFile string `mapstructure:"data_file"`
}

// DataFilePath returns the full path of the snapshot document.
func (c *Config) DataFilePath() string {
	return filepath.Join(c.DataDir, c.DataFile)
}

// Load loads configuration from environment variables and an optional
// config file. Missing config files are fine; defaults place the data
// under ~/.intellitask.
func Load() (*Config, error) {
	// Best-effort .env load; absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(defaultDataDir())

	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("data_file", dataFileName)

	v.SetEnvPrefix("INTELLITASK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the working directory when $HOME is unset.
		return "."
	}
	return filepath.Join(home, configDir)
}
