package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/diary/pkg/history"
)

// Config locates the journal on disk.
type Config interface {
	BasePath() string
	HistoryLimit() int
}

// LoadConfig reads .diary.yaml from $DIARY_CONFIG_PATH or the working
// directory, overlaid by DIARY_* environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.diary.db")
	viper.SetDefault("history", history.DefaultLimit)
	viper.SetConfigName(".diary") // .yaml is implicit
	viper.SetEnvPrefix("DIARY")
	viper.AutomaticEnv()

	if override := os.Getenv("DIARY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:    path,
		History: viper.GetInt("history"),
	}, nil
}

// ConfigFile is the config file viper used, or "".
func ConfigFile() string {
	return viper.ConfigFileUsed()
}

type fileConfig struct {
	Path    string `json:"path"`
	History int    `json:"history"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) HistoryLimit() int {
	if f.History <= 0 {
		return history.DefaultLimit
	}
	return f.History
}
