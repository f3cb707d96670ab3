package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultPath  = "~/.planner.db"
	defaultModel = "gemini-2.5-flash"
)

// Config exposes the settings the planner reads from `.planner.yaml` and the
// PLANNER_ environment.
type Config interface {
	BasePath() string
	APIKey() string
	Model() string
}

// LoadConfig reads the config file from $PLANNER_CONFIG_PATH or the working
// directory. A missing file is fine; defaults apply.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("gemini_model", defaultModel)
	v.SetConfigName(".planner") // .yaml is implicit
	v.SetEnvPrefix("PLANNER")
	v.AutomaticEnv()

	if override := os.Getenv("PLANNER_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	key := v.GetString("gemini_api_key")
	for _, env := range []string{"API_KEY", "GEMINI_API_KEY"} {
		if key != "" {
			break
		}
		key = os.Getenv(env)
	}

	return &fileConfig{
		Path:        path,
		GeminiKey:   key,
		GeminiModel: v.GetString("gemini_model"),
	}, nil
}

type fileConfig struct {
	Path        string `json:"path"`
	GeminiKey   string `json:"-"`
	GeminiModel string `json:"model"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) APIKey() string {
	return f.GeminiKey
}

func (f *fileConfig) Model() string {
	return f.GeminiModel
}
