// Package nxconfig loads settings from ~/.nexplorer.yaml, NEXPLORER_* env vars and flags.
package nxconfig

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	ConfigName        = ".nexplorer"
	EnvPrefix         = "NEXPLORER"
	DefaultTimeFormat = "Mon Jan 2 15:04:05 2006"
)

type Config struct {
	StartDir string        `mapstructure:"start_dir"`
	UI       UIConfig      `mapstructure:"ui"`
	Filter   FilterConfig  `mapstructure:"filter"`
	History  HistoryConfig `mapstructure:"history"`
	Watch    WatchConfig   `mapstructure:"watch"`
	Log      LogConfig     `mapstructure:"log"`
}

type UIConfig struct {
	ShowHidden bool   `mapstructure:"show_hidden"`
	TimeFormat string `mapstructure:"time_format"`
}

type FilterConfig struct {
	ApplySize bool `mapstructure:"apply_size"`
}

type HistoryConfig struct {
	RecordDrives bool `mapstructure:"record_drives"`
}

type WatchConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

var userHomeDir = os.UserHomeDir

func SetDefaults(v *viper.Viper) {
	v.SetDefault("start_dir", "~")
	v.SetDefault("ui.show_hidden", false)
	v.SetDefault("ui.time_format", DefaultTimeFormat)
	v.SetDefault("filter.apply_size", false)
	v.SetDefault("history.record_drives", false)
	v.SetDefault("watch.enabled", true)
	v.SetDefault("log.file", "")
}

// Load reads configFile, or ~/.nexplorer.yaml when configFile is empty.
// A missing default file is not an error; a missing explicit file is.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		home, err := userHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.UI.TimeFormat == "" {
		config.UI.TimeFormat = DefaultTimeFormat
	}
	return &config, nil
}
