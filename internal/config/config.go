// Package config loads application configuration from YAML via viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var (
	mu sync.Mutex
	v  = viper.New()
)

// Config represents the configuration implementation.
type Config struct {
	AppName  string
	RunMode  string
	Host     string
	Port     int
	Logger   *Logger
	Data     *Data
	Auth     *Auth
	Observes *Observes
	Viper    *viper.Viper
}

// Addr returns the server listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig loads the configuration from the given file, or from the
// default search paths when the path is empty.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		ex, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to get executable path: %w", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath("/etc/quickhire")
		v.AddConfigPath("$HOME/.quickhire")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Dir(ex))
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppName:  v.GetString("app_name"),
		RunMode:  v.GetString("run_mode"),
		Host:     v.GetString("server.host"),
		Port:     v.GetInt("server.port"),
		Logger:   getLoggerConfig(v),
		Data:     getDataConfig(v),
		Auth:     getAuthConfig(v),
		Observes: getObservesConfig(v),
		Viper:    v,
	}
}

// Watch watches the configuration file and invokes the callback with the
// reloaded configuration when it changes.
func Watch(callback func(*Config)) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		mu.Lock()
		defer mu.Unlock()
		if err := v.ReadInConfig(); err != nil {
			fmt.Printf("Error reloading config: %v\n", err)
			return
		}
		callback(fromViper(v))
	})
}
