package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const (
	configName = "scrollstack"
	envPrefix  = "SCROLLSTACK"
)

// ErrNoConfigFile is returned by Watch when defaults are in use
var ErrNoConfigFile = errors.New("config: no config file to watch")

// Loader reads configuration and keeps the viper instance alive for reloads
type Loader struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// NewLoader creates a loader. An empty path searches the working directory and
// the user config directory for scrollstack.toml (or .yaml).
func NewLoader(path string) *Loader {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("toml")
		}
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configName))
		}
	}

	// Environment variable overrides: SCROLLSTACK_STACK_START_OFFSET etc
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v, path: path}
}

// Load reads the config file if one exists and decodes the merged settings.
// A missing file in search mode is not an error; an explicit path must exist.
func (l *Loader) Load() (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.path != "" {
		if _, err := os.Stat(l.path); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return l.decode()
}

// Path returns the config file in use, empty when running on defaults
func (l *Loader) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.v.ConfigFileUsed()
}

// Watch calls onChange with the re-decoded config after every write to the
// config file. Load must have been called first.
func (l *Loader) Watch(onChange func(*Config, error)) error {
	if l.Path() == "" {
		return ErrNoConfigFile
	}
	if _, err := os.Stat(l.Path()); err != nil {
		return ErrNoConfigFile
	}

	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		l.mu.Lock()
		cfg, err := l.decode()
		l.mu.Unlock()
		onChange(cfg, err)
	})
	l.v.WatchConfig()
	return nil
}

func (l *Loader) decode() (*Config, error) {
	cfg := &Config{}
	if err := l.v.Unmarshal(cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file
func LoadFromPath(path string) (*Config, error) {
	return NewLoader(path).Load()
}
