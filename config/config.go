// Package config loads ppa settings from ~/.ppa.yaml, PPA_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ka2n/ppa/api/field"
	"github.com/ka2n/ppa/api/panelapp"
	"github.com/ka2n/ppa/log"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type ErrorCode string

const (
	ErrConfigRead   ErrorCode = "ConfigRead"
	ErrConfigWrite  ErrorCode = "ConfigWrite"
	ErrUnknownKey   ErrorCode = "UnknownConfigKey"
	ErrInvalidValue ErrorCode = "InvalidConfigValue"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. PPA_BASE_URL
	EnvPrefix = "PPA"

	// FileName is the name of the config file in the home directory
	FileName = ".ppa.yaml"
)

// Keys
const (
	KeyBaseURL = "base_url"
	KeyTimeout = "timeout"
	KeyFields  = "fields"
	KeyDebug   = "debug"
)

// Config holds the resolved settings
type Config struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Fields  string        `mapstructure:"fields"`
	Debug   bool          `mapstructure:"-"`
}

// Store resolves settings from the config file, environment and bound flags
type Store struct {
	v    *viper.Viper
	path string
}

// DefaultPath returns ~/.ppa.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", failure.Wrap(err, failure.Message("cannot determine home directory"))
	}
	return filepath.Join(home, FileName), nil
}

// New creates a store backed by the config file at path
func New(path string) *Store {
	v := viper.New()
	v.SetDefault(KeyBaseURL, panelapp.DefaultBaseURL)
	v.SetDefault(KeyTimeout, panelapp.DefaultTimeout.String())
	v.SetDefault(KeyFields, "")
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	return &Store{v: v, path: path}
}

// Open creates a store for path, or for DefaultPath when path is empty
func Open(path string) (*Store, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return New(path), nil
}

// Path returns the config file location
func (s *Store) Path() string {
	return s.path
}

// BindFlag makes an explicitly set flag override the value of key
func (s *Store) BindFlag(key string, flag *pflag.Flag) error {
	return s.v.BindPFlag(key, flag)
}

// Load reads the config file, if present, and returns the resolved settings
func (s *Store) Load() (Config, error) {
	if err := readConfig(s.v); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := s.v.Unmarshal(&cfg); err != nil {
		return Config{}, failure.New(ErrConfigRead,
			failure.Message("Invalid configuration value"),
			failure.Context{
				"path":  s.path,
				"error": err.Error(),
			},
		)
	}
	// PPA_DEBUG=yes is not a strict bool, so debug follows the log package rule
	cfg.Debug = log.IsDebugValue(s.v.GetString(KeyDebug))
	return cfg, nil
}

// Show renders all resolved settings as YAML
func (s *Store) Show() (string, error) {
	out, err := yaml.Marshal(s.v.AllSettings())
	if err != nil {
		return "", failure.Wrap(err)
	}
	return string(out), nil
}

// Get returns the resolved value of key
func (s *Store) Get(key string) (any, error) {
	if !isKnownKey(key) {
		return nil, unknownKey(key)
	}
	return s.v.Get(key), nil
}

// Set stores value under key in the config file. Only the file contents are
// written, never values that came from the environment or defaults.
func (s *Store) Set(key, value string) error {
	if !isKnownKey(key) {
		return unknownKey(key)
	}
	parsed, err := parseValue(key, value)
	if err != nil {
		return err
	}

	file := viper.New()
	file.SetConfigFile(s.path)
	file.SetConfigType("yaml")
	if err := readConfig(file); err != nil {
		return err
	}

	file.Set(key, parsed)

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return failure.New(ErrConfigWrite,
			failure.Message("Failed to create config directory"),
			failure.Context{"path": s.path, "error": err.Error()},
		)
	}
	if err := file.WriteConfigAs(s.path); err != nil {
		return failure.New(ErrConfigWrite,
			failure.Message("Failed to write config file"),
			failure.Context{"path": s.path, "error": err.Error()},
		)
	}

	// pick up the new value
	s.v.Set(key, file.Get(key))
	return nil
}

// parseValue checks value against key, so that a written file always loads
func parseValue(key, value string) (any, error) {
	invalid := func(reason string) error {
		return failure.New(ErrInvalidValue,
			failure.Message(fmt.Sprintf("Invalid value %q for %s: %s", value, key, reason)),
			failure.Context{"key": key, "value": value},
		)
	}

	switch key {
	case KeyTimeout:
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, invalid("expected a duration such as 30s or 1m")
		}
		if d <= 0 {
			return nil, invalid("duration must be positive")
		}
	case KeyFields:
		if _, err := field.Parse(value); err != nil {
			return nil, invalid(failure.MessageOf(err).String())
		}
	case KeyBaseURL:
		if _, err := panelapp.NewClient(value); err != nil {
			return nil, invalid("expected an absolute URL such as " + panelapp.DefaultBaseURL)
		}
	case KeyDebug:
		switch strings.ToLower(value) {
		case "yes", "on":
			return true, nil
		case "no", "off":
			return false, nil
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, invalid("expected true or false")
		}
		return b, nil
	}
	return value, nil
}

// Keys returns the supported config keys
func Keys() []string {
	keys := []string{KeyBaseURL, KeyTimeout, KeyFields, KeyDebug}
	sort.Strings(keys)
	return keys
}

func readConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
		return nil
	}
	return failure.New(ErrConfigRead,
		failure.Message("Failed to read config file"),
		failure.Context{
			"path":  v.ConfigFileUsed(),
			"error": err.Error(),
		},
	)
}

func isKnownKey(key string) bool {
	switch key {
	case KeyBaseURL, KeyTimeout, KeyFields, KeyDebug:
		return true
	default:
		return false
	}
}

func unknownKey(key string) error {
	return failure.New(ErrUnknownKey,
		failure.Message(fmt.Sprintf("Unknown config key %q, expected one of: %s", key, strings.Join(Keys(), ", "))),
		failure.Context{"key": key},
	)
}
