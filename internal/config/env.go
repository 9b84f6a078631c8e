package config

import (
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "BLOCKEDIT_"

// LookupFunc resolves an environment variable, like os.LookupEnv.
type LookupFunc func(string) (string, bool)

// envSetters maps environment variables (without prefix) to setters.
var envSetters = map[string]func(*Config, string) error{
	"LOG_LEVEL":  func(c *Config, v string) error { c.Log.Level = v; return nil },
	"LOG_FORMAT": func(c *Config, v string) error { c.Log.Format = v; return nil },
	"SELECT_ALL": func(c *Config, v string) error { c.Keystrokes.SelectAll = v; return nil },
	"PLATFORM":   func(c *Config, v string) error { c.Keystrokes.Platform = v; return nil },
	"READ_ONLY": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.Editor.ReadOnly = b
		return nil
	},
	"RESIZE": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.Resize.Enabled = b
		return nil
	},
}

// ApplyEnv overrides settings from BLOCKEDIT_* variables. Unparseable
// values are reported as validation errors and leave the setting as is.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	for _, name := range sortedSetterNames() {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		if err := envSetters[name](cfg, strings.TrimSpace(v)); err != nil {
			return &ValidationError{Path: EnvPrefix + name, Message: err.Error(), Value: v}
		}
	}
	return nil
}

func sortedSetterNames() []string {
	names := make(map[string]string, len(envSetters))
	for k := range envSetters {
		names[k] = k
	}
	return sortedKeys(names)
}
