package core

import (
	"fmt"
	"strings"
)

type URLConfig struct {
	DefaultPreference string `koanf:"default_preference" mapstructure:"default_preference"`
}

type PropertyConfig struct {
	RecognizedNames []string `koanf:"recognized_names" mapstructure:"recognized_names"`
}

type Config struct {
	ServiceName string         `koanf:"service_name" mapstructure:"service_name"`
	URLs        URLConfig      `koanf:"urls" mapstructure:"urls"`
	Properties  PropertyConfig `koanf:"properties" mapstructure:"properties"`
}

func DefaultConfig() Config {
	return Config{
		ServiceName: "entry-facade",
		URLs: URLConfig{
			DefaultPreference: string(URLPreferenceAny),
		},
		Properties: PropertyConfig{},
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ServiceName) == "" {
		return fmt.Errorf("core: service_name is required")
	}
	return nil
}

// DefaultPreference returns the configured preference, falling back to
// URLPreferenceAny. Unknown values pass through untouched: the resolver
// treats them as the any fallback rather than an error.
func (c Config) DefaultPreference() URLPreference {
	preference := URLPreference(strings.TrimSpace(c.URLs.DefaultPreference))
	if preference == "" {
		return URLPreferenceAny
	}
	return preference
}
