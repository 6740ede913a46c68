package cliconfig

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/mutations/pkg/arith"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds CLI configuration for mutations.
type Config struct {
	Policy   string
	LogLevel string
	Format   string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Policy:   string(arith.PolicyWrap),
		LogLevel: zerolog.LevelInfoValue,
		Format:   FormatText,
	}
}

// Validate checks the configuration for errors and normalizes its values.
func (c *Config) Validate() error {
	p, err := arith.ParsePolicy(c.Policy)
	if err != nil {
		return fmt.Errorf("policy: %w", err)
	}
	c.Policy = string(p)

	if c.LogLevel == "" {
		c.LogLevel = zerolog.LevelInfoValue
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	c.LogLevel = strings.ToLower(c.LogLevel)

	switch c.Format = strings.ToLower(c.Format); c.Format {
	case "":
		c.Format = FormatText
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("format %q: must be %s or %s", c.Format, FormatText, FormatJSON)
	}

	return nil
}

// ArithPolicy returns the overflow policy. Call Validate first.
func (c Config) ArithPolicy() arith.Policy {
	return arith.Policy(c.Policy)
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}
