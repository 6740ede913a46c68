package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (MUTATIONS_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("policy", os.Getenv("MUTATIONS_POLICY"), &cfg.Policy)
	s.setString("log-level", os.Getenv("MUTATIONS_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("format", os.Getenv("MUTATIONS_FORMAT"), &cfg.Format)
}
