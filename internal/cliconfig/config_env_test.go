package cliconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
	}{
		{
			name: "applies all env vars",
			envVars: map[string]string{
				"MUTATIONS_POLICY":    "fail",
				"MUTATIONS_LOG_LEVEL": "error",
				"MUTATIONS_FORMAT":    "json",
			},
			changed:  map[string]bool{},
			initial:  DefaultConfig(),
			expected: Config{Policy: "fail", LogLevel: "error", Format: "json"},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"MUTATIONS_POLICY": "fail",
				"MUTATIONS_FORMAT": "json",
			},
			changed:  map[string]bool{"format": true},
			initial:  Config{Policy: "wrap", Format: "text"},
			expected: Config{Policy: "fail", Format: "text"},
		},
		{
			name:     "unset vars leave config alone",
			envVars:  map[string]string{},
			changed:  map[string]bool{},
			initial:  DefaultConfig(),
			expected: DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"MUTATIONS_POLICY", "MUTATIONS_LOG_LEVEL", "MUTATIONS_FORMAT"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			ApplyEnvConfig(&cfg, tt.changed)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}
