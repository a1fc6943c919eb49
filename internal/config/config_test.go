package config

import (
	"os"
	"testing"
	"time"
)

var configEnvVars = []string{
	"LOOKUP_POLICY",
	"NSPD_URL_TEMPLATE",
	"NSPD_TIMEOUT",
	"NSPD_USER_AGENT",
	"NSPD_INSECURE_TLS",
	"LOG_LEVEL",
	"LOG_FORMAT",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	originalEnv := make(map[string]string)
	for _, key := range configEnvVars {
		if value, ok := os.LookupEnv(key); ok {
			originalEnv[key] = value
		}
		os.Unsetenv(key)
	}

	// Restore environment after test
	t.Cleanup(func() {
		for _, key := range configEnvVars {
			if value, ok := originalEnv[key]; ok {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	})
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(t *testing.T, config *Config)
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			check: func(t *testing.T, config *Config) {
				if config.Policy != PolicyStrict {
					t.Errorf("Expected default policy strict, got %s", config.Policy)
				}
				if config.Upstream.Timeout != 10*time.Second {
					t.Errorf("Expected strict timeout 10s, got %v", config.Upstream.Timeout)
				}
				if config.Upstream.InsecureSkipVerify {
					t.Error("Expected TLS verification to be enabled under strict policy")
				}
				if config.Upstream.URLTemplate != DefaultURLTemplate {
					t.Errorf("Expected default URL template, got %s", config.Upstream.URLTemplate)
				}
			},
		},
		{
			name:    "best-effort policy defaults",
			envVars: map[string]string{"LOOKUP_POLICY": "best-effort"},
			check: func(t *testing.T, config *Config) {
				if config.Policy != PolicyBestEffort {
					t.Errorf("Expected best-effort policy, got %s", config.Policy)
				}
				if config.Upstream.Timeout != 15*time.Second {
					t.Errorf("Expected best-effort timeout 15s, got %v", config.Upstream.Timeout)
				}
				if !config.Upstream.InsecureSkipVerify {
					t.Error("Expected relaxed TLS under best-effort policy")
				}
			},
		},
		{
			name: "explicit overrides win over policy defaults",
			envVars: map[string]string{
				"LOOKUP_POLICY":     "best-effort",
				"NSPD_TIMEOUT":      "3s",
				"NSPD_INSECURE_TLS": "false",
			},
			check: func(t *testing.T, config *Config) {
				if config.Upstream.Timeout != 3*time.Second {
					t.Errorf("Expected timeout 3s, got %v", config.Upstream.Timeout)
				}
				if config.Upstream.InsecureSkipVerify {
					t.Error("Expected explicit NSPD_INSECURE_TLS=false to be honoured")
				}
			},
		},
		{
			name:    "invalid policy",
			envVars: map[string]string{"LOOKUP_POLICY": "lenient"},
			wantErr: true,
		},
		{
			name:    "template without placeholder",
			envVars: map[string]string{"NSPD_URL_TEMPLATE": "https://example.test/search"},
			wantErr: true,
		},
		{
			name:    "non-positive timeout",
			envVars: map[string]string{"NSPD_TIMEOUT": "0s"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			config, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if tt.check != nil {
				tt.check(t, config)
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    Policy
		wantErr bool
	}{
		{"", PolicyStrict, false},
		{"strict", PolicyStrict, false},
		{" STRICT ", PolicyStrict, false},
		{"best-effort", PolicyBestEffort, false},
		{"best_effort", PolicyBestEffort, false},
		{"always", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePolicy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPolicyDefaultTimeout(t *testing.T) {
	if got := PolicyStrict.DefaultTimeout(); got != StrictTimeout {
		t.Errorf("Expected strict timeout %v, got %v", StrictTimeout, got)
	}
	if got := PolicyBestEffort.DefaultTimeout(); got != BestEffortTimeout {
		t.Errorf("Expected best-effort timeout %v, got %v", BestEffortTimeout, got)
	}
}
