package config

import (
	"path/filepath"
	"testing"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    LoggingConfig
		override  string
		expectErr bool
	}{
		{
			name:      "Defaults",
			config:    LoggingConfig{},
			expectErr: false,
		},
		{
			name:      "Console debug",
			config:    LoggingConfig{Level: "debug", Format: "console"},
			expectErr: false,
		},
		{
			name:      "Override takes precedence",
			config:    LoggingConfig{Level: "info"},
			override:  "warn",
			expectErr: false,
		},
		{
			name:      "Invalid level",
			config:    LoggingConfig{Level: "verbose"},
			expectErr: true,
		},
		{
			name:      "Invalid format",
			config:    LoggingConfig{Format: "xml"},
			expectErr: true,
		},
		{
			name:      "Invalid override",
			config:    LoggingConfig{Level: "info"},
			override:  "loud",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := InitializeLogger(tt.config, tt.override)
			if (err != nil) != tt.expectErr {
				t.Fatalf("InitializeLogger() error = %v, expectErr %t", err, tt.expectErr)
			}
			if !tt.expectErr && logger == nil {
				t.Errorf("InitializeLogger() returned nil logger without error")
			}
		})
	}
}

func TestInitializeLoggerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "loancalc.log")
	logger, err := InitializeLogger(LoggingConfig{Level: "info", OutputFile: path}, "")
	if err != nil {
		t.Fatalf("InitializeLogger() error = %v", err)
	}
	logger.Info("test entry")
	_ = logger.Sync()
}
