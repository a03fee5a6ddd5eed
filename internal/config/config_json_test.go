package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"
)

func TestLoadJSONConfig(t *testing.T) {
	tests := []struct {
		name           string
		configContent  string
		expectedConfig *JSONConfig
		shouldError    bool
	}{
		{
			name:           "Empty filename",
			configContent:  "",
			expectedConfig: &JSONConfig{},
		},
		{
			name: "Valid JSON config",
			configContent: `{
				"server_address": "localhost:9090",
				"gemini_base_url": "https://gemini.example.com",
				"gemini_api_version": "v1",
				"gemini_model": "gemini-1.5-pro",
				"log_level": "debug",
				"enable_https": true,
				"tls_cert_file": "custom.crt",
				"tls_key_file": "custom.key",
				"enable_pprof": true,
				"write_timeout": "10m"
			}`,
			expectedConfig: &JSONConfig{
				ServerAddress:    stringPtr("localhost:9090"),
				GeminiBaseURL:    stringPtr("https://gemini.example.com"),
				GeminiAPIVersion: stringPtr("v1"),
				GeminiModel:      stringPtr("gemini-1.5-pro"),
				LogLevel:         stringPtr("debug"),
				EnableHTTPS:      boolPtr(true),
				TLSCertFile:      stringPtr("custom.crt"),
				TLSKeyFile:       stringPtr("custom.key"),
				EnablePprof:      boolPtr(true),
				WriteTimeout:     stringPtr("10m"),
			},
		},
		{
			name: "Partial JSON config",
			configContent: `{
				"server_address": ":3000",
				"enable_https": false
			}`,
			expectedConfig: &JSONConfig{
				ServerAddress: stringPtr(":3000"),
				EnableHTTPS:   boolPtr(false),
			},
		},
		{
			name:          "Invalid JSON",
			configContent: `{"invalid": json}`,
			shouldError:   true,
		},
		{
			name:          "Invalid duration",
			configContent: `{"read_timeout": "soon"}`,
			shouldError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var filename string

			if tt.configContent != "" {
				tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.json")
				if err != nil {
					t.Fatalf("Cannot create temp file: %v", err)
				}
				if _, err := tmpfile.Write([]byte(tt.configContent)); err != nil {
					t.Fatalf("Cannot write to temp file: %v", err)
				}
				tmpfile.Close()

				filename = tmpfile.Name()
			}

			config, err := loadJSONConfig(filename)

			if tt.shouldError {
				if err == nil {
					t.Error("Expected error, but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if !compareJSONConfigs(config, tt.expectedConfig) {
				t.Errorf("Config mismatch.\nExpected: %+v\nGot: %+v", tt.expectedConfig, config)
			}
		})
	}
}

func TestApplyJSONConfig(t *testing.T) {
	cfg := Default()
	cfg.EnablePprof = "true"

	cfg.applyJSONConfig(&JSONConfig{
		ServerAddress:    stringPtr("localhost:9090"),
		GeminiBaseURL:    stringPtr("http://stub"),
		GeminiAPIVersion: stringPtr("v1"),
		GeminiModel:      stringPtr("gemini-custom"),
		LogLevel:         stringPtr("error"),
		EnableHTTPS:      boolPtr(true),
		TLSCertFile:      stringPtr("custom.crt"),
		TLSKeyFile:       stringPtr("custom.key"),
		EnablePprof:      boolPtr(false),
		ReadTimeout:      stringPtr("3s"),
		IdleTimeout:      stringPtr("1m"),
	})

	if cfg.ServerAddress != "localhost:9090" {
		t.Errorf("Expected ServerAddress 'localhost:9090', got '%s'", cfg.ServerAddress)
	}
	if cfg.GeminiBaseURL != "http://stub" {
		t.Errorf("Expected GeminiBaseURL 'http://stub', got '%s'", cfg.GeminiBaseURL)
	}
	if cfg.GeminiAPIVersion != "v1" {
		t.Errorf("Expected GeminiAPIVersion 'v1', got '%s'", cfg.GeminiAPIVersion)
	}
	if cfg.GeminiModel != "gemini-custom" {
		t.Errorf("Expected GeminiModel 'gemini-custom', got '%s'", cfg.GeminiModel)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("Expected LogLevel 'error', got '%s'", cfg.LogLevel)
	}
	if cfg.EnableHTTPS != "true" {
		t.Errorf("Expected EnableHTTPS 'true', got '%s'", cfg.EnableHTTPS)
	}
	if cfg.TLSCertFile != "custom.crt" || cfg.TLSKeyFile != "custom.key" {
		t.Errorf("Unexpected TLS files: %s, %s", cfg.TLSCertFile, cfg.TLSKeyFile)
	}
	if cfg.EnablePprof != "" {
		t.Errorf("Expected EnablePprof to be disabled, got '%s'", cfg.EnablePprof)
	}
	if cfg.ReadTimeout != 3*time.Second {
		t.Errorf("Expected ReadTimeout 3s, got %v", cfg.ReadTimeout)
	}
	if cfg.IdleTimeout != time.Minute {
		t.Errorf("Expected IdleTimeout 1m, got %v", cfg.IdleTimeout)
	}
	if cfg.WriteTimeout != 5*time.Minute {
		t.Errorf("Expected WriteTimeout to keep default 5m, got %v", cfg.WriteTimeout)
	}
}

func TestJSONConfigFileNotFound(t *testing.T) {
	config, err := loadJSONConfig("/nonexistent/config.json")
	if err != nil {
		t.Errorf("Expected no error for nonexistent file, got: %v", err)
	}
	if config == nil {
		t.Error("Expected empty config, got nil")
	}
}

// Вспомогательные функции

func stringPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func compareJSONConfigs(a, b *JSONConfig) bool {
	aJSON, _ := json.Marshal(a)
	bJSON, _ := json.Marshal(b)
	return string(aJSON) == string(bJSON)
}
