package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// JSONConfig описывает JSON файл конфигурации. Отсутствующие поля не меняют значений.
type JSONConfig struct {
	ServerAddress    *string `json:"server_address,omitempty"`
	GeminiBaseURL    *string `json:"gemini_base_url,omitempty"`
	GeminiAPIVersion *string `json:"gemini_api_version,omitempty"`
	GeminiModel      *string `json:"gemini_model,omitempty"`
	LogLevel         *string `json:"log_level,omitempty"`
	EnableHTTPS      *bool   `json:"enable_https,omitempty"`
	TLSCertFile      *string `json:"tls_cert_file,omitempty"`
	TLSKeyFile       *string `json:"tls_key_file,omitempty"`
	EnablePprof      *bool   `json:"enable_pprof,omitempty"`
	ReadTimeout      *string `json:"read_timeout,omitempty"`
	WriteTimeout     *string `json:"write_timeout,omitempty"`
	IdleTimeout      *string `json:"idle_timeout,omitempty"`
	ShutdownTimeout  *string `json:"shutdown_timeout,omitempty"`
}

// loadJSONConfig читает JSON файл. Пустое имя или отсутствующий файл дают пустую конфигурацию.
func loadJSONConfig(filename string) (*JSONConfig, error) {
	cfg := &JSONConfig{}
	if filename == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file %s: %w", filename, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", filename, err)
	}

	for name, raw := range map[string]*string{
		"read_timeout":     cfg.ReadTimeout,
		"write_timeout":    cfg.WriteTimeout,
		"idle_timeout":     cfg.IdleTimeout,
		"shutdown_timeout": cfg.ShutdownTimeout,
	} {
		if raw == nil {
			continue
		}
		if _, err := time.ParseDuration(*raw); err != nil {
			return nil, fmt.Errorf("invalid %s in %s: %w", name, filename, err)
		}
	}

	return cfg, nil
}

// applyJSONConfig переносит заданные в JSON значения в конфигурацию
func (c *Config) applyJSONConfig(j *JSONConfig) {
	if j == nil {
		return
	}
	setString(&c.ServerAddress, j.ServerAddress)
	setString(&c.GeminiBaseURL, j.GeminiBaseURL)
	setString(&c.GeminiAPIVersion, j.GeminiAPIVersion)
	setString(&c.GeminiModel, j.GeminiModel)
	setString(&c.LogLevel, j.LogLevel)
	setString(&c.TLSCertFile, j.TLSCertFile)
	setString(&c.TLSKeyFile, j.TLSKeyFile)
	setBool(&c.EnableHTTPS, j.EnableHTTPS)
	setBool(&c.EnablePprof, j.EnablePprof)
	setDuration(&c.ReadTimeout, j.ReadTimeout)
	setDuration(&c.WriteTimeout, j.WriteTimeout)
	setDuration(&c.IdleTimeout, j.IdleTimeout)
	setDuration(&c.ShutdownTimeout, j.ShutdownTimeout)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// setBool хранит флаг в строковом виде, как и переменные окружения
func setBool(dst *string, v *bool) {
	if v == nil {
		return
	}
	if *v {
		*dst = "true"
	} else {
		*dst = ""
	}
}

// setDuration применяет значение, уже проверенное в loadJSONConfig
func setDuration(dst *time.Duration, v *string) {
	if v == nil {
		return
	}
	if d, err := time.ParseDuration(*v); err == nil {
		*dst = d
	}
}
