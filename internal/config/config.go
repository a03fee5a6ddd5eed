package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"

	"github.com/InQaaaaGit/subrelay/internal/gemini"
)

// Config хранит конфигурацию приложения.
type Config struct {
	ServerAddress    string `env:"SERVER_ADDRESS"`     // Адрес для запуска HTTP-сервера
	GeminiBaseURL    string `env:"GEMINI_BASE_URL"`    // Базовый адрес Gemini API
	GeminiAPIVersion string `env:"GEMINI_API_VERSION"` // Версия Gemini API
	GeminiModel      string `env:"GEMINI_MODEL"`       // Модель для перевода
	LogLevel         string `env:"LOG_LEVEL"`          // Уровень логирования zap
	EnableHTTPS      string `env:"ENABLE_HTTPS"`       // Непустое значение включает HTTPS
	TLSCertFile      string `env:"TLS_CERT_FILE"`      // Путь к сертификату
	TLSKeyFile       string `env:"TLS_KEY_FILE"`       // Путь к приватному ключу
	EnablePprof      string `env:"ENABLE_PPROF"`       // Непустое значение монтирует /debug/pprof
	ConfigFile       string `env:"CONFIG"`             // Путь к JSON файлу конфигурации

	ReadTimeout     time.Duration `env:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"` // Генерация 8192 токенов может идти минутами
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		ServerAddress:    ":8080",
		GeminiBaseURL:    gemini.DefaultBaseURL,
		GeminiAPIVersion: gemini.DefaultAPIVersion,
		GeminiModel:      gemini.DefaultModel,
		LogLevel:         "info",
		TLSCertFile:      "server.crt",
		TLSKeyFile:       "server.key",
		ReadTimeout:      10 * time.Second,
		WriteTimeout:     5 * time.Minute,
		IdleTimeout:      120 * time.Second,
		ShutdownTimeout:  30 * time.Second,
	}
}

// NewConfig инициализирует конфигурацию.
// Приоритет: значения по умолчанию < JSON файл < флаги < переменные окружения.
func NewConfig() (*Config, error) {
	cfg := Default()
	fromFlags := Default()

	// 1. Определение флагов командной строки
	flag.StringVar(&fromFlags.ServerAddress, "a", fromFlags.ServerAddress, "Адрес запуска HTTP-сервера (env: SERVER_ADDRESS)")
	flag.StringVar(&fromFlags.GeminiBaseURL, "g", fromFlags.GeminiBaseURL, "Базовый адрес Gemini API (env: GEMINI_BASE_URL)")
	flag.StringVar(&fromFlags.GeminiAPIVersion, "v", fromFlags.GeminiAPIVersion, "Версия Gemini API (env: GEMINI_API_VERSION)")
	flag.StringVar(&fromFlags.GeminiModel, "m", fromFlags.GeminiModel, "Модель Gemini (env: GEMINI_MODEL)")
	flag.StringVar(&fromFlags.LogLevel, "l", fromFlags.LogLevel, "Уровень логирования (env: LOG_LEVEL)")
	flag.StringVar(&fromFlags.EnableHTTPS, "s", fromFlags.EnableHTTPS, "Включить HTTPS (env: ENABLE_HTTPS)")
	flag.StringVar(&fromFlags.TLSCertFile, "cert", fromFlags.TLSCertFile, "Путь к TLS сертификату (env: TLS_CERT_FILE)")
	flag.StringVar(&fromFlags.TLSKeyFile, "key", fromFlags.TLSKeyFile, "Путь к TLS ключу (env: TLS_KEY_FILE)")
	flag.StringVar(&fromFlags.EnablePprof, "p", fromFlags.EnablePprof, "Включить /debug/pprof (env: ENABLE_PPROF)")
	flag.StringVar(&fromFlags.ConfigFile, "c", fromFlags.ConfigFile, "Путь к JSON файлу конфигурации (env: CONFIG)")

	// 2. Парсинг флагов командной строки
	flag.Parse()

	// 3. JSON файл (путь из флага или переменной окружения)
	configFile := fromFlags.ConfigFile
	if envFile, err := lookupConfigFileEnv(); err != nil {
		return nil, err
	} else if envFile != "" {
		configFile = envFile
	}
	jsonCfg, err := loadJSONConfig(configFile)
	if err != nil {
		return nil, err
	}
	cfg.applyJSONConfig(jsonCfg)
	cfg.ConfigFile = configFile

	// 4. Явно заданные флаги перекрывают JSON
	flag.Visit(func(f *flag.Flag) {
		cfg.applyFlag(f.Name, fromFlags)
	})

	// 5. Парсинг переменных окружения (имеет наивысший приоритет)
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// lookupConfigFileEnv читает только переменную CONFIG
func lookupConfigFileEnv() (string, error) {
	var c struct {
		ConfigFile string `env:"CONFIG"`
	}
	if err := env.Parse(&c); err != nil {
		return "", err
	}
	return c.ConfigFile, nil
}

// applyFlag переносит значение флага name из src в cfg
func (c *Config) applyFlag(name string, src *Config) {
	switch name {
	case "a":
		c.ServerAddress = src.ServerAddress
	case "g":
		c.GeminiBaseURL = src.GeminiBaseURL
	case "v":
		c.GeminiAPIVersion = src.GeminiAPIVersion
	case "m":
		c.GeminiModel = src.GeminiModel
	case "l":
		c.LogLevel = src.LogLevel
	case "s":
		c.EnableHTTPS = src.EnableHTTPS
	case "cert":
		c.TLSCertFile = src.TLSCertFile
	case "key":
		c.TLSKeyFile = src.TLSKeyFile
	case "p":
		c.EnablePprof = src.EnablePprof
	}
}

// IsHTTPSEnabled сообщает, нужно ли запускать HTTPS сервер
func (c *Config) IsHTTPSEnabled() bool {
	return c.EnableHTTPS != ""
}

// IsPprofEnabled сообщает, нужно ли монтировать /debug/pprof
func (c *Config) IsPprofEnabled() bool {
	return c.EnablePprof != ""
}

// GeminiOptions возвращает параметры клиента Gemini
func (c *Config) GeminiOptions() gemini.Options {
	return gemini.Options{
		BaseURL:    c.GeminiBaseURL,
		APIVersion: c.GeminiAPIVersion,
		Model:      c.GeminiModel,
	}
}
