package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string        `mapstructure:"PORT"`
	Env            string        `mapstructure:"ENV"`
	DatabaseURL    string        `mapstructure:"DATABASE_URL"`
	DBMaxOpenConns int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	AutoMigrate    bool          `mapstructure:"AUTO_MIGRATE"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	LogFormat      string        `mapstructure:"LOG_FORMAT"`
	AppName        string        `mapstructure:"APP_NAME"`
	CORSOrigins    []string      `mapstructure:"CORS_ORIGINS"`
	LLMAPIKey      string        `mapstructure:"LLM_API_KEY"`
	LLMBaseURL     string        `mapstructure:"LLM_BASE_URL"`
	LLMModel       string        `mapstructure:"LLM_MODEL"`
	LLMTemperature float32       `mapstructure:"LLM_TEMPERATURE"`
	LLMTimeout     time.Duration `mapstructure:"LLM_TIMEOUT"`
}

var keys = []string{
	"PORT", "ENV", "DATABASE_URL", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	"AUTO_MIGRATE", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME", "CORS_ORIGINS",
	"LLM_API_KEY", "LLM_BASE_URL", "LLM_MODEL", "LLM_TEMPERATURE", "LLM_TIMEOUT",
}

// Load lee .env (si existe) y luego el entorno; el entorno gana.
// DATABASE_URL vacío no es error: el router cae a storage in-memory.
// LLM_API_KEY vacío tampoco: el análisis de riesgo queda deshabilitado.
func Load() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "dental-clinical-records")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("LLM_MODEL", "gpt-4o-mini")
	v.SetDefault("LLM_TEMPERATURE", 0.7)
	v.SetDefault("LLM_TIMEOUT", "30s")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env es opcional, pero si existe tiene que poder leerse.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// El hook de viper parte por coma pero no recorta espacios.
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))

	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.LLMAPIKey = strings.TrimSpace(cfg.LLMAPIKey)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DBMaxOpenConns < 0 || c.DBMaxIdleConns < 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS and DB_MAX_IDLE_CONNS must not be negative")
	}
	// El cliente omite temperature == 0 del request (omitempty) y el servidor
	// aplicaría su default, así que 0 no se acepta.
	if c.LLMTemperature <= 0 || c.LLMTemperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be greater than 0 and at most 2, got %v", c.LLMTemperature)
	}
	if c.LLMTimeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive, got %s", c.LLMTimeout)
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// UsesPostgres indica si hay DSN; si no, el router usa repos in-memory.
func (c *Config) UsesPostgres() bool {
	return c.DatabaseURL != ""
}

// NarrativeEnabled indica si hay credencial para el servicio de texto.
func (c *Config) NarrativeEnabled() bool {
	return c.LLMAPIKey != ""
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
