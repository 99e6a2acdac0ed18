package config

import (
	"os"
	"strconv"
	"time"
)

// Config contiene la configuración del servidor de administración.
type Config struct {
	ServerPort       string
	APIBaseURL       string
	APITimeout       time.Duration
	CORSAllowOrigins string
	LogLevel         string
	LogFormat        string
}

// LoadConfig carga la configuración desde variables de entorno con
// valores por defecto. El almacén remoto de personas se configura con
// API_BASE_URL; no hay ningún otro estado externo.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		APIBaseURL:       getEnv("API_BASE_URL", "https://fi.jcaguilar.dev/v1/escuela/persona"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "console"),
	}

	segundos := 30
	if v, err := strconv.Atoi(getEnv("API_TIMEOUT_SECONDS", "30")); err == nil && v > 0 {
		segundos = v
	}
	cfg.APITimeout = time.Duration(segundos) * time.Second

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
