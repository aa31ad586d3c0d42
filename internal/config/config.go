package config

import (
	"os"

	"github.com/hakuramasam/arcade-gmmc/internal/logger"
)

type Config struct {
	Port              string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	CORSAllowedOrigin string
}

// LoadConfig charge la configuration depuis les variables d'environnement
// avec des valeurs par défaut adaptées au développement local.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "arcade"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
	}

	if os.Getenv("DB_PASSWORD") == "" {
		logger.Warning("DB_PASSWORD non défini, utilisation de la valeur par défaut")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
