package config

import (
	"fmt"
	"log"
	"os"
)

type Config struct {
	Port          string
	DBDriver      string // postgres | sqlite
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	SQLitePath    string
	JWTSecret     string
	AdminPassword string
	CORSOrigins   string
	LogFile       string
}

func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "abm_productos"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		SQLitePath:    getEnv("SQLITE_PATH", "catalogo.db"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
		LogFile:       getEnv("LOG_FILE", ""),
	}

	if cfg.JWTSecret == "changeme" {
		log.Println("[warn] JWT_SECRET is the development default, set a real secret in production")
	}
	if cfg.AdminPassword == "admin123" {
		log.Println("[warn] ADMIN_PASSWORD is the development default, set a real password in production")
	}
	log.Printf("[config] PORT=%s DB_DRIVER=%s DB_HOST=%s DB_NAME=%s", cfg.Port, cfg.DBDriver, cfg.DBHost, cfg.DBName)
	return cfg
}

// DSN builds the connection string for the configured driver.
func (c Config) DSN() string {
	if c.DBDriver == "postgres" {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
	}
	return c.SQLitePath
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
