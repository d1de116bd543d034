package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

// PostgresDSN assembles the postgres connection string from the
// DB_HOST/DB_USER/DB_PASSWORD/DB_NAME/DB_PORT/DB_SSLMODE variables.
func PostgresDSN(config map[string]string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		GetString(config, "DB_HOST", "localhost"),
		GetString(config, "DB_USER", "postgres"),
		GetString(config, "DB_PASSWORD", ""),
		GetString(config, "DB_NAME", "crewtrack"),
		GetString(config, "DB_PORT", "5432"),
		GetString(config, "DB_SSLMODE", "disable"),
	)
}

// SQLitePath returns the sqlite database file path, the development
// default backend.
func SQLitePath(config map[string]string) string {
	return GetString(config, "SQLITE_PATH", "crewtrack.db")
}
