package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API      APIConfig
	Cache    CacheConfig
	Log      LogConfig
	Reminder ReminderConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CacheConfig struct {
	Path string
}

type LogConfig struct {
	Level    string
	Encoding string
}

type ReminderConfig struct {
	Lead      time.Duration
	DailySpec string
}

func LoadConfig() *Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Parse HTTP timeout
	timeoutSeconds, _ := strconv.Atoi(getEnv("API_TIMEOUT_SECONDS", "30"))

	// Parse reminder lead time
	leadMinutes, _ := strconv.Atoi(getEnv("REMINDER_LEAD_MINUTES", "60"))

	return &Config{
		API: APIConfig{
			BaseURL: getEnv("API_URL", "http://127.0.0.1:8000"),
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		Cache: CacheConfig{
			Path: getEnv("CACHE_PATH", defaultCachePath()),
		},
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Encoding: getEnv("LOG_ENCODING", "console"),
		},
		Reminder: ReminderConfig{
			Lead:      time.Duration(leadMinutes) * time.Minute,
			DailySpec: getEnv("REMINDER_DAILY_SPEC", "0 9 * * *"),
		},
	}
}

func defaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".taskcli", "cache.db")
	}
	return filepath.Join(home, ".taskcli", "cache.db")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
