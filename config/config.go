package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds agent settings.
type Config struct {
	NetworkInterface string
	SampleInterval   time.Duration
	ServerAddress    string
	Token            string
	SendInterval     time.Duration
	PingEnabled      bool
	PingPrivileged   bool
	DockerEnabled    bool
}

// Load reads settings from a .env file if present, then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		NetworkInterface: getEnv("NETWORK_INTERFACE", ""),
		SampleInterval:   time.Duration(getInt("SAMPLE_INTERVAL_MS", 500, 1)) * time.Millisecond,
		ServerAddress:    getEnv("SERVER_ADDRESS", ""),
		Token:            getEnv("TOKEN", ""),
		SendInterval:     time.Duration(getInt("SEND_INTERVAL_SECONDS", 10, 1)) * time.Second,
		PingEnabled:      getBool("PING_ENABLED", true),
		PingPrivileged:   getBool("PING_PRIVILEGED", false),
		DockerEnabled:    getBool("DOCKER_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getInt falls back when the value is missing, malformed or below min.
func getInt(key string, fallback, min int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n < min {
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return b
}
