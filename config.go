package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	ListenAddr         string
	ReadHeaderTimeout  time.Duration
	ThemeFile          string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	RedisEventChannel  string
	ShutdownTimeout    time.Duration
	LogLevel           string
}

// loadDotEnv copies .env into the process environment without overriding
// variables that are already set. A missing file is reported but harmless.
func loadDotEnv() error {
	return godotenv.Load()
}

// loadConfig reads the process environment, then command-line flags.
// Flags win.
func loadConfig(args []string) (Config, error) {
	config := Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		ListenAddr:         getEnv("LISTEN_ADDR", ":4567"),
		ReadHeaderTimeout:  getEnvAsDuration("READ_HEADER_TIMEOUT", "10s"),
		ThemeFile:          getEnv("THEME_FILE", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvAsInt("REDIS_DB", "0"),
		RedisEventChannel:  getEnv("REDIS_EVENT_CHANNEL", "slack-relay-events"),
		ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", "5s"),
		LogLevel:           getEnv("LOG_LEVEL", "INFO"),
	}

	flags := pflag.NewFlagSet("rustreactor", pflag.ContinueOnError)
	flags.StringVar(&config.ListenAddr, "addr", config.ListenAddr, "address to serve the Slack events webhook on")
	flags.StringVar(&config.ThemeFile, "theme-file", config.ThemeFile, "YAML file overriding the built-in theme")
	flags.StringVar(&config.LogLevel, "log-level", config.LogLevel, "DEBUG, INFO, WARN or ERROR")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	return config, nil
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		val = defaultValue
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	// Bare integers are taken as seconds
	if i, err := strconv.Atoi(val); err == nil {
		return time.Duration(i) * time.Second
	}
	d, _ := time.ParseDuration(defaultValue)
	log.Printf("Unable to parse %s=%q as duration; using default %s", key, val, d)
	return d
}

func getEnvAsInt(key, defaultValue string) int {
	val := os.Getenv(key)
	if val == "" {
		val = defaultValue
	}
	if i, err := strconv.Atoi(val); err == nil {
		return i
	}
	// If parsing fails, try to parse the default value
	if i, err := strconv.Atoi(defaultValue); err == nil {
		log.Printf("Unable to parse %s=%q as int; using default %d", key, val, i)
		return i
	}
	log.Printf("Unable to parse %s=%q as int; defaulting to 0", key, val)
	return 0
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
