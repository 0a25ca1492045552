package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	CORSOrigins string
	BodyLimitMB int
	LogFormat   string
	Timezone    *time.Location

	LLMProvider string
	OllamaURL   string
	OllamaModel string
	LLMTimeout  time.Duration

	SpeechProvider        string
	GoogleCredentialsFile string
	SpeechLanguage        string

	CatalogFile string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	timeout, err := time.ParseDuration(getEnv("LLM_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_TIMEOUT: %w", err)
	}

	bodyLimit, err := strconv.Atoi(getEnv("BODY_LIMIT_MB", "25"))
	if err != nil || bodyLimit <= 0 {
		return nil, fmt.Errorf("invalid BODY_LIMIT_MB %q", os.Getenv("BODY_LIMIT_MB"))
	}

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		BodyLimitMB: bodyLimit,
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Timezone:    loc,

		LLMProvider: strings.ToLower(getEnv("LLM_PROVIDER", "ollama")),
		OllamaURL:   getEnv("OLLAMA_URL", "http://localhost:11434/api/chat"),
		OllamaModel: getEnv("OLLAMA_MODEL", "qwen2.5:0.5b"),
		LLMTimeout:  timeout,

		SpeechProvider:        strings.ToLower(getEnv("SPEECH_PROVIDER", "none")),
		GoogleCredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		SpeechLanguage:        getEnv("SPEECH_LANGUAGE", "en-US"),

		CatalogFile: getEnv("CATALOG_FILE", ""),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
