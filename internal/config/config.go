package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderTogether = "together"
	ProviderGemini   = "gemini"

	defaultTogetherModel = "meta-llama/Llama-3-70b-chat-hf"
	defaultGeminiModel   = "gemini-2.0-flash"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Upstream provider
	Provider       string
	TogetherAPIKey string
	TogetherAPIURL string
	GeminiAPIKey   string
	Model          string
	Temperature    float64
	MaxTokens      int

	// Site
	FrontendURL string
	StaticDir   string

	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	provider := strings.ToLower(getEnvOrDefault("RELAY_PROVIDER", ProviderTogether))

	cfg := &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		Env:            getEnvOrDefault("ENV", "development"),
		Provider:       provider,
		TogetherAPIKey: os.Getenv("TOGETHER_API_KEY"),
		TogetherAPIURL: getEnvOrDefault("TOGETHER_API_URL", "https://api.together.xyz/v1"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		Model:          getEnvOrDefault("CHAT_MODEL", defaultModel(provider)),
		Temperature:    getEnvAsFloatOrDefault("CHAT_TEMPERATURE", 0.7),
		MaxTokens:      getEnvAsIntOrDefault("CHAT_MAX_TOKENS", 1000),
		FrontendURL:    getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		StaticDir:      os.Getenv("STATIC_DIR"),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:      getEnvOrDefault("LOG_FORMAT", "json"),
		LogFile:        os.Getenv("LOG_FILE"),
	}

	return cfg
}

// APIKey returns the credential for the selected provider. Empty means the
// relay is not configured.
func (c *Config) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.TogetherAPIKey
}

func defaultModel(provider string) string {
	if provider == ProviderGemini {
		return defaultGeminiModel
	}
	return defaultTogetherModel
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsFloatOrDefault(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}
