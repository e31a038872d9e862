package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	Storage StorageConfig
	Quiz    QuizConfig
	Session SessionConfig
	Redis   RedisConfig
	Matcher MatcherConfig
}

type ServerConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type LLMConfig struct {
	Provider       string
	MistralAPIKey  string
	MistralModel   string
	MistralBaseURL string
	GeminiAPIKey   string
	GeminiModel    string
	Temperature    float32
	MaxTokens      int
	Timeout        time.Duration
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type QuizConfig struct {
	SkillLimit         int
	QuestionCount      int
	AllowedEmailDomain string
}

type SessionConfig struct {
	Backend      string
	TTL          time.Duration
	CookieSecure bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type MatcherConfig struct {
	SimilarityMode string
	RosterPath     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:     getEnv("PORT", "3000"),
			Env:      getEnv("ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", "debug"),
		},
		LLM: LLMConfig{
			Provider:       strings.ToLower(getEnv("LLM_PROVIDER", "mistral")),
			MistralAPIKey:  getEnv("MISTRAL_API_KEY", ""),
			MistralModel:   getEnv("MISTRAL_MODEL", "mistral-small"),
			MistralBaseURL: getEnv("MISTRAL_BASE_URL", "https://api.mistral.ai/v1"),
			GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
			GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature:    getEnvAsFloat32("LLM_TEMPERATURE", 0.2),
			MaxTokens:      getEnvAsInt("LLM_MAX_TOKENS", 1000),
			Timeout:        getEnvAsDuration("LLM_TIMEOUT", "40s"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Quiz: QuizConfig{
			SkillLimit:         getEnvAsInt("QUIZ_SKILL_LIMIT", 3),
			QuestionCount:      getEnvAsInt("QUIZ_QUESTION_COUNT", 5),
			AllowedEmailDomain: strings.ToLower(getEnv("ALLOWED_EMAIL_DOMAIN", "@cmrit.ac.in")),
		},
		Session: SessionConfig{
			Backend:      strings.ToLower(getEnv("SESSION_BACKEND", "memory")),
			TTL:          getEnvAsDuration("SESSION_TTL", "2h"),
			CookieSecure: getEnvAsBool("COOKIE_SECURE", false),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Matcher: MatcherConfig{
			SimilarityMode: strings.ToLower(getEnv("SIMILARITY_MODE", "auto")),
			RosterPath:     getEnv("ROSTER_PATH", ""),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
