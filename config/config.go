package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	LLM      LLM
	Grading  Grading
	Session  Session
	Events   Events
	Log      Log
}

type Server struct {
	Port           string
	GinMode        string
	ReviewTimezone string
}

type Database struct {
	Driver   string // "postgres" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string // sqlite file path
}

type LLM struct {
	Provider        string
	OpenAIApiKey    string
	OpenAIModel     string
	GeminiApiKey    string
	GeminiModel     string
	AnthropicApiKey string
	AnthropicModel  string
	Timeout         time.Duration
	ExamName        string
}

type Grading struct {
	// Verify makes the server verdict override the client-supplied correctness flag.
	Verify bool
}

type Session struct {
	Secret string
	TTL    time.Duration
}

type Events struct {
	Publisher    string // "none", "gochannel" or "kafka"
	KafkaBrokers []string
	Topic        string
}

type Log struct {
	Level  string
	Format string
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("REVIEW_TIMEZONE", "Asia/Seoul")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_PATH", "quizreview.db")

	viper.SetDefault("LLM_PROVIDER", "openai")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-haiku-4-5-20251001")
	viper.SetDefault("LLM_TIMEOUT", "30s")
	viper.SetDefault("EXAM_NAME", "AWS SAA-C03")

	viper.SetDefault("GRADING_VERIFY", false)
	viper.SetDefault("SESSION_TTL", "720h")

	viper.SetDefault("EVENTS_PUBLISHER", "none")
	viper.SetDefault("KAFKA_BROKERS", "localhost:9092")
	viper.SetDefault("EVENTS_TOPIC", "quizreview.events")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")
}

func NewConfig() (*Config, error) {
	// .env is optional; real environment variables always win.
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded into environment")
	}

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Server.ReviewTimezone = viper.GetString("REVIEW_TIMEZONE")

	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.Path = viper.GetString("DATABASE_PATH")

	config.LLM.Provider = viper.GetString("LLM_PROVIDER")
	config.LLM.OpenAIApiKey = viper.GetString("OPENAI_API_KEY")
	config.LLM.OpenAIModel = viper.GetString("OPENAI_MODEL")
	config.LLM.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.LLM.GeminiModel = viper.GetString("GEMINI_MODEL")
	config.LLM.AnthropicApiKey = viper.GetString("ANTHROPIC_API_KEY")
	config.LLM.AnthropicModel = viper.GetString("ANTHROPIC_MODEL")
	config.LLM.Timeout = viper.GetDuration("LLM_TIMEOUT")
	config.LLM.ExamName = viper.GetString("EXAM_NAME")

	config.Grading.Verify = viper.GetBool("GRADING_VERIFY")

	config.Session.Secret = viper.GetString("JWT_SECRET")
	config.Session.TTL = viper.GetDuration("SESSION_TTL")

	config.Events.Publisher = viper.GetString("EVENTS_PUBLISHER")
	config.Events.KafkaBrokers = splitList(viper.GetString("KAFKA_BROKERS"))
	config.Events.Topic = viper.GetString("EVENTS_TOPIC")

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Format = viper.GetString("LOG_FORMAT")

	log.Info().
		Str("port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Str("llm_provider", config.LLM.Provider).
		Str("events", config.Events.Publisher).
		Msg("Config loaded")
	return &config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
