package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultAuthor = "شاعرة الحب — خديجة هرموش"

type Config struct {
	HTTPAddr       string
	DatabaseURL    string
	DBMaxOpenConns int

	// APIKey guards every /api route. Empty means the API answers 500.
	APIKey string

	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	AudioDir   string
	TrustProxy bool

	VisitorTokenSecret string
	DefaultAuthor      string

	AppEnv   string
	LogLevel string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":5000"),
		DatabaseURL:          mustGetenv("DATABASE_URL"),
		DBMaxOpenConns:       getenvInt("DB_MAX_OPEN_CONNS", 10),
		APIKey:               getenv("API_KEY", ""),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		AudioDir:             getenv("AUDIO_DIR", "./audio"),
		TrustProxy:           getenv("TRUST_PROXY", "false") == "true",
		VisitorTokenSecret:   getenv("VISITOR_TOKEN_SECRET", ""),
		DefaultAuthor:        getenv("DEFAULT_AUTHOR", defaultAuthor),
		AppEnv:               getenv("APP_ENV", "production"),
		LogLevel:             getenv("LOG_LEVEL", "info"),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	n, err := strconv.Atoi(getenv(key, ""))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func mustGetenv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic("missing env: " + key)
	}
	return v
}
