package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Storage    Storage    `yaml:"storage"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Redis      Redis      `yaml:"redis"`
	Session    Session    `yaml:"session"`
	Mailer     Mailer     `yaml:"mailer"`
	App        App        `yaml:"app"`
}

// Storage selects the persistence backend: "postgres" or "memory".
type Storage struct {
	Kind string `yaml:"kind" env:"STORAGE_KIND" env-default:"postgres"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"home_rental"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout         time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

// Redis.Embedded starts an in-process server instead of dialing Address.
// Only meant for local runs.
type Redis struct {
	Address  string `yaml:"address" env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	Embedded bool   `yaml:"embedded" env:"REDIS_EMBEDDED" env-default:"false"`
}

type Session struct {
	CookieName string        `yaml:"cookie_name" env-default:"session_id"`
	TTL        time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"24h"`
	Secure     bool          `yaml:"secure" env:"SESSION_SECURE" env-default:"false"`
}

// Mailer.Transport is one of "smtp", "gmail", "api" or "log".
type Mailer struct {
	Transport string        `yaml:"transport" env:"MAILER_TRANSPORT" env-default:"log"`
	From      string        `yaml:"from" env:"MAILER_FROM" env-default:"no-reply@homerental.local"`
	FromName  string        `yaml:"from_name" env-default:"Home Rental"`
	Timeout   time.Duration `yaml:"timeout" env-default:"10s"`
	SMTP      SMTP          `yaml:"smtp"`
	Gmail     Gmail         `yaml:"gmail"`
	API       MailAPI       `yaml:"api"`
}

type SMTP struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	User     string `yaml:"user" env:"SMTP_USER"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
}

type Gmail struct {
	User         string `yaml:"user" env:"SMTP_USER"`
	ClientID     string `yaml:"client_id" env:"GMAIL_CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"GMAIL_CLIENT_SECRET"`
	RefreshToken string `yaml:"refresh_token" env:"GMAIL_REFRESH_TOKEN"`
}

type MailAPI struct {
	Endpoint string `yaml:"endpoint" env:"MAIL_API_ENDPOINT"`
	Key      string `yaml:"key" env:"MAIL_API_KEY"`
}

type App struct {
	BaseURL string `yaml:"base_url" env:"APP_BASE_URL" env-default:"http://localhost:8080"`
}

func MustLoad() *Config {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
