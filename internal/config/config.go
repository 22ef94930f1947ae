package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort   string        `env:"APP_PORT" env-default:"8000"`
	JWTSecret string        `env:"JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" env-default:"24h"`
	UploadDir string        `env:"UPLOAD_DIR" env-default:"uploads"`
	NatsURL   string        `env:"NATS_URL" env-default:"nats://localhost:4222"`
	DB        DB
}

type DB struct {
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD" env-default:"postgres"`
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	Name     string `env:"DB_NAME" env-default:"shop"`
}

func (d DB) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name,
	)
}

// Load reads .env.dev when present and then the process environment. The
// returned struct is the only carrier of secrets and connection details;
// nothing reads os.Getenv after startup.
func Load() (*Config, error) {
	godotenv.Load(".env.dev")

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}
