package configs

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8000"`
	DBSource string `envconfig:"DB_SOURCE" default:"redmango.db"`

	JWTSecret string `envconfig:"JWT_SECRET" default:"changeme"`

	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`
	PaymentCurrency string `envconfig:"PAYMENT_CURRENCY" default:"usd"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	UploadDir string `envconfig:"UPLOAD_DIR" default:"./uploads"`
}

func LoadConfig() (*Config, error) {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
