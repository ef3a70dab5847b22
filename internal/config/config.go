package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	DBPath     string `env:"DB_PATH" envDefault:"/data/storefront.db"`

	// JWTSecret verifies bearer tokens minted by the identity provider.
	JWTSecret string `env:"JWT_SECRET,notEmpty"`

	// StorefrontOrigin is the origin allowed by CORS on the public checkout
	// endpoint. FrontendStoreURL is where the payment provider redirects the
	// shopper after checkout.
	StorefrontOrigin string `env:"STOREFRONT_ORIGIN" envDefault:"http://localhost:3001"`
	FrontendStoreURL string `env:"FRONTEND_STORE_URL" envDefault:"http://localhost:3001"`
	Currency         string `env:"CURRENCY" envDefault:"USD"`

	StripeAPIKey string `env:"STRIPE_API_KEY"`
	StripeAPIURL string `env:"STRIPE_API_URL" envDefault:"https://api.stripe.com"`

	// Image host credentials are optional; without them billboard image
	// cleanup is skipped.
	ImageHostURL    string `env:"IMAGE_HOST_URL"`
	ImageHostKey    string `env:"IMAGE_HOST_KEY"`
	ImageHostSecret string `env:"IMAGE_HOST_SECRET"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
