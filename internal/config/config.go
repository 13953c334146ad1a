package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Address            string `env:"RUN_ADDRESS"`
	DatabaseURI        string `env:"DATABASE_URI"`
	Secret             string `env:"SECRET"`
	TokenName          string `env:"TOKEN_NAME"`
	OperatorWebhookURL string `env:"OPERATOR_WEBHOOK_URL"`
	OperatorEmail      string `env:"OPERATOR_EMAIL"`
}

func NewConfig() *Config {
	config := &Config{}

	flag.StringVar(&config.Address, "a", "localhost:7000", "Address and port to run the service")
	flag.StringVar(&config.DatabaseURI, "d", "user=postgres password=postgres host=localhost database=pipsmade sslmode=disable", "Database connection string")
	flag.StringVar(&config.Secret, "s", "supersecretkey", "Secret for JWT")
	flag.StringVar(&config.TokenName, "t", "token", "Enter token name Or use TOKEN_NAME env")
	flag.StringVar(&config.OperatorWebhookURL, "w", "", "Operator notification webhook endpoint, empty disables outbound notifications")
	flag.StringVar(&config.OperatorEmail, "e", "support@pipsmade.com", "Operator mailbox notified about new requests")

	if err := env.Parse(config); err != nil {
		fmt.Printf("%+v\n", err)
	}

	return config
}
