package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// BOT_BASE_URL points at a running bot, e.g. http://localhost:3000
	BotBaseURL  string `envconfig:"BOT_BASE_URL"`
	VerifyToken string `envconfig:"VERIFY_TOKEN" default:"dev-verify-token"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
