package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	DatabaseURL  string `envconfig:"database_url" default:""`
	Port         string `envconfig:"port" default:"8080"`
	RabbitUser   string `envconfig:"rabbit_user" default:"user"`
	RabbitPass   string `envconfig:"rabbit_pass" default:"password"`
	RabbitHost   string `envconfig:"rabbit_host" default:"localhost"`
	RabbitPort   string `envconfig:"rabbit_port" default:"5672"`
	MailHost     string `envconfig:"mail_host"`
	MailPort     int    `envconfig:"mail_port" default:"587"`
	MailUser     string `envconfig:"mail_user"`
	MailPass     string `envconfig:"mail_pass"`
	CORSOrigins  string `envconfig:"cors_origins" default:"http://localhost:5173"`
	LeadAPIToken string `envconfig:"lead_api_token"`
}

func NewLoadedConfig() (*Config, error) {
	godotenv.Load()

	var c Config
	err := envconfig.Process("leads", &c)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &c, nil
}
