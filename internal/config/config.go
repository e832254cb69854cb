package config

import (
	"os"

	errorsUtils "github.com/Egor213/PgDash/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		PG         `yaml:"postgres"`
		HTTP       `yaml:"http"`
		Prometheus `yaml:"prometheus"`
		Kafka      `yaml:"kafka"`
		Dashboard  `yaml:"dashboard"`
		Servers    []Server `yaml:"servers"`
	}

	App struct {
		Name    string `yaml:"name" env-required:"true"`
		Version string `yaml:"version" env-required:"true"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	}

	PG struct {
		MaxPoolSize int    `env-required:"true" env:"MAX_POOL_SIZE" yaml:"max_pool_size"`
		URL         string `env-required:"true" env:"PG_URL" yaml:"url"`
	}

	HTTP struct {
		Port string `env-required:"true" yaml:"port" env:"HTTP_PORT"`
	}

	Prometheus struct {
		Port string `env-required:"true" yaml:"port" env:"PROMETHEUS_PORT"`
	}

	Kafka struct {
		Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"long_running_queries"`
	}

	Dashboard struct {
		// LogPageSize is the number of bytes read from the server log per page.
		LogPageSize          int    `yaml:"log_page_size" env:"ON_DEMAND_LOG_COUNT" env-default:"10000"`
		LongRunningThreshold string `yaml:"long_running_query_threshold" env:"LONG_RUNNING_QUERY_THRESHOLD" env-default:"2|5"`
		ServerPoolSize       int    `yaml:"server_pool_size" env:"SERVER_POOL_SIZE" env-default:"2"`
	}

	Server struct {
		ID   int    `yaml:"id"`
		Name string `yaml:"name"`
		URL  string `yaml:"url"`
	}
)

const (
	ENV_PATH            = "infra/.env.dev"
	DEFAULT_CONFIG_PATH = "infra/config.yaml"
)

func New() (*Config, error) {
	if err := godotenv.Load(ENV_PATH); err != nil {
		log.WithField("path", ENV_PATH).Debugf("Env file is not loaded: %v", err)
	}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = DEFAULT_CONFIG_PATH
	}

	return Load(pathToConfig)
}

func Load(pathToConfig string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(pathToConfig, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}
