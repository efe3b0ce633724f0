package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const envProduction = "production"

var ErrSimulatedInProduction = errors.New("channel api key is required in production")

// Partner holds the configuration of one OTA adapter.
type Partner struct {
	Enable        bool              `envconfig:"ENABLE"`
	Source        string            `envconfig:"SOURCE"`
	IDPrefix      string            `envconfig:"ID_PREFIX"`
	RoomTable     map[string]string `envconfig:"ROOM_TABLE"`
	MaxOccupancy  map[string]int    `envconfig:"MAX_OCCUPANCY"`
	MarkupPercent int               `envconfig:"MARKUP_PERCENT"`
	// Granularity is the price rounding step in minor units, 100 rounds to whole currency units.
	Granularity int64 `envconfig:"GRANULARITY"`
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Channel struct {
		System             string `envconfig:"SYSTEM"              default:"channex"`
		BaseURL            string `envconfig:"BASE_URL"`
		APIKey             string `envconfig:"API_KEY"`
		PropertyID         string `envconfig:"PROPERTY_ID"`
		Currency           string `envconfig:"CURRENCY"            default:"USD"`
		TimeoutSeconds     int    `envconfig:"TIMEOUT_SECONDS"     default:"15"`
		RateLimitPerSecond int    `envconfig:"RATE_LIMIT_PER_SECOND" default:"10"`
		WebhookSecret      string `envconfig:"WEBHOOK_SECRET"`
	} `envconfig:"CHANNEL"`

	Sync struct {
		ImportIntervalSeconds int `envconfig:"IMPORT_INTERVAL_SECONDS"`
		ImportPageLimit       int `envconfig:"IMPORT_PAGE_LIMIT"       default:"100"`
		RateHorizonDays       int `envconfig:"RATE_HORIZON_DAYS"       default:"365"`
		LockTTLSeconds        int `envconfig:"LOCK_TTL_SECONDS"        default:"60"`
	} `envconfig:"SYNC"`

	OTA struct {
		Airbnb Partner `envconfig:"AIRBNB"`
		Agoda  Partner `envconfig:"AGODA"`
	} `envconfig:"OTA"`

	Kafka struct {
		Brokers         []string `envconfig:"BROKERS"`
		ConsumerGroup   string   `envconfig:"CONSUMER_GROUP"`
		ChangeFeedTopic string   `envconfig:"CHANGE_FEED_TOPIC"`
		SASL            struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			Region          string `envconfig:"REGION"`
			Endpoint        string `envconfig:"ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

// Simulated reports whether the channel client runs without a real API key.
func (c *Config) Simulated() bool {
	return c.Channel.APIKey == ""
}

// Validate rejects configurations that must never reach a running deployment.
func (c *Config) Validate() error {
	if c.Server.Env == envProduction && c.Simulated() {
		return ErrSimulatedInProduction
	}

	return nil
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		if err = conf.Validate(); err != nil {
			log.Fatal().Err(err).Msg("Invalid service configuration")
		}

		initialized = true

		log.Info().Bool("simulated", conf.Simulated()).Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	return nil
}

// Get returns the process configuration. Only the composition root calls it, every component
// receives the *Config through its constructor.
func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized with warnings")
		}
	}

	return &conf
}
