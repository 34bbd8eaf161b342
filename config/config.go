package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Server configuration
	Server struct {
		// Port the HTTP API listens on
		Port string `env:"SERVER_PORT" envDefault:"5250"`

		// Path to the sqlite database file
		DBPath string `env:"DB_PATH" envDefault:"database/rentcompass.db"`

		// Optional JSON file of listings loaded when the store is empty
		SeedFile string `env:"SEED_FILE" envDefault:""`
	}

	// Engine configuration
	Engine struct {
		// Maximum number of comparables pulled per evaluation
		ComparableLimit int `env:"ENGINE_COMPARABLE_LIMIT" envDefault:"5"`

		// Store query timeout in milliseconds; on expiry the engine
		// falls back to the no-comparables path
		StoreTimeoutMS int `env:"ENGINE_STORE_TIMEOUT_MS" envDefault:"2000"`
	}

	// BatchProcessing configuration for listing ingestion
	BatchProcessing struct {
		// Maximum number of listings to accumulate before processing
		MaxBatchSize int `env:"BATCH_MAX_SIZE" envDefault:"100"`

		// Number of concurrent batch processors
		ProcessorCount int `env:"BATCH_PROCESSOR_COUNT" envDefault:"2"`

		// Maximum number of retries for failed batches
		MaxRetries int `env:"BATCH_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in seconds
		RetryDelay int `env:"BATCH_RETRY_DELAY" envDefault:"5"`
	}
}

func LoadConfig() (*Config, error) {
	loadEnvFiles(".env", ".env.local")
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
