package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider string `mapstructure:"provider"`
	Region   string `mapstructure:"region"`
	Bucket   string `mapstructure:"bucket"`
}

type Config struct {
	HTTPAddr           string   `mapstructure:"http_addr"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`

	// Storage selects the entity store backend: "memory" or "postgres".
	Storage     string `mapstructure:"storage"`
	PostgresDSN string `mapstructure:"postgres_dsn"`

	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisCacheTTL time.Duration `mapstructure:"redis_cache_ttl"`

	KafkaEnabled     bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList  string `mapstructure:"kafka_broker_list"`
	KafkaTopic       string `mapstructure:"kafka_topic"`
	SessionTimeoutMs int    `mapstructure:"session_timeout_ms"`

	// MockLatency delays every service call before it touches the store,
	// imitating a remote backend. Zero disables it.
	MockLatency time.Duration `mapstructure:"mock_latency"`

	ExportDestination string             `mapstructure:"export_destination"` // "local" or "s3"
	ExportPath        string             `mapstructure:"export_path"`
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`

	Seed                  int    `mapstructure:"seed"`
	SeedRestaurants       int    `mapstructure:"seed_restaurants"`
	SeedMenuItemsPerPlace int    `mapstructure:"seed_menu_items_per_place"`
	SeedAddresses         int    `mapstructure:"seed_addresses"`
	TrackingBaseURL       string `mapstructure:"tracking_base_url"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("http_addr", ":8080")
	viper.SetDefault("storage", "memory")
	viper.SetDefault("kafka_topic", "quickbite.events")
	viper.SetDefault("export_destination", "local")
	viper.SetDefault("export_path", "orders.parquet")
	viper.SetDefault("tracking_base_url", "http://localhost:8080/orders")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
