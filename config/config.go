package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log      LogConfig      `yaml:"log"`
	Bookings BookingsConfig `yaml:"bookings"`
	Cards    CardsConfig    `yaml:"cards"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type BookingsConfig struct {
	Path string `yaml:"path"`
}

type CardsConfig struct {
	Print        bool `yaml:"print"`
	Publish      bool `yaml:"publish"`
	Cache        bool `yaml:"cache"`
	CacheTTL     int  `yaml:"cache_ttl_seconds"`
	PublishRetry int  `yaml:"publish_retries"`
}

func (c CardsConfig) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers    []string `yaml:"brokers"`
	CardsTopic string   `yaml:"cards_topic"`
	GroupID    string   `yaml:"group_id"`
}

func Default() Config {
	return Config{
		Log:      LogConfig{Level: "info"},
		Bookings: BookingsConfig{Path: "bookings.csv"},
		Cards: CardsConfig{
			Print:        true,
			CacheTTL:     300,
			PublishRetry: 3,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Kafka: KafkaConfig{
			Brokers:    []string{"localhost:9092"},
			CardsTopic: "boarding-cards",
			GroupID:    "card-printer",
		},
	}
}

// LoadConfig reads path over the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Cards.Publish {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("invalid config: kafka.brokers is required to publish cards")
		}
		if c.Kafka.CardsTopic == "" {
			return fmt.Errorf("invalid config: kafka.cards_topic is required to publish cards")
		}
	}
	if c.Cards.Cache && c.Redis.Addr == "" {
		return fmt.Errorf("invalid config: redis.addr is required to cache cards")
	}
	if c.Cards.CacheTTL < 0 {
		return fmt.Errorf("invalid config: cards.cache_ttl_seconds must not be negative")
	}
	return nil
}
