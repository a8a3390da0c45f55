// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/orderflow/core/config"
//
//	type QueueConfig struct {
//		QueueURL    string        `env:"ORDERS_QUEUE_URL,required"`
//		MaxMessages int32         `env:"ORDERS_QUEUE_MAX_MESSAGES" envDefault:"10"`
//		WaitTime    time.Duration `env:"ORDERS_QUEUE_WAIT_TIME" envDefault:"20s"`
//	}
//
//	func main() {
//		var cfg QueueConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 QueueConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 QueueConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type RedisConfig struct {
//		URL string `env:"REDIS_URL,required"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&QueueConfig{})
//	config.MustLoad(&RedisConfig{})
package config
