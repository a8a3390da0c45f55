// Package logger provides structured logging utilities built on Go's standard
// slog package: a small factory with environment presets and a set of
// pre-built attribute helpers for common logging patterns.
//
// # Basic Usage
//
// Create loggers using the factory function with various configuration options:
//
//	import "github.com/dmitrymomot/orderflow/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("orderflow"))
//
//	// Production: JSON format, info level
//	log := logger.New(logger.WithProduction("orderflow"))
//
//	// Use the logger
//	log.Info("consumer starting",
//		logger.Component("consumer"),
//		logger.QueueURL(cfg.QueueURL),
//	)
//
// # Attribute Helpers
//
// Attribute helpers follow the empty Attr pattern for nil safety, so calls
// like log.Error("failed", logger.Error(err)) need no explicit nil checks:
//
//	log.Error("reply failed",
//		logger.Error(err),
//		logger.CorrelationID(cid),
//		logger.Elapsed(start),
//	)
package logger
