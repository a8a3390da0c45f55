// Command consumer runs the order command processor: it polls the inbound
// SQS queue, executes order commands against the configured store, and
// publishes correlated replies.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/orderflow/core/command"
	"github.com/dmitrymomot/orderflow/core/config"
	"github.com/dmitrymomot/orderflow/core/consumer"
	"github.com/dmitrymomot/orderflow/core/logger"
	"github.com/dmitrymomot/orderflow/core/order"
	"github.com/dmitrymomot/orderflow/core/reply"
	redisdb "github.com/dmitrymomot/orderflow/integration/database/redis"
	"github.com/dmitrymomot/orderflow/integration/queue/sqs"
)

type appConfig struct {
	AppName     string `env:"APP_NAME" envDefault:"orderflow"`
	Environment string `env:"APP_ENV" envDefault:"development"`

	// StoreBackend selects the order store: "memory" or "redis".
	StoreBackend string `env:"ORDER_STORE" envDefault:"memory"`

	// UnknownCommandPolicy selects what happens to unrecognized command
	// types: "drop" consumes silently, "reply" answers with a failure.
	UnknownCommandPolicy string `env:"ORDERS_UNKNOWN_COMMAND_POLICY" envDefault:"drop"`
}

func main() {
	var (
		appCfg      appConfig
		queueCfg    sqs.Config
		consumerCfg consumer.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&queueCfg)
	config.MustLoad(&consumerCfg)

	log := newLogger(appCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, appCfg, queueCfg, consumerCfg, log); err != nil {
		log.Error("consumer exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, appCfg appConfig, queueCfg sqs.Config, consumerCfg consumer.Config, log *slog.Logger) error {
	queue, err := sqs.New(ctx, queueCfg)
	if err != nil {
		return fmt.Errorf("failed to create sqs queue: %w", err)
	}

	store, cleanup, err := newStore(ctx, appCfg)
	if err != nil {
		return fmt.Errorf("failed to create order store: %w", err)
	}
	defer cleanup()

	dispatcherOpts := []command.Option{command.WithLogger(log)}
	if appCfg.UnknownCommandPolicy == "reply" {
		dispatcherOpts = append(dispatcherOpts, command.WithUnknownPolicy(command.PolicyReply))
	}
	dispatcher := command.NewDispatcher(dispatcherOpts...)

	handlers, err := command.OrderHandlers(store)
	if err != nil {
		return fmt.Errorf("failed to build order handlers: %w", err)
	}
	if err := dispatcher.RegisterAll(handlers...); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}

	publisher, err := reply.NewPublisher(queue, reply.WithLogger(log))
	if err != nil {
		return fmt.Errorf("failed to create reply publisher: %w", err)
	}

	c, err := consumer.NewFromConfig(consumerCfg, queue, dispatcher, publisher, consumer.WithLogger(log))
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	log.Info("starting order command processor",
		logger.Component("consumer"),
		logger.QueueURL(consumerCfg.QueueURL),
		logger.Key("store", appCfg.StoreBackend))

	return c.Run(ctx)()
}

// newStore builds the order store selected by configuration. The returned
// cleanup releases backend resources and is safe to call unconditionally.
func newStore(ctx context.Context, appCfg appConfig) (order.Store, func(), error) {
	switch appCfg.StoreBackend {
	case "redis":
		var cfg redisdb.Config
		if err := config.Load(&cfg); err != nil {
			return nil, func() {}, err
		}

		client, err := redisdb.Connect(ctx, cfg)
		if err != nil {
			return nil, func() {}, err
		}

		store, err := redisdb.NewOrderStore(client, redisdb.WithScanBatchSize(cfg.ScanBatchSize))
		if err != nil {
			_ = client.Close()
			return nil, func() {}, err
		}

		return store, func() { _ = client.Close() }, nil

	case "memory":
		return order.NewMemoryStore(), func() {}, nil

	default:
		return nil, func() {}, fmt.Errorf("unknown order store backend: %q", appCfg.StoreBackend)
	}
}

func newLogger(cfg appConfig) *slog.Logger {
	if cfg.Environment == "production" {
		return logger.New(logger.WithProduction(cfg.AppName))
	}
	return logger.New(logger.WithDevelopment(cfg.AppName))
}
