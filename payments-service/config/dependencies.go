package config

import (
	"context"
	"fmt"

	"github.com/commercekit/payment-system/payments-service/application"
	"github.com/commercekit/payment-system/payments-service/domain"
	"github.com/commercekit/payment-system/payments-service/gateways"
	"github.com/commercekit/payment-system/payments-service/handlers"
	"github.com/commercekit/payment-system/payments-service/infrastructure"
	sharedinfra "github.com/commercekit/payment-system/shared/infrastructure"
	"github.com/commercekit/payment-system/shared/telemetry"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type Dependencies struct {
	// Logging
	Logger *zap.Logger

	// Database
	DB *sqlx.DB

	// Repositories
	PaymentRepository       *infrastructure.PostgresPaymentRepository
	PaymentMethodRepository *infrastructure.PostgresPaymentMethodRepository

	// Gateways
	GatewayRegistry *domain.GatewayRegistry

	// Use Cases
	CreatePayment             *application.CreatePayment
	GetPayment                *application.GetPayment
	ListPaymentMethods        *application.ListPaymentMethods
	RegisterMethodTransaction *application.RegisterMethodTransaction

	// HTTP Handlers
	PaymentHandlers *handlers.PaymentHandlers

	// Event Handlers
	PaymentEventHandlers *handlers.PaymentEventHandlers

	// Infrastructure
	EventPublisher  *sharedinfra.SNSPublisherAdapter
	EventSubscriber *sharedinfra.SQSSubscriberAdapter

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	logger, err := newLogger(config.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	deps.Logger = logger

	if config.Telemetry.Enabled {
		telConfig := telemetry.PaymentsServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			logger.Warn("failed to initialize telemetry", zap.Error(err))
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	// Initialize database
	db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	deps.DB = db

	// Initialize AWS infrastructure
	eventPublisher, err := sharedinfra.NewSNSPublisherAdapter(config.AWS.SNSTopicArn, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
	}
	deps.EventPublisher = eventPublisher

	eventSubscriber, err := sharedinfra.NewSQSSubscriberAdapter(config.AWS.SQSQueueURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQS subscriber: %w", err)
	}
	deps.EventSubscriber = eventSubscriber

	// Initialize repositories
	deps.PaymentRepository = infrastructure.NewPostgresPaymentRepository(db)
	deps.PaymentMethodRepository = infrastructure.NewPostgresPaymentMethodRepository(db)

	// Initialize gateway registry
	deps.GatewayRegistry = domain.NewGatewayRegistry()
	gateways.Register(deps.GatewayRegistry)

	// Initialize use cases
	deps.CreatePayment = application.NewCreatePayment(
		deps.PaymentRepository,
		deps.PaymentMethodRepository,
		deps.GatewayRegistry,
		eventPublisher,
		logger,
	)
	deps.GetPayment = application.NewGetPayment(deps.PaymentRepository)
	deps.ListPaymentMethods = application.NewListPaymentMethods(deps.PaymentMethodRepository, deps.GatewayRegistry)
	deps.RegisterMethodTransaction = application.NewRegisterMethodTransaction(
		deps.PaymentMethodRepository,
		eventPublisher,
		logger,
	)

	// Initialize handlers
	deps.PaymentHandlers = handlers.NewPaymentHandlers(deps.CreatePayment, deps.GetPayment, deps.ListPaymentMethods)
	deps.PaymentEventHandlers = handlers.NewPaymentEventHandlers(deps.RegisterMethodTransaction, logger)

	return deps, nil
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.EventPublisher != nil {
		if err := d.EventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event publisher: %w", err))
		}
	}

	if d.EventSubscriber != nil {
		if err := d.EventSubscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event subscriber: %w", err))
		}
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if d.Logger != nil {
		d.Logger.Sync()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
