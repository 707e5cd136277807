package application

import (
	"context"

	"github.com/commercekit/payment-system/payments-service/domain"
	"github.com/commercekit/payment-system/shared/events"
	"github.com/commercekit/payment-system/shared/models"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RegisterMethodTransactionCommand identifies the method whose counter to bump
type RegisterMethodTransactionCommand struct {
	PaymentMethodID models.ID `json:"payment_method_id"`
}

// RegisterMethodTransaction bumps a payment method's transaction counter,
// once per processed transaction. The increment is delegated to the entity
// store, which serializes concurrent increments.
type RegisterMethodTransaction struct {
	methodRepository domain.PaymentMethodRepository
	eventPublisher   events.Publisher
	logger           *zap.Logger
}

// NewRegisterMethodTransaction creates a new RegisterMethodTransaction use case
func NewRegisterMethodTransaction(
	methodRepository domain.PaymentMethodRepository,
	eventPublisher events.Publisher,
	logger *zap.Logger,
) *RegisterMethodTransaction {
	return &RegisterMethodTransaction{
		methodRepository: methodRepository,
		eventPublisher:   eventPublisher,
		logger:           logger,
	}
}

// Execute increments the method's persisted transaction counter
func (uc *RegisterMethodTransaction) Execute(ctx context.Context, cmd *RegisterMethodTransactionCommand) error {
	if cmd.PaymentMethodID.IsEmpty() {
		return errors.New("payment method ID is required")
	}

	if err := uc.methodRepository.IncrementTransactionCount(ctx, cmd.PaymentMethodID); err != nil {
		return errors.Wrap(err, "failed to increment transaction count")
	}

	event := events.NewEvent(cmd.PaymentMethodID, events.PaymentMethodTransactionRegisteredEvent,
		MethodTransactionRegisteredData{
			PaymentMethodID: cmd.PaymentMethodID,
		})

	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("failed to announce method transaction",
			zap.String("payment_method_id", cmd.PaymentMethodID.String()),
			zap.Error(err),
		)
	}

	return nil
}

// MethodTransactionRegisteredData is the payload announced after a counter bump
type MethodTransactionRegisteredData struct {
	PaymentMethodID models.ID `json:"payment_method_id"`
}
