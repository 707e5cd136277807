package handlers

import (
	"context"
	"encoding/json"

	"github.com/commercekit/payment-system/payments-service/application"
	"github.com/commercekit/payment-system/payments-service/domain"
	"github.com/commercekit/payment-system/shared/events"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PaymentEventHandlers routes payment events from the queue to use cases
type PaymentEventHandlers struct {
	registerMethodTransaction *application.RegisterMethodTransaction
	logger                    *zap.Logger
}

// NewPaymentEventHandlers creates new payment event handlers
func NewPaymentEventHandlers(
	registerMethodTransaction *application.RegisterMethodTransaction,
	logger *zap.Logger,
) *PaymentEventHandlers {
	return &PaymentEventHandlers{
		registerMethodTransaction: registerMethodTransaction,
		logger:                    logger,
	}
}

// HandlerID returns the unique identifier for this event handler
func (h *PaymentEventHandlers) HandlerID() string {
	return "payments-service-event-handler"
}

// Handle implements the events.EventHandler interface
func (h *PaymentEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	if !event.Matches("payment.#", nil) {
		return nil
	}

	switch event.EventType {
	case events.PaymentCreatedEvent:
		return h.HandlePaymentCreated(ctx, event)
	default:
		// Unknown event type, ignore
		return nil
	}
}

// HandlePaymentCreated bumps the transaction counter of the method the
// payment was created through
func (h *PaymentEventHandlers) HandlePaymentCreated(ctx context.Context, event *events.Event) error {
	var data domain.PaymentCreatedData
	if err := h.parseEventData(event, &data); err != nil {
		return errors.Wrap(err, "failed to parse payment created data")
	}

	cmd := &application.RegisterMethodTransactionCommand{
		PaymentMethodID: data.PaymentMethodID,
	}

	if err := h.registerMethodTransaction.Execute(ctx, cmd); err != nil {
		h.logger.Error("failed to register method transaction",
			zap.String("payment_id", data.PaymentID.String()),
			zap.String("payment_method_id", data.PaymentMethodID.String()),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// parseEventData parses event data into the specified struct
func (h *PaymentEventHandlers) parseEventData(event *events.Event, target interface{}) error {
	jsonData, err := json.Marshal(event.Data)
	if err != nil {
		return errors.Wrap(err, "failed to marshal event data")
	}

	if err := json.Unmarshal(jsonData, target); err != nil {
		return errors.Wrap(err, "failed to unmarshal event data")
	}

	return nil
}
