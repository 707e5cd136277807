package application

import (
	"context"

	"github.com/commercekit/payment-system/payments-service/domain"
	"github.com/commercekit/payment-system/shared/events"
	"github.com/commercekit/payment-system/shared/models"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CreatePaymentCommand carries the payable snapshot and the chosen method.
// The payable figures are read-only input; the core never recomputes them.
type CreatePaymentCommand struct {
	PayableType         string                 `json:"payable_type"`
	PayableID           string                 `json:"payable_id"`
	Amount              int64                  `json:"amount"`
	CardReservedBalance int64                  `json:"card_reserved_balance"`
	Currency            string                 `json:"currency"`
	PaymentMethodID     string                 `json:"payment_method_id"`
	ExtraData           map[string]interface{} `json:"extra_data,omitempty"`
}

// CreatePaymentResponse represents the response after creating a payment
type CreatePaymentResponse struct {
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
}

// CreatePayment resolves the payment method, decides amount and initial
// status from the method's semantics, persists the payment and announces
// its creation.
type CreatePayment struct {
	paymentRepository domain.PaymentRepository
	methodRepository  domain.PaymentMethodRepository
	gateways          *domain.GatewayRegistry
	eventPublisher    events.Publisher
	logger            *zap.Logger
}

// NewCreatePayment creates a new CreatePayment use case
func NewCreatePayment(
	paymentRepository domain.PaymentRepository,
	methodRepository domain.PaymentMethodRepository,
	gateways *domain.GatewayRegistry,
	eventPublisher events.Publisher,
	logger *zap.Logger,
) *CreatePayment {
	return &CreatePayment{
		paymentRepository: paymentRepository,
		methodRepository:  methodRepository,
		gateways:          gateways,
		eventPublisher:    eventPublisher,
		logger:            logger,
	}
}

// Execute runs the payment creation flow. Computation strictly precedes
// persistence, which strictly precedes the creation announcement; the
// announcement is never emitted when persistence fails, and an announcement
// failure never rolls back the persisted payment.
func (uc *CreatePayment) Execute(ctx context.Context, cmd *CreatePaymentCommand) (*CreatePaymentResponse, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, errors.Wrap(err, "invalid command")
	}

	methodID, err := models.NewID(cmd.PaymentMethodID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid payment method ID")
	}

	method, err := uc.methodRepository.FindByID(ctx, methodID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment method")
	}

	if method == nil {
		return nil, errors.New("payment method not found")
	}

	if !method.IsEnabled() {
		return nil, errors.New("payment method is disabled")
	}

	// A set-but-unknown gateway key must abort the flow before anything is
	// written; only an unset key falls through to the null gateway.
	if _, err := method.ResolveGateway(uc.gateways); err != nil {
		return nil, err
	}

	payment, err := domain.CreateFromPayable(payableSnapshot{cmd: cmd}, method, cmd.ExtraData)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment")
	}

	if err := uc.paymentRepository.Save(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to save payment")
	}

	if err := uc.eventPublisher.Publish(ctx, payment.Events()...); err != nil {
		// The payment is committed; the announcement is fire-and-forget
		uc.logger.Warn("failed to announce payment creation",
			zap.String("payment_id", payment.ID.String()),
			zap.Error(err),
		)
	}

	payment.ClearEvents()

	return &CreatePaymentResponse{
		PaymentID: payment.ID.String(),
		Amount:    payment.Amount.Amount,
		Currency:  payment.Amount.Currency,
		Status:    payment.Status.String(),
	}, nil
}

// validateCommand validates the create payment command
func (uc *CreatePayment) validateCommand(cmd *CreatePaymentCommand) error {
	if cmd.PayableType == "" {
		return errors.New("payable type is required")
	}

	if cmd.PayableID == "" {
		return errors.New("payable ID is required")
	}

	if cmd.Amount < 0 {
		return errors.New("amount cannot be negative")
	}

	if cmd.CardReservedBalance < 0 {
		return errors.New("card reserved balance cannot be negative")
	}

	if cmd.Currency == "" {
		return errors.New("currency is required")
	}

	if cmd.PaymentMethodID == "" {
		return errors.New("payment method ID is required")
	}

	return nil
}

// payableSnapshot adapts the command's payable figures to domain.Payable
type payableSnapshot struct {
	cmd *CreatePaymentCommand
}

func (p payableSnapshot) Amount() int64              { return p.cmd.Amount }
func (p payableSnapshot) CardReservedBalance() int64 { return p.cmd.CardReservedBalance }
func (p payableSnapshot) Currency() string           { return p.cmd.Currency }
func (p payableSnapshot) PayableType() string        { return p.cmd.PayableType }
func (p payableSnapshot) PayableID() string          { return p.cmd.PayableID }
