package domain

import (
	"context"

	"github.com/commercekit/payment-system/shared/events"
	"github.com/commercekit/payment-system/shared/models"
	"github.com/pkg/errors"
)

// Payment records one attempt to pay for one payable. Amount, currency and
// status are fixed here at creation; later status transitions come from
// gateway callbacks handled outside this core.
type Payment struct {
	ID              models.ID
	Amount          models.Money
	PayableType     string
	PayableID       string
	PaymentMethodID models.ID
	Data            map[string]interface{}
	Status          PaymentStatus
	Timestamps      models.Timestamps
	Version         models.Version

	events []*events.Event
}

// CreateFromPayable creates the payment for a payable through the given
// method. A card-on-file method charges the payable's card-reserved balance
// and the payment is born settled; any other method charges the nominal
// amount and the payment starts pending a gateway interaction.
func CreateFromPayable(payable Payable, method *PaymentMethod, extraData map[string]interface{}) (*Payment, error) {
	if payable == nil {
		return nil, errors.New("payable is required")
	}

	if method == nil {
		return nil, errors.New("payment method is required")
	}

	amount := payable.Amount()
	status := DefaultPaymentStatus
	if method.IsCardPayment() {
		amount = payable.CardReservedBalance()
		status = PaymentStatusPaid
	}

	if extraData == nil {
		extraData = make(map[string]interface{})
	}

	payment := &Payment{
		ID:              models.GenerateUUID(),
		Amount:          models.NewMoney(amount, payable.Currency()),
		PayableType:     payable.PayableType(),
		PayableID:       payable.PayableID(),
		PaymentMethodID: method.ID,
		Data:            extraData,
		Status:          status,
		Timestamps:      models.NewTimestamps(),
		Version:         models.NewVersion(),
	}

	event := events.NewEvent(payment.ID, events.PaymentCreatedEvent, PaymentCreatedData{
		PaymentID:       payment.ID,
		PayableType:     payment.PayableType,
		PayableID:       payment.PayableID,
		PaymentMethodID: payment.PaymentMethodID,
		Amount:          payment.Amount,
		Status:          payment.Status,
	})

	payment.recordEvent(event)
	return payment, nil
}

// Events returns domain events
func (p *Payment) Events() []*events.Event {
	return p.events
}

// ClearEvents clears domain events
func (p *Payment) ClearEvents() {
	p.events = make([]*events.Event, 0)
}

// recordEvent records a domain event
func (p *Payment) recordEvent(event *events.Event) {
	p.events = append(p.events, event)
}

// PaymentCreatedData is the payload announced when a payment is created
type PaymentCreatedData struct {
	PaymentID       models.ID     `json:"payment_id"`
	PayableType     string        `json:"payable_type"`
	PayableID       string        `json:"payable_id"`
	PaymentMethodID models.ID     `json:"payment_method_id"`
	Amount          models.Money  `json:"amount"`
	Status          PaymentStatus `json:"status"`
}

// PaymentRepository is the entity-store contract for payments
type PaymentRepository interface {
	Save(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id models.ID) (*Payment, error)
	FindByPayable(ctx context.Context, payableType, payableID string) ([]*Payment, error)
}
