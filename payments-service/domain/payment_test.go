package domain

import (
	"testing"

	"github.com/commercekit/payment-system/shared/events"
	"github.com/stretchr/testify/assert"
)

// testOrder is a minimal payable for factory tests
type testOrder struct {
	id           string
	amount       int64
	cardReserved int64
	currency     string
}

func (o testOrder) Amount() int64              { return o.amount }
func (o testOrder) CardReservedBalance() int64 { return o.cardReserved }
func (o testOrder) Currency() string           { return o.currency }
func (o testOrder) PayableType() string        { return "order" }
func (o testOrder) PayableID() string          { return o.id }

func TestCreateFromPayable(t *testing.T) {
	order := testOrder{id: "order-42", amount: 4990, cardReserved: 1200, currency: "EUR"}

	tests := []struct {
		name           string
		method         *PaymentMethod
		expectedAmount int64
		expectedStatus PaymentStatus
	}{
		{
			name:           "regular method charges the nominal amount and starts pending",
			method:         NewPaymentMethod("Bank transfer", nil, nil),
			expectedAmount: 4990,
			expectedStatus: PaymentStatusPending,
		},
		{
			name: "card on file method charges the reserved balance and is born paid",
			method: NewPaymentMethod("Customer card", nil, map[string]interface{}{
				"SERVICE": "cartao_cliente",
			}),
			expectedAmount: 1200,
			expectedStatus: PaymentStatusPaid,
		},
		{
			name: "non-card service behaves like a regular method",
			method: NewPaymentMethod("Pix", stringPtr("pix"), map[string]interface{}{
				"SERVICE": "pix",
			}),
			expectedAmount: 4990,
			expectedStatus: PaymentStatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment, err := CreateFromPayable(order, tt.method, nil)
			assert.NoError(t, err)

			assert.Equal(t, tt.expectedAmount, payment.Amount.Amount)
			assert.Equal(t, "EUR", payment.Amount.Currency)
			assert.Equal(t, tt.expectedStatus, payment.Status)
			assert.Equal(t, "order", payment.PayableType)
			assert.Equal(t, "order-42", payment.PayableID)
			assert.Equal(t, tt.method.ID, payment.PaymentMethodID)
			assert.NotNil(t, payment.Data)
			assert.False(t, payment.ID.IsEmpty())
		})
	}
}

func TestCreateFromPayable_ZeroReservedBalance(t *testing.T) {
	// A card method with nothing reserved still follows the card path
	order := testOrder{id: "order-7", amount: 4990, cardReserved: 0, currency: "EUR"}
	method := NewPaymentMethod("Customer card", nil, map[string]interface{}{
		"SERVICE": "cartao_cliente",
	})

	payment, err := CreateFromPayable(order, method, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), payment.Amount.Amount)
	assert.Equal(t, PaymentStatusPaid, payment.Status)
}

func TestCreateFromPayable_ExtraData(t *testing.T) {
	order := testOrder{id: "order-9", amount: 100, currency: "USD"}
	method := NewPaymentMethod("Card", nil, nil)

	payment, err := CreateFromPayable(order, method, map[string]interface{}{
		"installments": 3,
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, payment.Data["installments"])
}

func TestCreateFromPayable_RecordsCreationEvent(t *testing.T) {
	order := testOrder{id: "order-42", amount: 4990, currency: "EUR"}
	method := NewPaymentMethod("Bank transfer", nil, nil)

	payment, err := CreateFromPayable(order, method, nil)
	assert.NoError(t, err)

	evts := payment.Events()
	assert.Len(t, evts, 1)
	assert.Equal(t, events.PaymentCreatedEvent, evts[0].EventType)
	assert.Equal(t, payment.ID, evts[0].AggregateID)

	data, ok := evts[0].Data.(PaymentCreatedData)
	assert.True(t, ok)
	assert.Equal(t, payment.ID, data.PaymentID)
	assert.Equal(t, payment.Amount, data.Amount)
	assert.Equal(t, payment.Status, data.Status)

	payment.ClearEvents()
	assert.Empty(t, payment.Events())
}

func TestCreateFromPayable_Validation(t *testing.T) {
	order := testOrder{id: "order-42", amount: 4990, currency: "EUR"}

	_, err := CreateFromPayable(nil, NewPaymentMethod("Card", nil, nil), nil)
	assert.Error(t, err)

	_, err = CreateFromPayable(order, nil, nil)
	assert.Error(t, err)
}
