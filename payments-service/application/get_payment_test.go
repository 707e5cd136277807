package application

import (
	"context"
	"testing"

	"github.com/commercekit/payment-system/payments-service/domain"
	"github.com/commercekit/payment-system/payments-service/mocks"
	"github.com/commercekit/payment-system/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetPayment_Execute(t *testing.T) {
	t.Run("returns the payment", func(t *testing.T) {
		paymentRepo := mocks.NewMockPaymentRepository(t)

		payment := &domain.Payment{
			ID:              models.GenerateUUID(),
			Amount:          models.NewMoney(12990, "BRL"),
			PayableType:     "order",
			PayableID:       "order-1001",
			PaymentMethodID: models.GenerateUUID(),
			Data:            map[string]interface{}{"channel": "web"},
			Status:          domain.PaymentStatusPaid,
			Timestamps:      models.NewTimestamps(),
			Version:         models.NewVersion(),
		}

		paymentRepo.EXPECT().FindByID(mock.Anything, payment.ID).Return(payment, nil)

		uc := NewGetPayment(paymentRepo)

		response, err := uc.Execute(context.Background(), &GetPaymentQuery{PaymentID: payment.ID.String()})

		require.NoError(t, err)
		require.NotNil(t, response)
		assert.Equal(t, payment.ID.String(), response.PaymentID)
		assert.Equal(t, int64(12990), response.Amount)
		assert.Equal(t, "BRL", response.Currency)
		assert.Equal(t, "order", response.PayableType)
		assert.Equal(t, "order-1001", response.PayableID)
		assert.Equal(t, "paid", response.Status)
		assert.Equal(t, "Paid", response.StatusLabel)
		assert.NotEmpty(t, response.CreatedAt)
	})

	t.Run("fails without a payment ID", func(t *testing.T) {
		paymentRepo := mocks.NewMockPaymentRepository(t)

		uc := NewGetPayment(paymentRepo)

		response, err := uc.Execute(context.Background(), &GetPaymentQuery{})

		require.Error(t, err)
		assert.Nil(t, response)
		assert.Contains(t, err.Error(), "payment ID is required")
	})

	t.Run("fails with a malformed payment ID", func(t *testing.T) {
		paymentRepo := mocks.NewMockPaymentRepository(t)

		uc := NewGetPayment(paymentRepo)

		response, err := uc.Execute(context.Background(), &GetPaymentQuery{PaymentID: "not-a-uuid"})

		require.Error(t, err)
		assert.Nil(t, response)
		assert.Contains(t, err.Error(), "invalid payment ID")
	})

	t.Run("fails when the payment does not exist", func(t *testing.T) {
		paymentRepo := mocks.NewMockPaymentRepository(t)

		paymentID := models.GenerateUUID()
		paymentRepo.EXPECT().FindByID(mock.Anything, paymentID).Return(nil, nil)

		uc := NewGetPayment(paymentRepo)

		response, err := uc.Execute(context.Background(), &GetPaymentQuery{PaymentID: paymentID.String()})

		require.Error(t, err)
		assert.Nil(t, response)
		assert.Contains(t, err.Error(), "payment not found")
	})

	t.Run("wraps repository failures", func(t *testing.T) {
		paymentRepo := mocks.NewMockPaymentRepository(t)

		paymentID := models.GenerateUUID()
		paymentRepo.EXPECT().FindByID(mock.Anything, paymentID).Return(nil, errors.New("connection reset"))

		uc := NewGetPayment(paymentRepo)

		response, err := uc.Execute(context.Background(), &GetPaymentQuery{PaymentID: paymentID.String()})

		require.Error(t, err)
		assert.Nil(t, response)
		assert.Contains(t, err.Error(), "failed to find payment")
	})
}
