package application

import (
	"context"
	"testing"

	"github.com/commercekit/payment-system/payments-service/mocks"
	"github.com/commercekit/payment-system/shared/events"
	"github.com/commercekit/payment-system/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegisterMethodTransaction_Execute(t *testing.T) {
	t.Run("increments the counter and announces it", func(t *testing.T) {
		methodRepo := mocks.NewMockPaymentMethodRepository(t)
		publisher := mocks.NewMockPublisher(t)

		methodID := models.GenerateUUID()

		methodRepo.EXPECT().IncrementTransactionCount(mock.Anything, methodID).Return(nil)
		publisher.EXPECT().Publish(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, evts ...*events.Event) {
				require.Len(t, evts, 1)
				assert.Equal(t, events.PaymentMethodTransactionRegisteredEvent, evts[0].EventType)
			}).Return(nil)

		uc := NewRegisterMethodTransaction(methodRepo, publisher, zap.NewNop())

		err := uc.Execute(context.Background(), &RegisterMethodTransactionCommand{PaymentMethodID: methodID})

		require.NoError(t, err)
	})

	t.Run("fails without a payment method ID", func(t *testing.T) {
		methodRepo := mocks.NewMockPaymentMethodRepository(t)
		publisher := mocks.NewMockPublisher(t)

		uc := NewRegisterMethodTransaction(methodRepo, publisher, zap.NewNop())

		err := uc.Execute(context.Background(), &RegisterMethodTransactionCommand{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "payment method ID is required")
	})

	t.Run("does not announce when the increment fails", func(t *testing.T) {
		methodRepo := mocks.NewMockPaymentMethodRepository(t)
		publisher := mocks.NewMockPublisher(t)

		methodID := models.GenerateUUID()

		methodRepo.EXPECT().IncrementTransactionCount(mock.Anything, methodID).
			Return(errors.New("connection reset"))

		uc := NewRegisterMethodTransaction(methodRepo, publisher, zap.NewNop())

		err := uc.Execute(context.Background(), &RegisterMethodTransactionCommand{PaymentMethodID: methodID})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to increment transaction count")
		publisher.AssertNotCalled(t, "Publish")
	})

	t.Run("succeeds when only the announcement fails", func(t *testing.T) {
		methodRepo := mocks.NewMockPaymentMethodRepository(t)
		publisher := mocks.NewMockPublisher(t)

		methodID := models.GenerateUUID()

		methodRepo.EXPECT().IncrementTransactionCount(mock.Anything, methodID).Return(nil)
		publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker unavailable"))

		uc := NewRegisterMethodTransaction(methodRepo, publisher, zap.NewNop())

		err := uc.Execute(context.Background(), &RegisterMethodTransactionCommand{PaymentMethodID: methodID})

		require.NoError(t, err)
	})
}
