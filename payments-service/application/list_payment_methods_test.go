package application

import (
	"context"
	"testing"

	"github.com/commercekit/payment-system/payments-service/domain"
	"github.com/commercekit/payment-system/payments-service/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listedGateway struct{}

func (listedGateway) Name() string { return "Listed Gateway" }

func TestListPaymentMethods_Execute(t *testing.T) {
	t.Run("lists enabled methods with their gateway names", func(t *testing.T) {
		methodRepo := mocks.NewMockPaymentMethodRepository(t)

		registry := domain.NewGatewayRegistry()
		registry.Register("listed", domain.GatewayFactory{
			Name: "Listed Gateway",
			New: func(method *domain.PaymentMethod) (domain.PaymentGateway, error) {
				return listedGateway{}, nil
			},
		})

		gateway := "listed"
		wired := domain.NewPaymentMethod("Wired", &gateway, map[string]interface{}{
			"timeout": 300,
		})
		card := domain.NewPaymentMethod("Stored Card", nil, map[string]interface{}{
			domain.ServiceConfigKey: domain.CardOnFileService,
		})

		methodRepo.EXPECT().FindEnabled(mock.Anything).
			Return([]*domain.PaymentMethod{wired, card}, nil)

		uc := NewListPaymentMethods(methodRepo, registry)

		response, err := uc.Execute(context.Background())

		require.NoError(t, err)
		require.Len(t, response.PaymentMethods, 2)

		assert.Equal(t, "Wired", response.PaymentMethods[0].Name)
		assert.Equal(t, "Listed Gateway", response.PaymentMethods[0].GatewayName)
		assert.Equal(t, 300, response.PaymentMethods[0].Timeout)
		assert.False(t, response.PaymentMethods[0].CardPayment)

		assert.Equal(t, "Stored Card", response.PaymentMethods[1].Name)
		assert.Equal(t, domain.NullGatewayName, response.PaymentMethods[1].GatewayName)
		assert.Equal(t, domain.DefaultTimeout, response.PaymentMethods[1].Timeout)
		assert.True(t, response.PaymentMethods[1].CardPayment)
	})

	t.Run("returns an empty list when no methods are enabled", func(t *testing.T) {
		methodRepo := mocks.NewMockPaymentMethodRepository(t)

		methodRepo.EXPECT().FindEnabled(mock.Anything).Return(nil, nil)

		uc := NewListPaymentMethods(methodRepo, domain.NewGatewayRegistry())

		response, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Empty(t, response.PaymentMethods)
	})

	t.Run("surfaces a method whose gateway key no longer resolves", func(t *testing.T) {
		methodRepo := mocks.NewMockPaymentMethodRepository(t)

		gateway := "vanished"
		method := domain.NewPaymentMethod("Orphaned", &gateway, nil)

		methodRepo.EXPECT().FindEnabled(mock.Anything).
			Return([]*domain.PaymentMethod{method}, nil)

		uc := NewListPaymentMethods(methodRepo, domain.NewGatewayRegistry())

		response, err := uc.Execute(context.Background())

		require.Error(t, err)
		assert.Nil(t, response)

		var configErr *domain.ConfigurationError
		require.True(t, errors.As(err, &configErr))
		assert.Equal(t, "vanished", configErr.Key)
	})

	t.Run("wraps repository failures", func(t *testing.T) {
		methodRepo := mocks.NewMockPaymentMethodRepository(t)

		methodRepo.EXPECT().FindEnabled(mock.Anything).Return(nil, errors.New("connection reset"))

		uc := NewListPaymentMethods(methodRepo, domain.NewGatewayRegistry())

		response, err := uc.Execute(context.Background())

		require.Error(t, err)
		assert.Nil(t, response)
		assert.Contains(t, err.Error(), "failed to list payment methods")
	})
}
