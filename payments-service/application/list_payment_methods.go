package application

import (
	"context"

	"github.com/commercekit/payment-system/payments-service/domain"
	"github.com/pkg/errors"
)

// PaymentMethodSummary is what checkout needs to render a method
type PaymentMethodSummary struct {
	PaymentMethodID string `json:"payment_method_id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	GatewayName     string `json:"gateway_name"`
	Timeout         int    `json:"timeout"`
	CardPayment     bool   `json:"card_payment"`
}

// ListPaymentMethodsResponse represents the response listing enabled methods
type ListPaymentMethodsResponse struct {
	PaymentMethods []PaymentMethodSummary `json:"payment_methods"`
}

// ListPaymentMethods lists the enabled payment methods with their resolved
// gateway display name and timeout
type ListPaymentMethods struct {
	methodRepository domain.PaymentMethodRepository
	gateways         *domain.GatewayRegistry
}

// NewListPaymentMethods creates a new ListPaymentMethods use case
func NewListPaymentMethods(
	methodRepository domain.PaymentMethodRepository,
	gateways *domain.GatewayRegistry,
) *ListPaymentMethods {
	return &ListPaymentMethods{
		methodRepository: methodRepository,
		gateways:         gateways,
	}
}

// Execute returns every enabled, not-deleted payment method. A method whose
// gateway key no longer resolves surfaces as a configuration error rather
// than being silently hidden.
func (uc *ListPaymentMethods) Execute(ctx context.Context) (*ListPaymentMethodsResponse, error) {
	methods, err := uc.methodRepository.FindEnabled(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}

	summaries := make([]PaymentMethodSummary, 0, len(methods))
	for _, method := range methods {
		gatewayName, err := method.GatewayDisplayName(uc.gateways)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, PaymentMethodSummary{
			PaymentMethodID: method.ID.String(),
			Name:            method.GetName(),
			Description:     method.Description,
			GatewayName:     gatewayName,
			Timeout:         method.Timeout(),
			CardPayment:     method.IsCardPayment(),
		})
	}

	return &ListPaymentMethodsResponse{PaymentMethods: summaries}, nil
}
