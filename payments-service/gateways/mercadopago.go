package gateways

import (
	"context"
	"strconv"

	"github.com/commercekit/payment-system/payments-service/domain"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/pkg/errors"
)

const (
	// MercadoPagoKey is the registry key a payment method references in its
	// Gateway field.
	MercadoPagoKey = "mercadopago"

	// MercadoPagoName is the display name shown when listing methods.
	MercadoPagoName = "Mercado Pago"

	accessTokenConfigKey = "ACCESS_TOKEN"
)

// MercadoPago charges payments through the Mercado Pago API. Each instance
// is bound to one payment method and authenticates with the access token
// from that method's configuration.
type MercadoPago struct {
	client payment.Client
}

// NewMercadoPago builds a gateway from the method's configuration
func NewMercadoPago(method *domain.PaymentMethod) (domain.PaymentGateway, error) {
	value, ok := method.ConfigurationValue(accessTokenConfigKey)
	if !ok {
		return nil, errors.New("ACCESS_TOKEN is not configured")
	}

	accessToken, ok := value.(string)
	if !ok || accessToken == "" {
		return nil, errors.New("ACCESS_TOKEN must be a non-empty string")
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to configure mercado pago client")
	}

	return &MercadoPago{client: payment.NewClient(cfg)}, nil
}

// Name returns the gateway's display name
func (g *MercadoPago) Name() string {
	return MercadoPagoName
}

// ChargeResult is what the provider reports back for a submitted charge
type ChargeResult struct {
	ProviderPaymentID string
	ProviderStatus    string
}

// Charge submits the payment to Mercado Pago. Amounts are converted from
// minor units to the decimal figure the API expects.
func (g *MercadoPago) Charge(ctx context.Context, p *domain.Payment, payerEmail string) (*ChargeResult, error) {
	request := payment.Request{
		TransactionAmount: float64(p.Amount.Amount) / 100,
		Description:       p.PayableType + " " + p.PayableID,
		ExternalReference: p.ID.String(),
		Payer: &payment.PayerRequest{
			Email: payerEmail,
		},
	}

	response, err := g.client.Create(ctx, request)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mercado pago payment")
	}

	return &ChargeResult{
		ProviderPaymentID: strconv.Itoa(response.ID),
		ProviderStatus:    response.Status,
	}, nil
}

// Register adds the Mercado Pago factory to the registry
func Register(registry *domain.GatewayRegistry) {
	registry.Register(MercadoPagoKey, domain.GatewayFactory{
		Name: MercadoPagoName,
		New:  NewMercadoPago,
	})
}
