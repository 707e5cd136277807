package domain

import (
	"context"
	"encoding/json"

	"github.com/commercekit/payment-system/shared/models"
)

const (
	// DefaultTimeout is the number of seconds after which an initiated
	// payment request is considered timed out, unless the method's
	// configuration overrides it.
	DefaultTimeout = 600

	// ServiceConfigKey is the configuration key holding the processor
	// service identifier of a method.
	ServiceConfigKey = "SERVICE"

	// CardOnFileService is the reserved SERVICE value marking a method that
	// settles against the customer's stored card. Payments through such a
	// method are considered settled immediately.
	CardOnFileService = "cartao_cliente"

	timeoutConfigKey = "timeout"
)

// PaymentMethod is a configured, named way to pay: which gateway to use, its
// configuration and timeout. Administrators manage methods outside this
// core; the core reads them and bumps their transaction counter.
type PaymentMethod struct {
	ID               models.ID
	Name             string
	Description      string
	Gateway          *string
	Configuration    map[string]interface{}
	Enabled          bool
	TransactionCount int
	Timestamps       models.Timestamps
	Version          models.Version
}

// NewPaymentMethod creates a payment method with a normalized configuration
func NewPaymentMethod(name string, gateway *string, configuration map[string]interface{}) *PaymentMethod {
	if configuration == nil {
		configuration = make(map[string]interface{})
	}

	return &PaymentMethod{
		ID:            models.GenerateUUID(),
		Name:          name,
		Gateway:       gateway,
		Configuration: configuration,
		Enabled:       true,
		Timestamps:    models.NewTimestamps(),
		Version:       models.NewVersion(),
	}
}

// Timeout returns the configured timeout in seconds, falling back to
// DefaultTimeout when the configuration is absent or the value is not a
// number. Never fails.
func (m *PaymentMethod) Timeout() int {
	value, ok := m.Configuration[timeoutConfigKey]
	if !ok {
		return DefaultTimeout
	}

	switch timeout := value.(type) {
	case int:
		return timeout
	case int64:
		return int(timeout)
	case float64:
		return int(timeout)
	case json.Number:
		if n, err := timeout.Int64(); err == nil {
			return int(n)
		}
	}

	return DefaultTimeout
}

// ResolveGateway resolves the method's gateway key through the registry. A
// method with no key resolves to the NullGateway; a key that is set but
// unknown surfaces as ConfigurationError.
func (m *PaymentMethod) ResolveGateway(registry *GatewayRegistry) (PaymentGateway, error) {
	if m.Gateway == nil || *m.Gateway == "" {
		return NullGateway{}, nil
	}

	return registry.Make(*m.Gateway, m)
}

// GatewayDisplayName returns the gateway's display name without
// instantiating it
func (m *PaymentMethod) GatewayDisplayName(registry *GatewayRegistry) (string, error) {
	if m.Gateway == nil || *m.Gateway == "" {
		return NullGatewayName, nil
	}

	return registry.NameFor(*m.Gateway)
}

// NormalizedConfiguration returns the configuration mapping, never nil
func (m *PaymentMethod) NormalizedConfiguration() map[string]interface{} {
	if m.Configuration == nil {
		return map[string]interface{}{}
	}
	return m.Configuration
}

// ConfigurationValue looks up a single configuration key
func (m *PaymentMethod) ConfigurationValue(key string) (interface{}, bool) {
	value, ok := m.Configuration[key]
	return value, ok
}

// IsCardPayment reports whether the method settles against a stored card.
// This predicate is the single switch that decides the amount and initial
// status of payments created through the method.
func (m *PaymentMethod) IsCardPayment() bool {
	value, ok := m.ConfigurationValue(ServiceConfigKey)
	if !ok {
		return false
	}

	service, ok := value.(string)
	return ok && service == CardOnFileService
}

// IsEnabled reports whether the method is available for payments
func (m *PaymentMethod) IsEnabled() bool {
	return m.Enabled
}

// GetName returns the method's display name
func (m *PaymentMethod) GetName() string {
	return m.Name
}

// IsDeleted reports whether the method has been soft-deleted
func (m *PaymentMethod) IsDeleted() bool {
	return m.Timestamps.IsDeleted()
}

// RegisterTransaction bumps the in-memory transaction counter. The atomic
// persisted increment is PaymentMethodRepository.IncrementTransactionCount.
func (m *PaymentMethod) RegisterTransaction() {
	m.TransactionCount++
	m.Timestamps = m.Timestamps.Update()
	m.Version = m.Version.Update()
}

// PaymentMethodRepository is the entity-store contract for payment methods.
// Implementations must normalize a nil configuration to an empty mapping on
// Save, exclude soft-deleted methods from reads, and serialize concurrent
// counter increments.
type PaymentMethodRepository interface {
	Save(ctx context.Context, method *PaymentMethod) error
	FindByID(ctx context.Context, id models.ID) (*PaymentMethod, error)
	FindEnabled(ctx context.Context) ([]*PaymentMethod, error)
	IncrementTransactionCount(ctx context.Context, id models.ID) error
}
