package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string {
	return &s
}

func TestPaymentMethod_Timeout(t *testing.T) {
	tests := []struct {
		name          string
		configuration map[string]interface{}
		expected      int
	}{
		{
			name:          "nil configuration",
			configuration: nil,
			expected:      DefaultTimeout,
		},
		{
			name:          "missing timeout key",
			configuration: map[string]interface{}{"SERVICE": "boleto"},
			expected:      DefaultTimeout,
		},
		{
			name:          "int timeout",
			configuration: map[string]interface{}{"timeout": 300},
			expected:      300,
		},
		{
			name:          "json-decoded float timeout",
			configuration: map[string]interface{}{"timeout": float64(120)},
			expected:      120,
		},
		{
			name:          "json.Number timeout",
			configuration: map[string]interface{}{"timeout": json.Number("90")},
			expected:      90,
		},
		{
			name:          "malformed timeout value",
			configuration: map[string]interface{}{"timeout": "soon"},
			expected:      DefaultTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := &PaymentMethod{Configuration: tt.configuration}
			assert.Equal(t, tt.expected, method.Timeout())
		})
	}
}

func TestPaymentMethod_IsCardPayment(t *testing.T) {
	tests := []struct {
		name          string
		configuration map[string]interface{}
		expected      bool
	}{
		{
			name:          "card on file sentinel",
			configuration: map[string]interface{}{"SERVICE": "cartao_cliente"},
			expected:      true,
		},
		{
			name:          "other service",
			configuration: map[string]interface{}{"SERVICE": "pix"},
			expected:      false,
		},
		{
			name:          "service absent",
			configuration: map[string]interface{}{"timeout": 300},
			expected:      false,
		},
		{
			name:          "nil configuration",
			configuration: nil,
			expected:      false,
		},
		{
			name:          "non-string service value",
			configuration: map[string]interface{}{"SERVICE": 42},
			expected:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := &PaymentMethod{Configuration: tt.configuration}
			assert.Equal(t, tt.expected, method.IsCardPayment())
		})
	}
}

func TestPaymentMethod_ResolveGateway(t *testing.T) {
	registry := NewGatewayRegistry()
	registry.Register("stub", stubFactory())

	t.Run("no gateway key resolves to null gateway", func(t *testing.T) {
		method := NewPaymentMethod("Cash", nil, nil)

		gateway, err := method.ResolveGateway(registry)
		assert.NoError(t, err)
		assert.Equal(t, NullGateway{}, gateway)
	})

	t.Run("empty gateway key resolves to null gateway", func(t *testing.T) {
		method := NewPaymentMethod("Cash", stringPtr(""), nil)

		gateway, err := method.ResolveGateway(registry)
		assert.NoError(t, err)
		assert.Equal(t, NullGateway{}, gateway)
	})

	t.Run("registered gateway key", func(t *testing.T) {
		method := NewPaymentMethod("Card", stringPtr("stub"), nil)

		gateway, err := method.ResolveGateway(registry)
		assert.NoError(t, err)
		assert.Equal(t, "Stub", gateway.Name())
	})

	t.Run("unknown gateway key is a configuration error", func(t *testing.T) {
		method := NewPaymentMethod("Card", stringPtr("ghost"), nil)

		gateway, err := method.ResolveGateway(registry)
		assert.Nil(t, gateway)

		var cfgErr *ConfigurationError
		assert.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "ghost", cfgErr.Key)
	})
}

func TestPaymentMethod_GatewayDisplayName(t *testing.T) {
	registry := NewGatewayRegistry()
	registry.Register("stub", stubFactory())

	noGateway := NewPaymentMethod("Cash", nil, nil)
	name, err := noGateway.GatewayDisplayName(registry)
	assert.NoError(t, err)
	assert.Equal(t, NullGatewayName, name)

	withGateway := NewPaymentMethod("Card", stringPtr("stub"), nil)
	name, err = withGateway.GatewayDisplayName(registry)
	assert.NoError(t, err)
	assert.Equal(t, "Stub", name)

	unknown := NewPaymentMethod("Card", stringPtr("ghost"), nil)
	_, err = unknown.GatewayDisplayName(registry)
	assert.Error(t, err)
}

func TestPaymentMethod_NormalizedConfiguration(t *testing.T) {
	method := &PaymentMethod{}
	assert.NotNil(t, method.NormalizedConfiguration())
	assert.Empty(t, method.NormalizedConfiguration())

	method.Configuration = map[string]interface{}{"timeout": 300}
	assert.Equal(t, method.Configuration, method.NormalizedConfiguration())
}

func TestPaymentMethod_ConfigurationValue(t *testing.T) {
	method := &PaymentMethod{Configuration: map[string]interface{}{"SERVICE": "pix"}}

	value, ok := method.ConfigurationValue("SERVICE")
	assert.True(t, ok)
	assert.Equal(t, "pix", value)

	_, ok = method.ConfigurationValue("missing")
	assert.False(t, ok)

	nilConfig := &PaymentMethod{}
	_, ok = nilConfig.ConfigurationValue("SERVICE")
	assert.False(t, ok)
}

func TestPaymentMethod_RegisterTransaction(t *testing.T) {
	method := NewPaymentMethod("Card", nil, nil)
	assert.Equal(t, 0, method.TransactionCount)

	version := method.Version.Value
	method.RegisterTransaction()

	assert.Equal(t, 1, method.TransactionCount)
	assert.Equal(t, version+1, method.Version.Value)
}

func TestNewPaymentMethod_NormalizesConfiguration(t *testing.T) {
	method := NewPaymentMethod("Card", nil, nil)
	assert.NotNil(t, method.Configuration)
	assert.True(t, method.IsEnabled())
	assert.False(t, method.IsDeleted())
	assert.Equal(t, "Card", method.GetName())
}
