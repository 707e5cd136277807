package domain

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type stubGateway struct {
	method *PaymentMethod
}

func (stubGateway) Name() string {
	return "Stub"
}

func stubFactory() GatewayFactory {
	return GatewayFactory{
		Name: "Stub",
		New: func(method *PaymentMethod) (PaymentGateway, error) {
			return stubGateway{method: method}, nil
		},
	}
}

func TestGatewayRegistry_Make(t *testing.T) {
	registry := NewGatewayRegistry()
	registry.Register("stub", stubFactory())

	method := NewPaymentMethod("Stub method", nil, nil)

	t.Run("registered key", func(t *testing.T) {
		gateway, err := registry.Make("stub", method)
		assert.NoError(t, err)
		assert.Equal(t, "Stub", gateway.Name())

		// The gateway is bound to the method it was resolved for
		assert.Equal(t, method, gateway.(stubGateway).method)
	})

	t.Run("unknown key", func(t *testing.T) {
		gateway, err := registry.Make("missing", method)
		assert.Nil(t, gateway)

		var cfgErr *ConfigurationError
		assert.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "missing", cfgErr.Key)
	})

	t.Run("constructor failure", func(t *testing.T) {
		registry.Register("broken", GatewayFactory{
			Name: "Broken",
			New: func(method *PaymentMethod) (PaymentGateway, error) {
				return nil, errors.New("missing access token")
			},
		})

		gateway, err := registry.Make("broken", method)
		assert.Nil(t, gateway)

		var cfgErr *ConfigurationError
		assert.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "broken", cfgErr.Key)
		assert.Contains(t, cfgErr.Error(), "missing access token")
	})
}

func TestGatewayRegistry_NameFor(t *testing.T) {
	registry := NewGatewayRegistry()
	registry.Register("stub", stubFactory())

	name, err := registry.NameFor("stub")
	assert.NoError(t, err)
	assert.Equal(t, "Stub", name)

	_, err = registry.NameFor("missing")
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestGatewayRegistry_Keys(t *testing.T) {
	registry := NewGatewayRegistry()
	assert.Empty(t, registry.Keys())

	registry.Register("stub", stubFactory())
	registry.Register("other", stubFactory())
	assert.ElementsMatch(t, []string{"stub", "other"}, registry.Keys())
}

func TestNullGateway_Name(t *testing.T) {
	assert.Equal(t, NullGatewayName, NullGateway{}.Name())
}
