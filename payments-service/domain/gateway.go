package domain

import (
	"fmt"
	"sync"
)

// NullGatewayName is the display name of the gateway used by payment methods
// with no gateway key configured.
const NullGatewayName = "None"

// PaymentGateway is the contract every processor-specific strategy satisfies.
// A concrete gateway is constructed bound to the payment method that selected
// it, so it can read that method's configuration.
type PaymentGateway interface {
	Name() string
}

// NullGateway is the no-op strategy for methods without a gateway key. It is
// a first-class gateway so callers never have to nil-check the resolution.
type NullGateway struct{}

func (NullGateway) Name() string {
	return NullGatewayName
}

// ConfigurationError signals a gateway key that is set but cannot be resolved
// to a registered implementation. An unset key is not an error; it resolves
// to the NullGateway.
type ConfigurationError struct {
	Key string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment gateway %q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("payment gateway %q is not registered", e.Key)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// GatewayFactory describes a registered gateway: a display name available
// without instantiation and a constructor bound to a payment method.
type GatewayFactory struct {
	Name string
	New  func(method *PaymentMethod) (PaymentGateway, error)
}

// GatewayRegistry maps gateway keys to constructible implementations.
// Registration happens at startup; lookups are concurrency-safe.
type GatewayRegistry struct {
	mu        sync.RWMutex
	factories map[string]GatewayFactory
}

// NewGatewayRegistry creates an empty gateway registry
func NewGatewayRegistry() *GatewayRegistry {
	return &GatewayRegistry{
		factories: make(map[string]GatewayFactory),
	}
}

// Register adds a gateway factory under the given key, replacing any
// previous registration for that key
func (r *GatewayRegistry) Register(key string, factory GatewayFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[key] = factory
}

// Make instantiates the gateway registered under key, bound to the given
// payment method. Unknown keys and constructor failures surface as
// ConfigurationError.
func (r *GatewayRegistry) Make(key string, method *PaymentMethod) (PaymentGateway, error) {
	r.mu.RLock()
	factory, ok := r.factories[key]
	r.mu.RUnlock()

	if !ok {
		return nil, &ConfigurationError{Key: key}
	}

	gateway, err := factory.New(method)
	if err != nil {
		return nil, &ConfigurationError{Key: key, Err: err}
	}

	return gateway, nil
}

// NameFor returns the display name of the gateway registered under key
// without instantiating it
func (r *GatewayRegistry) NameFor(key string) (string, error) {
	r.mu.RLock()
	factory, ok := r.factories[key]
	r.mu.RUnlock()

	if !ok {
		return "", &ConfigurationError{Key: key}
	}

	return factory.Name, nil
}

// Keys returns the registered gateway keys
func (r *GatewayRegistry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.factories))
	for key := range r.factories {
		keys = append(keys, key)
	}
	return keys
}
