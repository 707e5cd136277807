package infrastructure

import (
	"encoding/json"
	"testing"

	"github.com/commercekit/payment-system/shared/events"
	"github.com/commercekit/payment-system/shared/models"
	"github.com/stretchr/testify/assert"
)

func TestEventEnvelopeRoundTrip(t *testing.T) {
	type createdPayload struct {
		PaymentID string `json:"payment_id"`
	}

	t.Run("published event survives the queue intact", func(t *testing.T) {
		sent := events.NewEvent(models.GenerateUUID(), events.PaymentCreatedEvent, createdPayload{PaymentID: "pay-1"}).
			WithMetadata("source", "payments-service")

		envelope, err := newSNSMessage(sent)
		assert.NoError(t, err)

		body, err := json.Marshal(envelope)
		assert.NoError(t, err)

		var decoded snsMessage
		assert.NoError(t, json.Unmarshal(body, &decoded))

		received, err := decoded.toEvent()
		assert.NoError(t, err)

		assert.Equal(t, sent.ID, received.ID)
		assert.Equal(t, events.PaymentCreatedEvent, received.EventType)
		assert.True(t, received.Matches("payment.#", nil))

		var got createdPayload
		assert.NoError(t, received.UnmarshalPayload(&got))
		assert.Equal(t, "pay-1", got.PaymentID)

		source, ok := received.Metadata.Get("source")
		assert.True(t, ok)
		assert.Equal(t, "payments-service", source)
	})

	t.Run("nil metadata becomes an empty map", func(t *testing.T) {
		envelope, err := newSNSMessage(events.NewEvent(models.GenerateUUID(), events.PaymentCreatedEvent, nil))
		assert.NoError(t, err)
		envelope.Metadata = nil

		received, err := envelope.toEvent()
		assert.NoError(t, err)
		assert.NotNil(t, received.Metadata)
	})

	t.Run("invalid event id is rejected", func(t *testing.T) {
		envelope := &snsMessage{ID: "not-a-uuid", Topic: events.PaymentCreatedEvent}

		_, err := envelope.toEvent()
		assert.Error(t, err)
	})
}

func TestSplitToChunks(t *testing.T) {
	chunks := splitToChunks([]int{1, 2, 3, 4, 5}, 2)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)

	assert.Nil(t, splitToChunks([]int{}, 2))
}
