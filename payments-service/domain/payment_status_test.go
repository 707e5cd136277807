package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaymentStatus(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected PaymentStatus
		wantErr  bool
	}{
		{"pending", "pending", PaymentStatusPending, false},
		{"authorized", "authorized", PaymentStatusAuthorized, false},
		{"on hold", "on_hold", PaymentStatusOnHold, false},
		{"paid", "paid", PaymentStatusPaid, false},
		{"partially paid", "partially_paid", PaymentStatusPartiallyPaid, false},
		{"declined", "declined", PaymentStatusDeclined, false},
		{"timeout", "timeout", PaymentStatusTimeout, false},
		{"cancelled", "cancelled", PaymentStatusCancelled, false},
		{"refunded", "refunded", PaymentStatusRefunded, false},
		{"partially refunded", "partially_refunded", PaymentStatusPartiallyRefunded, false},
		{"unknown tag", "settled", "", true},
		{"empty tag", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := NewPaymentStatus(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, status)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, *status)
			}
		})
	}
}

func TestDefaultPaymentStatus(t *testing.T) {
	assert.Equal(t, PaymentStatusPending, DefaultPaymentStatus)
}

func TestPaymentStatus_Label(t *testing.T) {
	// Every enumerated value carries exactly one non-empty label
	for _, status := range PaymentStatuses() {
		assert.NotEmpty(t, status.Label(), "status %s has no label", status)
	}

	assert.Equal(t, "Paid", PaymentStatusPaid.Label())
	assert.Equal(t, "On hold", PaymentStatusOnHold.Label())
	assert.Equal(t, "Timed out", PaymentStatusTimeout.Label())
	assert.Empty(t, PaymentStatus("settled").Label())
}

func TestPaymentStatus_IsValid(t *testing.T) {
	assert.True(t, PaymentStatusRefunded.IsValid())
	assert.False(t, PaymentStatus("settled").IsValid())
}

func TestPaymentStatuses_Closed(t *testing.T) {
	assert.Len(t, PaymentStatuses(), 10)
}
