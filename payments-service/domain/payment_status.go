package domain

import (
	"github.com/pkg/errors"
)

// PaymentStatus identifies where a payment sits in its settlement lifecycle.
// The set of values is closed; transition legality between values is enforced
// by whichever collaborator mutates a payment after creation, not here.
type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "pending"
	PaymentStatusAuthorized        PaymentStatus = "authorized"
	PaymentStatusOnHold            PaymentStatus = "on_hold"
	PaymentStatusPaid              PaymentStatus = "paid" // aka captured
	PaymentStatusPartiallyPaid     PaymentStatus = "partially_paid"
	PaymentStatusDeclined          PaymentStatus = "declined"
	PaymentStatusTimeout           PaymentStatus = "timeout"
	PaymentStatusCancelled         PaymentStatus = "cancelled"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
)

// DefaultPaymentStatus is the status of a payment whose settlement has not
// started yet.
const DefaultPaymentStatus = PaymentStatusPending

// paymentStatusLabels is built once and never mutated afterwards. Locale
// resolution of the labels happens outside this core.
var paymentStatusLabels = map[PaymentStatus]string{
	PaymentStatusPending:           "Pending",
	PaymentStatusAuthorized:        "Authorized",
	PaymentStatusOnHold:            "On hold",
	PaymentStatusPaid:              "Paid",
	PaymentStatusPartiallyPaid:     "Partially Paid",
	PaymentStatusDeclined:          "Declined",
	PaymentStatusTimeout:           "Timed out",
	PaymentStatusCancelled:         "Cancelled",
	PaymentStatusRefunded:          "Refunded",
	PaymentStatusPartiallyRefunded: "Partially Refunded",
}

var allPaymentStatuses = func() map[string]PaymentStatus {
	statuses := make(map[string]PaymentStatus, len(paymentStatusLabels))
	for status := range paymentStatusLabels {
		statuses[status.String()] = status
	}
	return statuses
}()

// NewPaymentStatus parses a stored status tag into a PaymentStatus
func NewPaymentStatus(value string) (*PaymentStatus, error) {
	if status, ok := allPaymentStatuses[value]; ok {
		return &status, nil
	}
	return nil, errors.Errorf("unknown payment status: %s", value)
}

func (s PaymentStatus) String() string {
	return string(s)
}

// Label returns the human-readable label for the status
func (s PaymentStatus) Label() string {
	return paymentStatusLabels[s]
}

// IsValid reports whether the status belongs to the closed set
func (s PaymentStatus) IsValid() bool {
	_, ok := paymentStatusLabels[s]
	return ok
}

// PaymentStatuses returns every status the core recognizes
func PaymentStatuses() []PaymentStatus {
	statuses := make([]PaymentStatus, 0, len(paymentStatusLabels))
	for status := range paymentStatusLabels {
		statuses = append(statuses, status)
	}
	return statuses
}
