package domain

// Payable is the read-only contract of anything that can owe money (an
// order, an invoice). The payments core never mutates a payable; it only
// reads the figures it needs to create a payment.
type Payable interface {
	// Amount is the nominal total owed, in minor units
	Amount() int64

	// CardReservedBalance is the amount already secured against the
	// customer's stored card, in minor units. It replaces Amount when a
	// card-on-file method settles the payment.
	CardReservedBalance() int64

	Currency() string
	PayableType() string
	PayableID() string
}
