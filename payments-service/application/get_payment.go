package application

import (
	"context"
	"time"

	"github.com/commercekit/payment-system/payments-service/domain"
	"github.com/commercekit/payment-system/shared/models"
	"github.com/pkg/errors"
)

// GetPaymentQuery represents the query to get a payment
type GetPaymentQuery struct {
	PaymentID string `json:"payment_id"`
}

// GetPaymentResponse represents the response for getting a payment
type GetPaymentResponse struct {
	PaymentID       string                 `json:"payment_id"`
	Amount          int64                  `json:"amount"`
	Currency        string                 `json:"currency"`
	PayableType     string                 `json:"payable_type"`
	PayableID       string                 `json:"payable_id"`
	PaymentMethodID string                 `json:"payment_method_id"`
	Data            map[string]interface{} `json:"data,omitempty"`
	Status          string                 `json:"status"`
	StatusLabel     string                 `json:"status_label"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
}

// GetPayment use case
type GetPayment struct {
	paymentRepository domain.PaymentRepository
}

// NewGetPayment creates a new GetPayment use case
func NewGetPayment(paymentRepository domain.PaymentRepository) *GetPayment {
	return &GetPayment{
		paymentRepository: paymentRepository,
	}
}

// Execute executes the get payment use case
func (uc *GetPayment) Execute(ctx context.Context, query *GetPaymentQuery) (*GetPaymentResponse, error) {
	if query.PaymentID == "" {
		return nil, errors.New("payment ID is required")
	}

	paymentID, err := models.NewID(query.PaymentID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid payment ID")
	}

	payment, err := uc.paymentRepository.FindByID(ctx, paymentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment")
	}

	if payment == nil {
		return nil, errors.New("payment not found")
	}

	return &GetPaymentResponse{
		PaymentID:       payment.ID.String(),
		Amount:          payment.Amount.Amount,
		Currency:        payment.Amount.Currency,
		PayableType:     payment.PayableType,
		PayableID:       payment.PayableID,
		PaymentMethodID: payment.PaymentMethodID.String(),
		Data:            payment.Data,
		Status:          payment.Status.String(),
		StatusLabel:     payment.Status.Label(),
		CreatedAt:       payment.Timestamps.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       payment.Timestamps.UpdatedAt.Format(time.RFC3339),
	}, nil
}
