package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/commercekit/payment-system/payments-service/domain"
	"github.com/commercekit/payment-system/shared/events"
	"github.com/commercekit/payment-system/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresPaymentRepository implements PaymentRepository using PostgreSQL
type PostgresPaymentRepository struct {
	db *sqlx.DB
}

// NewPostgresPaymentRepository creates a new PostgresPaymentRepository
func NewPostgresPaymentRepository(db *sqlx.DB) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{db: db}
}

// postgresPayment represents payment in database
type postgresPayment struct {
	ID              string     `db:"id"`
	Amount          int64      `db:"amount"`
	Currency        string     `db:"currency"`
	PayableType     string     `db:"payable_type"`
	PayableID       string     `db:"payable_id"`
	PaymentMethodID string     `db:"payment_method_id"`
	Data            []byte     `db:"data"`
	Status          string     `db:"status"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
	Version         int        `db:"version"`
}

// Save saves a payment to the database
func (r *PostgresPaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	for _, event := range payment.Events() {
		if event.EventType == events.PaymentCreatedEvent {
			return r.insertPayment(ctx, payment)
		}
	}
	return r.updatePayment(ctx, payment)
}

// insertPayment inserts a new payment
func (r *PostgresPaymentRepository) insertPayment(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
			id, amount, currency, payable_type, payable_id,
			payment_method_id, data, status,
			created_at, updated_at, version
		) VALUES (
			:id, :amount, :currency, :payable_type, :payable_id,
			:payment_method_id, :data, :status,
			:created_at, :updated_at, :version
		)`

	pgPayment, err := r.toPostgres(payment)
	if err != nil {
		return err
	}

	if _, err := r.db.NamedExecContext(ctx, query, pgPayment); err != nil {
		return errors.Wrap(err, "failed to insert payment")
	}

	return nil
}

// updatePayment updates an existing payment
func (r *PostgresPaymentRepository) updatePayment(ctx context.Context, payment *domain.Payment) error {
	query := `
		UPDATE payments
		SET status = :status, data = :data, updated_at = :updated_at, version = :version
		WHERE id = :id AND version = :old_version`

	data, err := marshalData(payment.Data)
	if err != nil {
		return err
	}

	_, err = r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":          payment.ID.String(),
		"status":      string(payment.Status),
		"data":        data,
		"updated_at":  payment.Timestamps.UpdatedAt,
		"version":     payment.Version.Value,
		"old_version": payment.Version.Value - 1, // Optimistic locking
	})

	if err != nil {
		return errors.Wrap(err, "failed to update payment")
	}

	return nil
}

// FindByID finds a payment by ID
func (r *PostgresPaymentRepository) FindByID(ctx context.Context, id models.ID) (*domain.Payment, error) {
	query := `
		SELECT id, amount, currency, payable_type, payable_id,
			   payment_method_id, data, status,
			   created_at, updated_at, deleted_at, version
		FROM payments
		WHERE id = $1 AND deleted_at IS NULL`

	var pgPayment postgresPayment
	err := r.db.GetContext(ctx, &pgPayment, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Payment not found
		}
		return nil, errors.Wrap(err, "failed to find payment")
	}

	return r.toDomain(&pgPayment)
}

// FindByPayable finds the payments recorded for a payable
func (r *PostgresPaymentRepository) FindByPayable(ctx context.Context, payableType, payableID string) ([]*domain.Payment, error) {
	query := `
		SELECT id, amount, currency, payable_type, payable_id,
			   payment_method_id, data, status,
			   created_at, updated_at, deleted_at, version
		FROM payments
		WHERE payable_type = $1 AND payable_id = $2 AND deleted_at IS NULL
		ORDER BY created_at DESC`

	var pgPayments []postgresPayment
	err := r.db.SelectContext(ctx, &pgPayments, query, payableType, payableID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments by payable")
	}

	payments := make([]*domain.Payment, len(pgPayments))
	for i, pgPayment := range pgPayments {
		payment, err := r.toDomain(&pgPayment)
		if err != nil {
			return nil, err
		}
		payments[i] = payment
	}

	return payments, nil
}

// toPostgres converts domain payment to postgres model
func (r *PostgresPaymentRepository) toPostgres(payment *domain.Payment) (*postgresPayment, error) {
	data, err := marshalData(payment.Data)
	if err != nil {
		return nil, err
	}

	return &postgresPayment{
		ID:              payment.ID.String(),
		Amount:          payment.Amount.Amount,
		Currency:        payment.Amount.Currency,
		PayableType:     payment.PayableType,
		PayableID:       payment.PayableID,
		PaymentMethodID: payment.PaymentMethodID.String(),
		Data:            data,
		Status:          string(payment.Status),
		CreatedAt:       payment.Timestamps.CreatedAt,
		UpdatedAt:       payment.Timestamps.UpdatedAt,
		DeletedAt:       payment.Timestamps.DeletedAt,
		Version:         payment.Version.Value,
	}, nil
}

// toDomain converts postgres model to domain payment
func (r *PostgresPaymentRepository) toDomain(pgPayment *postgresPayment) (*domain.Payment, error) {
	id, err := models.NewID(pgPayment.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid payment ID")
	}

	methodID, err := models.NewID(pgPayment.PaymentMethodID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid payment method ID")
	}

	status, err := domain.NewPaymentStatus(pgPayment.Status)
	if err != nil {
		return nil, errors.Wrap(err, "invalid payment status")
	}

	data := make(map[string]interface{})
	if len(pgPayment.Data) > 0 {
		if err := json.Unmarshal(pgPayment.Data, &data); err != nil {
			return nil, errors.Wrap(err, "invalid payment data")
		}
	}

	return &domain.Payment{
		ID:              id,
		Amount:          models.NewMoney(pgPayment.Amount, pgPayment.Currency),
		PayableType:     pgPayment.PayableType,
		PayableID:       pgPayment.PayableID,
		PaymentMethodID: methodID,
		Data:            data,
		Status:          *status,
		Timestamps: models.Timestamps{
			CreatedAt: pgPayment.CreatedAt,
			UpdatedAt: pgPayment.UpdatedAt,
			DeletedAt: pgPayment.DeletedAt,
		},
		Version: models.Version{Value: pgPayment.Version},
	}, nil
}

// marshalData normalizes a nil mapping to an empty JSON object
func marshalData(data map[string]interface{}) ([]byte, error) {
	if data == nil {
		data = map[string]interface{}{}
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode payment data")
	}

	return encoded, nil
}
