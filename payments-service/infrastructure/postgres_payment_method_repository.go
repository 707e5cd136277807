package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/commercekit/payment-system/payments-service/domain"
	"github.com/commercekit/payment-system/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresPaymentMethodRepository implements PaymentMethodRepository using PostgreSQL
type PostgresPaymentMethodRepository struct {
	db *sqlx.DB
}

// NewPostgresPaymentMethodRepository creates a new PostgresPaymentMethodRepository
func NewPostgresPaymentMethodRepository(db *sqlx.DB) *PostgresPaymentMethodRepository {
	return &PostgresPaymentMethodRepository{db: db}
}

// postgresPaymentMethod represents payment method in database
type postgresPaymentMethod struct {
	ID               string     `db:"id"`
	Name             string     `db:"name"`
	Description      string     `db:"description"`
	Gateway          *string    `db:"gateway"`
	Configuration    []byte     `db:"configuration"`
	Enabled          bool       `db:"enabled"`
	TransactionCount int        `db:"transaction_count"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
	DeletedAt        *time.Time `db:"deleted_at"`
	Version          int        `db:"version"`
}

// Save upserts a payment method. The configuration is always stored as an
// object, never as NULL.
func (r *PostgresPaymentMethodRepository) Save(ctx context.Context, method *domain.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (
			id, name, description, gateway, configuration, enabled,
			transaction_count, created_at, updated_at, deleted_at, version
		) VALUES (
			:id, :name, :description, :gateway, :configuration, :enabled,
			:transaction_count, :created_at, :updated_at, :deleted_at, :version
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			gateway = EXCLUDED.gateway,
			configuration = EXCLUDED.configuration,
			enabled = EXCLUDED.enabled,
			updated_at = EXCLUDED.updated_at,
			deleted_at = EXCLUDED.deleted_at,
			version = EXCLUDED.version`

	pgMethod, err := r.toPostgres(method)
	if err != nil {
		return err
	}

	if _, err := r.db.NamedExecContext(ctx, query, pgMethod); err != nil {
		return errors.Wrap(err, "failed to save payment method")
	}

	return nil
}

// FindByID finds a payment method by ID
func (r *PostgresPaymentMethodRepository) FindByID(ctx context.Context, id models.ID) (*domain.PaymentMethod, error) {
	query := `
		SELECT id, name, description, gateway, configuration, enabled,
			   transaction_count, created_at, updated_at, deleted_at, version
		FROM payment_methods
		WHERE id = $1 AND deleted_at IS NULL`

	var pgMethod postgresPaymentMethod
	err := r.db.GetContext(ctx, &pgMethod, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Payment method not found
		}
		return nil, errors.Wrap(err, "failed to find payment method")
	}

	return r.toDomain(&pgMethod)
}

// FindEnabled finds the enabled, not-deleted payment methods
func (r *PostgresPaymentMethodRepository) FindEnabled(ctx context.Context) ([]*domain.PaymentMethod, error) {
	query := `
		SELECT id, name, description, gateway, configuration, enabled,
			   transaction_count, created_at, updated_at, deleted_at, version
		FROM payment_methods
		WHERE enabled = TRUE AND deleted_at IS NULL
		ORDER BY name ASC`

	var pgMethods []postgresPaymentMethod
	err := r.db.SelectContext(ctx, &pgMethods, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find enabled payment methods")
	}

	methods := make([]*domain.PaymentMethod, len(pgMethods))
	for i, pgMethod := range pgMethods {
		method, err := r.toDomain(&pgMethod)
		if err != nil {
			return nil, err
		}
		methods[i] = method
	}

	return methods, nil
}

// IncrementTransactionCount bumps the counter in a single statement so that
// concurrent increments serialize in the database.
func (r *PostgresPaymentMethodRepository) IncrementTransactionCount(ctx context.Context, id models.ID) error {
	query := `
		UPDATE payment_methods
		SET transaction_count = transaction_count + 1,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id.String())
	if err != nil {
		return errors.Wrap(err, "failed to increment transaction count")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to increment transaction count")
	}

	if affected == 0 {
		return errors.New("payment method not found")
	}

	return nil
}

// toPostgres converts domain payment method to postgres model
func (r *PostgresPaymentMethodRepository) toPostgres(method *domain.PaymentMethod) (*postgresPaymentMethod, error) {
	configuration, err := json.Marshal(method.NormalizedConfiguration())
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode payment method configuration")
	}

	return &postgresPaymentMethod{
		ID:               method.ID.String(),
		Name:             method.Name,
		Description:      method.Description,
		Gateway:          method.Gateway,
		Configuration:    configuration,
		Enabled:          method.Enabled,
		TransactionCount: method.TransactionCount,
		CreatedAt:        method.Timestamps.CreatedAt,
		UpdatedAt:        method.Timestamps.UpdatedAt,
		DeletedAt:        method.Timestamps.DeletedAt,
		Version:          method.Version.Value,
	}, nil
}

// toDomain converts postgres model to domain payment method
func (r *PostgresPaymentMethodRepository) toDomain(pgMethod *postgresPaymentMethod) (*domain.PaymentMethod, error) {
	id, err := models.NewID(pgMethod.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid payment method ID")
	}

	configuration := make(map[string]interface{})
	if len(pgMethod.Configuration) > 0 {
		if err := json.Unmarshal(pgMethod.Configuration, &configuration); err != nil {
			return nil, errors.Wrap(err, "invalid payment method configuration")
		}
	}

	return &domain.PaymentMethod{
		ID:               id,
		Name:             pgMethod.Name,
		Description:      pgMethod.Description,
		Gateway:          pgMethod.Gateway,
		Configuration:    configuration,
		Enabled:          pgMethod.Enabled,
		TransactionCount: pgMethod.TransactionCount,
		Timestamps: models.Timestamps{
			CreatedAt: pgMethod.CreatedAt,
			UpdatedAt: pgMethod.UpdatedAt,
			DeletedAt: pgMethod.DeletedAt,
		},
		Version: models.Version{Value: pgMethod.Version},
	}, nil
}
