package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/commercekit/payment-system/payments-service/application"
	"github.com/commercekit/payment-system/payments-service/domain"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

// PaymentHandlers contains payment HTTP handlers
type PaymentHandlers struct {
	createPayment      *application.CreatePayment
	getPayment         *application.GetPayment
	listPaymentMethods *application.ListPaymentMethods
}

// NewPaymentHandlers creates new payment handlers
func NewPaymentHandlers(
	createPayment *application.CreatePayment,
	getPayment *application.GetPayment,
	listPaymentMethods *application.ListPaymentMethods,
) *PaymentHandlers {
	return &PaymentHandlers{
		createPayment:      createPayment,
		getPayment:         getPayment,
		listPaymentMethods: listPaymentMethods,
	}
}

// CreatePayment handles payment creation requests
func (h *PaymentHandlers) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var cmd application.CreatePaymentCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.createPayment.Execute(r.Context(), &cmd)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// GetPayment handles payment retrieval requests
func (h *PaymentHandlers) GetPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		http.Error(w, "Payment ID is required", http.StatusBadRequest)
		return
	}

	query := &application.GetPaymentQuery{
		PaymentID: paymentID,
	}

	response, err := h.getPayment.Execute(r.Context(), query)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ListPaymentMethods handles payment method listing requests
func (h *PaymentHandlers) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	response, err := h.listPaymentMethods.Execute(r.Context())
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// RegisterRoutes registers payment routes
func (h *PaymentHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Post("/", h.CreatePayment)
		r.Get("/{id}", h.GetPayment)
	})
	r.Get("/payment-methods", h.ListPaymentMethods)
}

func statusForError(err error) int {
	var configErr *domain.ConfigurationError
	if errors.As(err, &configErr) {
		return http.StatusUnprocessableEntity
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "not found"):
		return http.StatusNotFound
	case strings.Contains(msg, "invalid command"),
		strings.Contains(msg, "is required"),
		strings.Contains(msg, "invalid payment"),
		strings.Contains(msg, "disabled"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
