package status

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feastly/payment_service/internal/delivery/http/respond"
	"github.com/feastly/payment_service/internal/domain/models"
	"github.com/feastly/payment_service/pkg/logger"
)

type statusProvider interface {
	PaymentStatus(ctx context.Context, paymentID string) (*models.PaymentStatus, error)
}

type PaymentStatusHandler struct {
	log logger.Logger
	svc statusProvider
}

func NewPaymentStatusHandler(log logger.Logger, svc statusProvider) *PaymentStatusHandler {
	return &PaymentStatusHandler{
		log: log,
		svc: svc,
	}
}

func (h *PaymentStatusHandler) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.payment.status.PaymentStatus"

	paymentID := chi.URLParam(r, "payment_id")
	if paymentID == "" {
		respond.Message(w, http.StatusBadRequest, "payment id is required")

		return
	}

	result, err := h.svc.PaymentStatus(r.Context(), paymentID)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to fetch payment status",
			logger.String("op", op), logger.String("payment_id", paymentID),
			logger.String("error", err.Error()))
		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, result)
}
