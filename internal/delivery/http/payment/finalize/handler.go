package finalize

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/feastly/payment_service/internal/delivery/http/middleware"
	"github.com/feastly/payment_service/internal/delivery/http/respond"
	"github.com/feastly/payment_service/internal/domain/models"
	finalizeService "github.com/feastly/payment_service/internal/services/payment/finalize"
	"github.com/feastly/payment_service/pkg/logger"
)

type orderFinalizer interface {
	Finalize(ctx context.Context, callerID string, cb finalizeService.Callback) (*models.PlacementResult, error)
}

type FinalizeOrderHandler struct {
	log logger.Logger
	svc orderFinalizer
}

func NewFinalizeOrderHandler(log logger.Logger, svc orderFinalizer) *FinalizeOrderHandler {
	return &FinalizeOrderHandler{
		log: log,
		svc: svc,
	}
}

func (h *FinalizeOrderHandler) FinalizeOrder(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.payment.finalize.FinalizeOrder"

	var req FinalizeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.ErrorContext(r.Context(), "failed to decode finalize order request",
			logger.String("op", op), logger.String("error", err.Error()))
		respond.Message(w, http.StatusBadRequest, "invalid request body")

		return
	}

	if err := req.validate(); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())

		return
	}

	result, err := h.svc.Finalize(r.Context(), middleware.CallerID(r.Context()), req.toServiceRepresentation())
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to finalize order",
			logger.String("op", op), logger.String("error", err.Error()))
		respond.Error(w, err)

		return
	}

	code, known := statusCode(result.Status)
	if !known {
		h.log.ErrorContext(r.Context(), "unknown placement status from rpc",
			logger.String("op", op), logger.String("status", result.Status.String()))
		respond.Message(w, http.StatusInternalServerError, "received an unknown response from the server")

		return
	}

	respond.Raw(w, code, result.Data)
}

func statusCode(status models.RPCStatus) (int, bool) {
	switch status {
	case models.RPCStatusSuccess:
		return http.StatusOK, true
	case models.RPCStatusPriceChange:
		return http.StatusConflict, true
	case models.RPCStatusItemDeactivated:
		return http.StatusGone, true
	case models.RPCStatusItemNotFound:
		return http.StatusNotFound, true
	default:
		return 0, false
	}
}
