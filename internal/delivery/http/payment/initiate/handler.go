package initiate

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/feastly/payment_service/internal/delivery/http/middleware"
	"github.com/feastly/payment_service/internal/delivery/http/respond"
	"github.com/feastly/payment_service/internal/domain/models"
	internalErrors "github.com/feastly/payment_service/internal/lib/errors"
	"github.com/feastly/payment_service/pkg/logger"
)

type orderInitiator interface {
	Initiate(ctx context.Context, callerID string, amount float64, currency string, payload models.OrderPayload) (*models.InitiatedOrder, error)
}

type InitiateOrderHandler struct {
	log logger.Logger

	orderInitiator orderInitiator
}

func NewInitiateOrderHandler(log logger.Logger, orderInitiator orderInitiator) *InitiateOrderHandler {
	return &InitiateOrderHandler{
		log:            log,
		orderInitiator: orderInitiator,
	}
}

func (h *InitiateOrderHandler) InitiateOrder(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.payment.initiate.Initiate"

	var request InitiateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.log.Error(op, logger.String("failed to decode request", err.Error()))
		respond.Error(w, internalErrors.New(internalErrors.KindBadRequest, "invalid request body"))
		return
	}

	initiated, err := h.orderInitiator.Initiate(
		r.Context(),
		middleware.CallerID(r.Context()),
		request.Amount,
		request.currencyOrDefault(),
		request.OrderPayload,
	)
	if err != nil {
		h.log.Error(op, logger.String("failed to initiate order", err.Error()))
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, initiated)
}
