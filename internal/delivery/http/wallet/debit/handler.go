package debit

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/feastly/payment_service/internal/delivery/http/middleware"
	"github.com/feastly/payment_service/internal/delivery/http/respond"
	"github.com/feastly/payment_service/internal/domain/models"
	debitService "github.com/feastly/payment_service/internal/services/wallet/debit"
	"github.com/feastly/payment_service/pkg/logger"
)

type walletDebitor interface {
	Debit(ctx context.Context, callerID string, req debitService.Request) (*models.WalletState, error)
}

type DebitWalletHandler struct {
	log logger.Logger
	svc walletDebitor
}

func NewDebitWalletHandler(log logger.Logger, svc walletDebitor) *DebitWalletHandler {
	return &DebitWalletHandler{
		log: log,
		svc: svc,
	}
}

func (h *DebitWalletHandler) DebitWallet(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.wallet.debit.DebitWallet"

	var req DebitWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.ErrorContext(r.Context(), "failed to decode debit wallet request",
			logger.String("op", op), logger.String("error", err.Error()))
		respond.Message(w, http.StatusBadRequest, "invalid request body")

		return
	}

	if err := req.validate(); err != nil {
		respond.Message(w, http.StatusBadRequest, "a valid positive amount is required")

		return
	}

	state, err := h.svc.Debit(r.Context(), middleware.CallerID(r.Context()), req.toServiceRepresentation())
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to debit wallet",
			logger.String("op", op), logger.String("error", err.Error()))
		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "wallet updated successfully",
		"wallet":  state.Wallet,
	})
}
