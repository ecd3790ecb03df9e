package credit

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/feastly/payment_service/internal/delivery/http/middleware"
	"github.com/feastly/payment_service/internal/delivery/http/respond"
	"github.com/feastly/payment_service/internal/domain/models"
	creditService "github.com/feastly/payment_service/internal/services/wallet/credit"
	"github.com/feastly/payment_service/pkg/logger"
)

type walletCreditor interface {
	Credit(ctx context.Context, callerID string, req creditService.Request) (*models.WalletState, error)
}

type CreditWalletHandler struct {
	log logger.Logger
	svc walletCreditor
}

func NewCreditWalletHandler(log logger.Logger, svc walletCreditor) *CreditWalletHandler {
	return &CreditWalletHandler{
		log: log,
		svc: svc,
	}
}

func (h *CreditWalletHandler) CreditWallet(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.wallet.credit.CreditWallet"

	var req CreditWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.ErrorContext(r.Context(), "failed to decode credit wallet request",
			logger.String("op", op), logger.String("error", err.Error()))
		respond.Message(w, http.StatusBadRequest, "invalid request body")

		return
	}

	if err := req.validate(); err != nil {
		respond.Message(w, http.StatusBadRequest, "a valid positive amount is required")

		return
	}

	state, err := h.svc.Credit(r.Context(), middleware.CallerID(r.Context()), req.toServiceRepresentation())
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to credit wallet",
			logger.String("op", op), logger.String("error", err.Error()))
		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "wallet updated successfully",
		"wallet":  state.Wallet,
	})
}
