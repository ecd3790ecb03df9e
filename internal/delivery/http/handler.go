package payment_service_http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feastly/payment_service/internal/delivery/http/middleware"
	"github.com/feastly/payment_service/internal/delivery/http/payment/finalize"
	"github.com/feastly/payment_service/internal/delivery/http/payment/initiate"
	"github.com/feastly/payment_service/internal/delivery/http/payment/status"
	"github.com/feastly/payment_service/internal/delivery/http/wallet/credit"
	"github.com/feastly/payment_service/internal/delivery/http/wallet/debit"
)

type Handler struct {
	allowedOrigins []string

	initiateOrder *initiate.InitiateOrderHandler
	finalizeOrder *finalize.FinalizeOrderHandler
	paymentStatus *status.PaymentStatusHandler
	creditWallet  *credit.CreditWalletHandler
	debitWallet   *debit.DebitWalletHandler
}

func NewHandler(
	allowedOrigins []string,
	initiateOrder *initiate.InitiateOrderHandler,
	finalizeOrder *finalize.FinalizeOrderHandler,
	paymentStatus *status.PaymentStatusHandler,
	creditWallet *credit.CreditWalletHandler,
	debitWallet *debit.DebitWalletHandler,
) *Handler {
	return &Handler{
		allowedOrigins: allowedOrigins,
		initiateOrder:  initiateOrder,
		finalizeOrder:  finalizeOrder,
		paymentStatus:  paymentStatus,
		creditWallet:   creditWallet,
		debitWallet:    debitWallet,
	}
}

func (h *Handler) InitRoutes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(middleware.CORS(h.allowedOrigins))
	mux.Use(middleware.Auth)

	mux.Route("/api", func(r chi.Router) {
		r.Post("/initiate-order", h.initiateOrder.InitiateOrder)
		r.Post("/finalize-order", h.finalizeOrder.FinalizeOrder)
		r.Get("/payment-status/{payment_id}", h.paymentStatus.PaymentStatus)

		r.Route("/wallet", func(r chi.Router) {
			r.Post("/credit", h.creditWallet.CreditWallet)
			r.Post("/debit", h.debitWallet.DebitWallet)
		})
	})

	return mux
}
