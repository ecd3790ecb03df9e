package debit

import (
	"context"

	"github.com/feastly/payment_service/internal/domain/models"
	internalErrors "github.com/feastly/payment_service/internal/lib/errors"
	"github.com/feastly/payment_service/pkg/logger"
)

type balanceDecreaser interface {
	DecreaseBalance(ctx context.Context, adj models.WalletAdjustment) (*models.WalletState, error)
}

type Request struct {
	Amount          float64
	OrderID         string
	TransactionType string
	Description     string
}

type Service struct {
	log  logger.Logger
	repo balanceDecreaser
}

func New(log logger.Logger, repo balanceDecreaser) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) Debit(ctx context.Context, callerID string, req Request) (*models.WalletState, error) {
	const op = "services.wallet.debit.Debit"

	if callerID == "" {
		return nil, internalErrors.New(internalErrors.KindUnauthorized, "unauthorized")
	}

	if req.Amount == 0 {
		return nil, internalErrors.New(internalErrors.KindBadRequest, "invalid amount")
	}

	transactionType := req.TransactionType
	if transactionType == "" {
		transactionType = "debit"
	}

	state, err := s.repo.DecreaseBalance(ctx, models.WalletAdjustment{
		UserID:          callerID,
		Amount:          req.Amount,
		TransactionType: transactionType,
		OrderID:         req.OrderID,
		Description:     req.Description,
	})
	if err != nil {
		s.log.Error(op, logger.String("decrease balance error", err.Error()))
		return nil, internalErrors.New(internalErrors.KindBadRequest, "failed to update wallet balance")
	}

	return state, nil
}
