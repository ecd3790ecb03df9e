package credit

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/feastly/payment_service/internal/domain/models"
	internalErrors "github.com/feastly/payment_service/internal/lib/errors"
	"github.com/feastly/payment_service/internal/services/wallet/eligibility"
	"github.com/feastly/payment_service/pkg/logger"
)

// ReferralBonus is the one-time top-up granted to the referrer when the
// stored referral relationship matches the supplied code.
const ReferralBonus = 20

const cancelledOrderStatus = "cancelled"

type walletRepository interface {
	IncreaseBalance(ctx context.Context, adj models.WalletAdjustment) (*models.WalletState, error)
	ReferredBy(ctx context.Context, userID string) (string, error)
	ReviewCount(ctx context.Context, userID string) (int, error)
	OrderStatus(ctx context.Context, orderID string) (string, error)
	CreditReferrer(ctx context.Context, referralCode string, amount float64) error
}

// Request mirrors the credit endpoint body. Referral, Cancel and Review each
// switch on an extra eligibility gate before the balance mutation.
type Request struct {
	Amount          float64
	OrderID         string
	TransactionType string
	Description     string
	Referral        bool
	ReferralCode    string
	Cancel          bool
	Review          bool
}

type Service struct {
	log  logger.Logger
	repo walletRepository
}

func New(log logger.Logger, repo walletRepository) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) Credit(ctx context.Context, callerID string, req Request) (*models.WalletState, error) {
	const op = "services.wallet.credit.Credit"

	if callerID == "" {
		return nil, internalErrors.New(internalErrors.KindUnauthorized, "unauthorized")
	}

	if req.Amount == 0 {
		return nil, internalErrors.New(internalErrors.KindBadRequest, "invalid amount")
	}

	checkReferral := req.Referral && req.ReferralCode != ""

	// the gating reads are independent of each other, fan them out
	var (
		referredBy  string
		reviewCount int
		orderStatus string
	)

	g, gCtx := errgroup.WithContext(ctx)

	if checkReferral {
		g.Go(func() error {
			var err error
			if referredBy, err = s.repo.ReferredBy(gCtx, callerID); err != nil {
				if errors.Is(err, internalErrors.ErrUserNotFound) {
					return internalErrors.New(internalErrors.KindBadRequest, "user not found")
				}
				s.log.Error(op, logger.String("referred_by error", err.Error()))
				return err
			}
			return nil
		})
	}

	if req.Review {
		g.Go(func() error {
			var err error
			if reviewCount, err = s.repo.ReviewCount(gCtx, callerID); err != nil {
				s.log.Error(op, logger.String("review count error", err.Error()))
				return internalErrors.New(internalErrors.KindBadRequest, "error fetching user reviews")
			}
			return nil
		})
	}

	if req.Cancel {
		g.Go(func() error {
			var err error
			if orderStatus, err = s.repo.OrderStatus(gCtx, req.OrderID); err != nil {
				s.log.Error(op, logger.String("order status error", err.Error()))
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if req.Review {
		if err := eligibility.ReviewEligible(reviewCount); err != nil {
			return nil, err
		}
	}

	if req.Cancel && orderStatus == cancelledOrderStatus {
		return nil, internalErrors.New(internalErrors.KindBadRequest, "order is already cancelled")
	}

	if checkReferral && eligibility.ReferralEligible(referredBy, req.ReferralCode) {
		if err := s.repo.CreditReferrer(ctx, req.ReferralCode, ReferralBonus); err != nil {
			s.log.Error(op, logger.String("credit referrer error", err.Error()))
			return nil, internalErrors.New(internalErrors.KindBadRequest, "error updating wallet balance")
		}
	}

	transactionType := req.TransactionType
	if transactionType == "" {
		transactionType = "credit"
	}

	state, err := s.repo.IncreaseBalance(ctx, models.WalletAdjustment{
		UserID:          callerID,
		Amount:          req.Amount,
		TransactionType: transactionType,
		OrderID:         req.OrderID,
		Description:     req.Description,
	})
	if err != nil {
		s.log.Error(op, logger.String("increase balance error", err.Error()))
		return nil, internalErrors.New(internalErrors.KindBadRequest, "failed to update wallet balance")
	}

	return state, nil
}
