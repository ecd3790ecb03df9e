package wallet

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/feastly/payment_service/internal/domain/models"
	internalErrors "github.com/feastly/payment_service/internal/lib/errors"
	"github.com/feastly/payment_service/pkg/logger"
)

// Repository wraps the wallet mutation functions plus the handful of direct
// table reads the credit gating needs. Balance arithmetic and durability live
// in the functions, not here.
type Repository struct {
	log logger.Logger
	db  *sqlx.DB
}

func New(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{
		log: log,
		db:  db,
	}
}

func (r *Repository) IncreaseBalance(ctx context.Context, adj models.WalletAdjustment) (*models.WalletState, error) {
	const op = "repository.wallet.IncreaseBalance"

	const query = `SELECT increase_wallet_balance($1, $2, $3, $4, $5)`

	return r.callWalletFunction(ctx, op, query, adj)
}

func (r *Repository) DecreaseBalance(ctx context.Context, adj models.WalletAdjustment) (*models.WalletState, error) {
	const op = "repository.wallet.DecreaseBalance"

	const query = `SELECT decrease_wallet_balance($1, $2, $3, $4, $5)`

	return r.callWalletFunction(ctx, op, query, adj)
}

func (r *Repository) callWalletFunction(ctx context.Context, op, query string, adj models.WalletAdjustment) (*models.WalletState, error) {
	var data []byte
	err := r.db.QueryRowxContext(ctx, query,
		adj.UserID,
		adj.Amount,
		adj.TransactionType,
		nullable(adj.OrderID),
		nullable(adj.Description),
	).Scan(&data)
	if err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var state models.WalletState
	if err = json.Unmarshal(data, &state); err != nil {
		r.log.Error(op, logger.String("decode error", err.Error()))
		return nil, fmt.Errorf("%s: decode result: %w", op, err)
	}

	return &state, nil
}

func (r *Repository) ReferredBy(ctx context.Context, userID string) (string, error) {
	const op = "repository.wallet.ReferredBy"

	const query = `SELECT COALESCE(referred_by, '') FROM users WHERE user_id = $1`

	var referredBy string
	if err := r.db.QueryRowxContext(ctx, query, userID).Scan(&referredBy); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", internalErrors.ErrUserNotFound
		}
		r.log.Error(op, logger.String("error", err.Error()))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return referredBy, nil
}

func (r *Repository) ReviewCount(ctx context.Context, userID string) (int, error) {
	const op = "repository.wallet.ReviewCount"

	const query = `SELECT COUNT(*) FROM user_reviews WHERE user_id = $1`

	var count int
	if err := r.db.QueryRowxContext(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (r *Repository) OrderStatus(ctx context.Context, orderID string) (string, error) {
	const op = "repository.wallet.OrderStatus"

	const query = `SELECT status FROM orders WHERE order_id = $1`

	var status string
	if err := r.db.QueryRowxContext(ctx, query, orderID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", internalErrors.ErrOrderNotFound
		}
		r.log.Error(op, logger.String("error", err.Error()))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return status, nil
}

// CreditReferrer applies the one-time referral bonus to the referrer looked
// up by their referral code.
func (r *Repository) CreditReferrer(ctx context.Context, referralCode string, amount float64) error {
	const op = "repository.wallet.CreditReferrer"

	const query = `UPDATE users SET wallet_balance = wallet_balance + $1 WHERE referral_code = $2`

	if _, err := r.db.ExecContext(ctx, query, amount, referralCode); err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func nullable(value string) sql.NullString {
	return sql.NullString{
		String: value,
		Valid:  value != "",
	}
}
