package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/feastly/payment_service/internal/repository/order"
	"github.com/feastly/payment_service/internal/repository/wallet"
	"github.com/feastly/payment_service/pkg/logger"
)

type Repository struct {
	log logger.Logger

	*order.Repository
	Wallet *wallet.Repository
}

func NewRepository(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{
		log:        log,
		Repository: order.New(log, db),
		Wallet:     wallet.New(log, db),
	}
}
