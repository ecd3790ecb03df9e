package app

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	httpapp "github.com/feastly/payment_service/internal/app/http"
	"github.com/feastly/payment_service/internal/cache_impl"
	"github.com/feastly/payment_service/internal/config"
	payment_service_http "github.com/feastly/payment_service/internal/delivery/http"
	finalizeHandler "github.com/feastly/payment_service/internal/delivery/http/payment/finalize"
	initiateHandler "github.com/feastly/payment_service/internal/delivery/http/payment/initiate"
	statusHandler "github.com/feastly/payment_service/internal/delivery/http/payment/status"
	creditHandler "github.com/feastly/payment_service/internal/delivery/http/wallet/credit"
	debitHandler "github.com/feastly/payment_service/internal/delivery/http/wallet/debit"
	"github.com/feastly/payment_service/internal/domain/models"
	"github.com/feastly/payment_service/internal/lib/token"
	"github.com/feastly/payment_service/internal/repository"
	paymentFinalize "github.com/feastly/payment_service/internal/services/payment/finalize"
	paymentInitiate "github.com/feastly/payment_service/internal/services/payment/initiate"
	paymentStatus "github.com/feastly/payment_service/internal/services/payment/status"
	walletCredit "github.com/feastly/payment_service/internal/services/wallet/credit"
	walletDebit "github.com/feastly/payment_service/internal/services/wallet/debit"
	"github.com/feastly/payment_service/pkg/brokers/kafka/producer"
	"github.com/feastly/payment_service/pkg/databases/postgres"
	"github.com/feastly/payment_service/pkg/gateway/razorpay"
	"github.com/feastly/payment_service/pkg/logger"
)

const (
	finalizedCacheSize = 1024
	finalizedCacheTTL  = time.Hour
)

type App struct {
	log logger.Logger

	HTTPServer *httpapp.App

	db       *postgres.PgDB
	producer *producer.Producer
}

func NewApp(ctx context.Context, log logger.Logger, cfg *config.Config, postgresDSN string) (*App, error) {
	db, err := postgres.NewPostgresDB(ctx, log, postgresDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	repo := repository.NewRepository(log, db.GetDB())

	tokenManager := token.NewManager(cfg.Token.Secret, cfg.Token.TTL)

	finalizedCache := cache_impl.NewPaymentCache(
		expirable.NewLRU[string, time.Time](finalizedCacheSize, nil, finalizedCacheTTL),
		log,
	)

	var orderEventsChan chan models.Event

	var kafkaProducer *producer.Producer
	if len(cfg.Kafka.BrokerList) > 0 {
		orderEventsChan = make(chan models.Event, 64)

		kafkaProducer, err = producer.NewProducer(
			ctx,
			log,
			cfg.Kafka.OrderEventTopic,
			orderEventsChan,
			make(chan struct{}),
			cfg.Kafka.BrokerList,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create kafka producer: %w", err)
		}

		go kafkaProducer.ProduceOrderEvents(ctx)
	} else {
		log.Warn("kafka brokers are not configured, order events will not be published")
	}

	var (
		initiateSvc *paymentInitiate.Service
		finalizeSvc *paymentFinalize.Service
		statusSvc   *paymentStatus.Service
	)

	if cfg.Gateway.KeyID != "" && cfg.Gateway.KeySecret != "" {
		gatewayClient := razorpay.NewClient(log, cfg.Gateway.BaseURL, cfg.Gateway.KeyID, cfg.Gateway.KeySecret)

		initiateSvc = paymentInitiate.New(log, gatewayClient, tokenManager)
		finalizeSvc = paymentFinalize.New(log, gatewayClient, tokenManager, repo, finalizedCache, orderEventsChan)
		statusSvc = paymentStatus.New(log, gatewayClient)
	} else {
		log.Warn("payment gateway keys are not set, payment endpoints will report unavailable")

		initiateSvc = paymentInitiate.New(log, nil, tokenManager)
		finalizeSvc = paymentFinalize.New(log, nil, tokenManager, repo, finalizedCache, orderEventsChan)
		statusSvc = paymentStatus.New(log, nil)
	}

	creditSvc := walletCredit.New(log, repo.Wallet)
	debitSvc := walletDebit.New(log, repo.Wallet)

	handler := payment_service_http.NewHandler(
		cfg.HTTP.AllowedOrigins,
		initiateHandler.NewInitiateOrderHandler(log, initiateSvc),
		finalizeHandler.NewFinalizeOrderHandler(log, finalizeSvc),
		statusHandler.NewPaymentStatusHandler(log, statusSvc),
		creditHandler.NewCreditWalletHandler(log, creditSvc),
		debitHandler.NewDebitWalletHandler(log, debitSvc),
	)

	return &App{
		log:        log,
		HTTPServer: httpapp.NewApp(log, handler, cfg.HTTP.Port),
		db:         db,
		producer:   kafkaProducer,
	}, nil
}

func (a *App) Stop(ctx context.Context) error {
	if err := a.HTTPServer.Stop(ctx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			return fmt.Errorf("failed to close kafka producer: %w", err)
		}
	}

	if err := a.db.Close(); err != nil {
		return fmt.Errorf("failed to close postgres: %w", err)
	}

	a.log.Info("application stopped")

	return nil
}
