package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/feastly/payment_service/internal/domain/models"
	internalErrors "github.com/feastly/payment_service/internal/lib/errors"
	"github.com/feastly/payment_service/pkg/logger"
)

// Repository invokes the atomic order placement function. All durable order
// state, pricing checks and inventory races live inside that function; this
// side only forwards parameters and decodes the discriminated result.
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

func (r *Repository) PlaceOrder(ctx context.Context, params models.OrderPayload) (*models.PlacementResult, error) {
	const op = "repository.order.PlaceOrder"

	args, err := json.Marshal(map[string]any(params))
	if err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: marshal params: %w", op, err)
	}

	const query = `SELECT handle_place_order($1::jsonb)`

	var data []byte
	if err = r.db.QueryRowxContext(ctx, query, args).Scan(&data); err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, r.translateError(op, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%s: placement function returned no data", op)
	}

	var envelope struct {
		Status string `json:"status"`
	}
	if err = json.Unmarshal(data, &envelope); err != nil {
		r.log.Error(op, logger.String("decode error", err.Error()))
		return nil, fmt.Errorf("%s: decode result: %w", op, err)
	}

	return &models.PlacementResult{
		Status: models.ParseRPCStatus(envelope.Status),
		Data:   data,
	}, nil
}

// translateError honors business errors the placement function raises via
// RAISE EXCEPTION with a JSON message of the form {"status": <http>, ...}.
// Everything else stays a plain transport error.
func (r *Repository) translateError(op string, err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	message := []byte(pqErr.Message)

	var parsed struct {
		Status int `json:"status"`
	}
	if jsonErr := json.Unmarshal(message, &parsed); jsonErr != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	statusCode := parsed.Status
	if statusCode == 0 {
		statusCode = 500
	}

	return &internalErrors.StructuredRPCError{
		StatusCode: statusCode,
		Body:       json.RawMessage(message),
	}
}
