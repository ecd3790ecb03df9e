package cache_impl

import (
	"time"

	"github.com/feastly/payment_service/pkg/logger"
)

type CacheI[K comparable, V any] interface {
	Get(key K) (value V, ok bool)
	Add(key K, value V) (evicted bool)
}

// PaymentCache remembers gateway payment ids that already went through a
// successful finalization. It is a best-effort in-process guard against a
// client replaying finalize with the same payment id; the placement
// function's own uniqueness constraints remain authoritative.
type PaymentCache struct {
	cache CacheI[string, time.Time]
	log   logger.Logger
}

func NewPaymentCache(cache CacheI[string, time.Time], log logger.Logger) *PaymentCache {
	return &PaymentCache{
		cache: cache,
		log:   log,
	}
}

func (c *PaymentCache) MarkFinalized(paymentID string) {
	_ = c.cache.Add(paymentID, time.Now())
}

func (c *PaymentCache) Finalized(paymentID string) bool {
	_, ok := c.cache.Get(paymentID)
	return ok
}
