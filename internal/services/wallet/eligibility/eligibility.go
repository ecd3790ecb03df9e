package eligibility

import (
	internalErrors "github.com/feastly/payment_service/internal/lib/errors"
)

var (
	ErrNotReviewed     = internalErrors.New(internalErrors.KindBadRequest, "user has not reviewed the app")
	ErrAlreadyReviewed = internalErrors.New(internalErrors.KindBadRequest, "user has already reviewed the app")
)

// ReferralEligible reports whether the one-time referral bonus applies: the
// stored relationship must already exist and match the supplied code, which
// guards against minting bonuses by replaying arbitrary codes.
func ReferralEligible(referredBy, referralCode string) bool {
	return referredBy != "" && referredBy == referralCode
}

// ReviewEligible gates the review bonus on the caller having exactly one
// review row. Zero rows means nothing to reward, more than one means the
// bonus was already handed out.
func ReviewEligible(reviewCount int) error {
	switch {
	case reviewCount < 1:
		return ErrNotReviewed
	case reviewCount > 1:
		return ErrAlreadyReviewed
	default:
		return nil
	}
}
