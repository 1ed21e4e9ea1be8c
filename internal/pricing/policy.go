// Package pricing holds the pure second-price bidding rules. Nothing here
// touches storage or the clock beyond the timestamp passed in.
package pricing

import (
	"fmt"
	"time"

	"auction-bidding-engine/internal/biddingerrors"
	"auction-bidding-engine/internal/models"

	"github.com/shopspring/decimal"
)

// MinimumForChallenger returns the smallest amount a non-leader may bid:
// the opening price while the auction has no displayed bids, otherwise the
// public price plus one increment.
func MinimumForChallenger(currentBid *decimal.Decimal, minPrice, bidIncrement decimal.Decimal, bidsCount int) decimal.Decimal {
	if bidsCount == 0 || currentBid == nil {
		return minPrice
	}
	return currentBid.Add(bidIncrement)
}

// NewPublicPrice computes the displayed price under second-price rules: with
// no runner-up the opening price stands, otherwise the price rises only as far
// as needed to beat the runner-up, capped at the leader's ceiling.
func NewPublicPrice(minPrice, bidIncrement, leaderMax decimal.Decimal, runnerMax *decimal.Decimal) decimal.Decimal {
	if runnerMax == nil {
		return minPrice
	}
	candidate := runnerMax.Add(bidIncrement)
	return decimal.Min(candidate, leaderMax)
}

// NextMinimumBid is the advertised smallest bid that would currently change
// the outcome.
func NextMinimumBid(currentPrice, bidIncrement decimal.Decimal) decimal.Decimal {
	return currentPrice.Add(bidIncrement)
}

// ValidateFirstBid checks the opening bid against the starting price.
func ValidateFirstBid(amount, minPrice decimal.Decimal) error {
	if amount.LessThan(minPrice) {
		return fmt.Errorf("policy: %w - starting price is %s", biddingerrors.ErrBidTooLow, minPrice)
	}
	return nil
}

// ValidateLeaderRaise checks a returning leader's new ceiling. A leader must
// strictly increase their own maximum; they are exempt from the public minimum
// because they already lead.
func ValidateLeaderRaise(newAmount decimal.Decimal, previousMax *decimal.Decimal) error {
	if previousMax == nil || !newAmount.GreaterThan(*previousMax) {
		return fmt.Errorf("policy: %w", biddingerrors.ErrMustExceedOwnPrevious)
	}
	return nil
}

// ValidateChallengerBid checks a non-leader's bid against the computed minimum.
func ValidateChallengerBid(amount, minimumRequired decimal.Decimal) error {
	if amount.LessThan(minimumRequired) {
		return fmt.Errorf("policy: %w - minimum required is %s", biddingerrors.ErrBidTooLow, minimumRequired)
	}
	return nil
}

// ValidateAuctionOpenForBidding checks that the auction accepts bids at all:
// active status, not past its end date, and the caller is not the seller.
func ValidateAuctionOpenForBidding(auction models.Auction, bidderID int64, now time.Time) error {
	if auction.Status != models.StatusActive {
		return fmt.Errorf("policy: %w - status is %s", biddingerrors.ErrAuctionNotActive, auction.Status)
	}
	if !auction.EndDate.IsZero() && auction.EndDate.Before(now) {
		return fmt.Errorf("policy: %w", biddingerrors.ErrAuctionEnded)
	}
	if bidderID == auction.SellerID {
		return fmt.Errorf("policy: %w", biddingerrors.ErrSelfBidForbidden)
	}
	return nil
}
