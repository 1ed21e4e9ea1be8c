package bidding

import (
	"context"
	"fmt"

	"auction-bidding-engine/internal/biddingerrors"
	"auction-bidding-engine/internal/models"
	"auction-bidding-engine/internal/pricing"
	"auction-bidding-engine/internal/repository"
)

// BidQueryService serves the read side: price history, a bidder's
// cross-auction summary, and next-bid info. No locks are taken; slightly
// stale reads are acceptable here.
type BidQueryService struct {
	ledger repository.AuctionLedger
}

// NewBidQueryService creates a new BidQueryService instance
func NewBidQueryService(ledger repository.AuctionLedger) *BidQueryService {
	return &BidQueryService{ledger: ledger}
}

// GetHistory returns the auction's price history in stable replay order,
// exactly as persisted.
func (s *BidQueryService) GetHistory(ctx context.Context, auctionID int64) ([]models.HistorySnapshot, error) {
	if auctionID <= 0 {
		return nil, fmt.Errorf("service: %w - missing auction id", biddingerrors.ErrInvalidBid)
	}
	snaps, err := s.ledger.GetHistory(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: get history for auction %d: %w", auctionID, err)
	}
	return snaps, nil
}

// GetUserBidSummaries returns one summary per auction the user has bid on.
func (s *BidQueryService) GetUserBidSummaries(ctx context.Context, bidderID int64) ([]models.UserBidSummary, error) {
	if bidderID <= 0 {
		return nil, fmt.Errorf("service: %w - missing bidder id", biddingerrors.ErrInvalidBid)
	}
	summaries, err := s.ledger.GetUserBidSummaries(ctx, bidderID)
	if err != nil {
		return nil, fmt.Errorf("service: get bid summaries for user %d: %w", bidderID, err)
	}
	return summaries, nil
}

// GetNextBidInfo returns the caller's previous ceiling (if any) and the
// smallest bid that would currently change the outcome.
func (s *BidQueryService) GetNextBidInfo(ctx context.Context, auctionID, bidderID int64) (models.NextBidInfo, error) {
	if auctionID <= 0 || bidderID <= 0 {
		return models.NextBidInfo{}, fmt.Errorf("service: %w - missing auction or bidder id", biddingerrors.ErrInvalidBid)
	}
	auction, err := s.ledger.GetAuction(ctx, auctionID)
	if err != nil {
		return models.NextBidInfo{}, fmt.Errorf("service: get next bid info for auction %d: %w", auctionID, err)
	}
	prevMax, err := s.ledger.GetStandingMax(ctx, auctionID, bidderID)
	if err != nil {
		return models.NextBidInfo{}, fmt.Errorf("service: get next bid info for auction %d: %w", auctionID, err)
	}
	return models.NextBidInfo{
		UserPrevMax: prevMax,
		RequiredMin: pricing.MinimumForChallenger(auction.CurrentBid, auction.MinPrice, auction.BidIncrement, auction.BidsCount),
	}, nil
}
