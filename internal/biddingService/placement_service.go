package bidding

import (
	"context"
	"fmt"
	"time"

	"auction-bidding-engine/internal/biddingerrors"
	"auction-bidding-engine/internal/models"
	"auction-bidding-engine/internal/pricing"
	"auction-bidding-engine/internal/repository"

	"github.com/shopspring/decimal"
)

// companionDelay keeps a system-generated snapshot strictly after the user bid
// that triggered it, so replay order is stable.
const companionDelay = time.Millisecond

// BidPlacementService runs the transactional bid placement use case: lock the
// auction row, validate the bid, recompute the second-price public price, emit
// history snapshots, and update the auction aggregate.
type BidPlacementService struct {
	ledger repository.AuctionLedger
	now    func() time.Time
}

// NewBidPlacementService creates a new BidPlacementService instance
func NewBidPlacementService(ledger repository.AuctionLedger) *BidPlacementService {
	return &BidPlacementService{
		ledger: ledger,
		now:    time.Now,
	}
}

// PlaceBid validates and records a bidder's hidden maximum for an auction and
// returns the public-safe outcome. The whole operation is one transaction:
// either the standing bid, every history snapshot, and the aggregate update
// commit together, or nothing does.
func (s *BidPlacementService) PlaceBid(ctx context.Context, auctionID, bidderID int64, maxAmount decimal.Decimal) (models.PlacementResult, error) {
	if auctionID <= 0 || bidderID <= 0 {
		return models.PlacementResult{}, fmt.Errorf("service: %w - missing auction or bidder id", biddingerrors.ErrInvalidBid)
	}
	if !maxAmount.IsPositive() {
		return models.PlacementResult{}, fmt.Errorf("service: %w - non-positive bid amount", biddingerrors.ErrInvalidBid)
	}

	var result models.PlacementResult
	err := s.ledger.WithinTx(ctx, func(tx repository.LedgerTx) error {
		now := s.now().UTC()

		// Sole serialization point for concurrent bids on this auction.
		auction, err := tx.LockAuctionForUpdate(ctx, auctionID)
		if err != nil {
			return err
		}
		if err := pricing.ValidateAuctionOpenForBidding(auction, bidderID, now); err != nil {
			return err
		}
		if err := s.validateAmount(ctx, tx, auction, bidderID, maxAmount); err != nil {
			return err
		}

		bidID, err := tx.UpsertStandingBid(ctx, auctionID, bidderID, maxAmount)
		if err != nil {
			return err
		}

		leader, runner, err := s.leaderAndRunner(ctx, tx, auctionID)
		if err != nil {
			return err
		}

		var runnerMax *decimal.Decimal
		if runner != nil {
			runnerMax = &runner.MaxBid
		}
		newCurrent := pricing.NewPublicPrice(auction.MinPrice, auction.BidIncrement, leader.MaxBid, runnerMax)

		emit := snapshotPlan(auction, leader, runner, bidderID, maxAmount, newCurrent)
		for i, e := range emit {
			err := tx.AppendHistorySnapshot(ctx, models.HistorySnapshot{
				AuctionID:    auctionID,
				BidID:        bidID,
				ActorUserID:  e.actor,
				DisplayedBid: e.displayed,
				Kind:         e.kind,
				SnapshotTime: now.Add(time.Duration(i) * companionDelay),
			})
			if err != nil {
				return err
			}
		}

		if err := tx.ApplyAuctionUpdate(ctx, auctionID, leader.UserID, leader.MaxBid, newCurrent); err != nil {
			return err
		}

		count, err := tx.CountHistorySnapshots(ctx, auctionID)
		if err != nil {
			return err
		}

		result = models.PlacementResult{
			AuctionID:     auctionID,
			HighestUserID: leader.UserID,
			CurrentPrice:  newCurrent,
			BidsCount:     count,
			MinNextBid:    pricing.NextMinimumBid(newCurrent, auction.BidIncrement),
			YouAreLeading: leader.UserID == bidderID,
			EndsAt:        auction.EndDate,
		}
		return nil
	})
	if err != nil {
		return models.PlacementResult{}, fmt.Errorf("service: place bid on auction %d by user %d: %w", auctionID, bidderID, err)
	}
	return result, nil
}

// BuyNow closes an auction immediately at its configured buy-now price,
// under the same row-locking discipline as a regular placement.
func (s *BidPlacementService) BuyNow(ctx context.Context, auctionID, bidderID int64) (models.PlacementResult, error) {
	if auctionID <= 0 || bidderID <= 0 {
		return models.PlacementResult{}, fmt.Errorf("service: %w - missing auction or bidder id", biddingerrors.ErrInvalidBid)
	}

	var result models.PlacementResult
	err := s.ledger.WithinTx(ctx, func(tx repository.LedgerTx) error {
		now := s.now().UTC()

		auction, err := tx.LockAuctionForUpdate(ctx, auctionID)
		if err != nil {
			return err
		}
		if err := pricing.ValidateAuctionOpenForBidding(auction, bidderID, now); err != nil {
			return err
		}
		if auction.BuyNowPrice == nil {
			return fmt.Errorf("service: %w", biddingerrors.ErrBuyNowDisabled)
		}
		price := *auction.BuyNowPrice

		bidID, err := tx.UpsertStandingBid(ctx, auctionID, bidderID, price)
		if err != nil {
			return err
		}
		err = tx.AppendHistorySnapshot(ctx, models.HistorySnapshot{
			AuctionID:    auctionID,
			BidID:        bidID,
			ActorUserID:  bidderID,
			DisplayedBid: price,
			Kind:         models.KindUserBid,
			SnapshotTime: now,
		})
		if err != nil {
			return err
		}
		if err := tx.MarkSold(ctx, auctionID, bidderID, price, price, now); err != nil {
			return err
		}

		count, err := tx.CountHistorySnapshots(ctx, auctionID)
		if err != nil {
			return err
		}

		result = models.PlacementResult{
			AuctionID:     auctionID,
			HighestUserID: bidderID,
			CurrentPrice:  price,
			BidsCount:     count,
			MinNextBid:    pricing.NextMinimumBid(price, auction.BidIncrement),
			YouAreLeading: true,
			EndsAt:        now,
		}
		return nil
	})
	if err != nil {
		return models.PlacementResult{}, fmt.Errorf("service: buy now on auction %d by user %d: %w", auctionID, bidderID, err)
	}
	return result, nil
}

// validateAmount applies the branch rules: first bid against the starting
// price, a returning leader against only their own previous ceiling, and
// everyone else against the public minimum.
func (s *BidPlacementService) validateAmount(ctx context.Context, tx repository.LedgerTx, auction models.Auction, bidderID int64, maxAmount decimal.Decimal) error {
	if auction.BidsCount == 0 {
		return pricing.ValidateFirstBid(maxAmount, auction.MinPrice)
	}

	prevMax, err := tx.GetStandingMax(ctx, auction.ID, bidderID)
	if err != nil {
		return err
	}
	isLeader := auction.HighestUserID != nil && *auction.HighestUserID == bidderID
	if isLeader && prevMax != nil {
		return pricing.ValidateLeaderRaise(maxAmount, prevMax)
	}
	minToPlace := pricing.MinimumForChallenger(auction.CurrentBid, auction.MinPrice, auction.BidIncrement, auction.BidsCount)
	return pricing.ValidateChallengerBid(maxAmount, minToPlace)
}

// leaderAndRunner recomputes the top of the ranking after the upsert. The
// runner-up must be a different user than the leader.
func (s *BidPlacementService) leaderAndRunner(ctx context.Context, tx repository.LedgerTx, auctionID int64) (models.TopBid, *models.TopBid, error) {
	top, err := tx.TopStandingBids(ctx, auctionID, 2)
	if err != nil {
		return models.TopBid{}, nil, err
	}
	if len(top) == 0 {
		return models.TopBid{}, nil, fmt.Errorf("service: no standing bids after upsert on auction %d", auctionID)
	}
	leader := top[0]
	if len(top) > 1 && top[1].UserID != leader.UserID {
		runner := top[1]
		return leader, &runner, nil
	}
	return leader, nil, nil
}

type snapshotSpec struct {
	actor     int64
	displayed decimal.Decimal
	kind      models.SnapshotKind
}

// snapshotPlan decides which history events a placement emits. The cases are
// mutually exclusive: no event when the public price did not move, a single
// USER_BID for a first bid or a new/standing leader, and a USER_BID plus a
// companion AUTO_RAISE or TIE_AUTO when a challenger fails to take the lead.
func snapshotPlan(auction models.Auction, leader models.TopBid, runner *models.TopBid, bidderID int64, maxAmount, newCurrent decimal.Decimal) []snapshotSpec {
	priceChanged := auction.CurrentBid == nil || !newCurrent.Equal(*auction.CurrentBid)
	if !priceChanged {
		// Leader silently raised their private ceiling; nothing observable.
		return nil
	}

	if runner == nil || leader.UserID == bidderID {
		return []snapshotSpec{{actor: bidderID, displayed: newCurrent, kind: models.KindUserBid}}
	}

	switch {
	case maxAmount.LessThan(leader.MaxBid):
		// Challenger fell short; the system raises the incumbent.
		return []snapshotSpec{
			{actor: bidderID, displayed: maxAmount, kind: models.KindUserBid},
			{actor: leader.UserID, displayed: newCurrent, kind: models.KindAutoRaise},
		}
	case maxAmount.Equal(leader.MaxBid):
		// Exact tie; the first mover keeps the lead.
		return []snapshotSpec{
			{actor: bidderID, displayed: leader.MaxBid, kind: models.KindUserBid},
			{actor: leader.UserID, displayed: leader.MaxBid, kind: models.KindTieAuto},
		}
	default:
		return []snapshotSpec{{actor: bidderID, displayed: newCurrent, kind: models.KindUserBid}}
	}
}
