package repository

import (
	"context"
	"time"

	"auction-bidding-engine/internal/models"

	"github.com/shopspring/decimal"
)

// LedgerTx is the transactional surface of the auction ledger. Every method
// runs inside the transaction opened by AuctionLedger.WithinTx; nothing is
// visible to other bidders until that transaction commits.
type LedgerTx interface {
	// LockAuctionForUpdate acquires an exclusive row lock on the auction and
	// returns its bidding-relevant fields. Concurrent placements on the same
	// auction block here until the holding transaction finishes.
	LockAuctionForUpdate(ctx context.Context, auctionID int64) (models.Auction, error)
	// GetStandingMax returns the bidder's current hidden ceiling, or nil if
	// they have never bid on the auction.
	GetStandingMax(ctx context.Context, auctionID, bidderID int64) (*decimal.Decimal, error)
	// UpsertStandingBid inserts or replaces the bidder's standing maximum and
	// returns the standing bid id that tags the resulting history events.
	UpsertStandingBid(ctx context.Context, auctionID, bidderID int64, maxAmount decimal.Decimal) (int64, error)
	// TopStandingBids returns up to n standing bids ordered by max descending,
	// then first-bid time ascending, then id ascending.
	TopStandingBids(ctx context.Context, auctionID int64, n int) ([]models.TopBid, error)
	// AppendHistorySnapshot records one publicly visible price change.
	// Snapshots are never updated or deleted.
	AppendHistorySnapshot(ctx context.Context, snap models.HistorySnapshot) error
	// CountHistorySnapshots is the authoritative public bid count.
	CountHistorySnapshots(ctx context.Context, auctionID int64) (int, error)
	// ApplyAuctionUpdate writes the aggregate leader/ceiling/price fields and
	// recomputes bids_count from the snapshot table in the same statement.
	ApplyAuctionUpdate(ctx context.Context, auctionID, highestUserID int64, highestMax, currentPrice decimal.Decimal) error
	// MarkSold terminally closes the auction to the buyer at the sale price,
	// setting the end date to endedAt and recomputing bids_count.
	MarkSold(ctx context.Context, auctionID, buyerID int64, maxBid, salePrice decimal.Decimal, endedAt time.Time) error
}

// AuctionLedger is the persistence boundary of the bidding core. Writes go
// through WithinTx; the remaining methods are lock-free reads that tolerate
// slightly stale state.
type AuctionLedger interface {
	// WithinTx runs fn inside a single transaction. A nil return from fn
	// commits; any error rolls back with no partial state.
	WithinTx(ctx context.Context, fn func(tx LedgerTx) error) error

	GetAuction(ctx context.Context, auctionID int64) (models.Auction, error)
	GetStandingMax(ctx context.Context, auctionID, bidderID int64) (*decimal.Decimal, error)
	GetHistory(ctx context.Context, auctionID int64) ([]models.HistorySnapshot, error)
	GetUserBidSummaries(ctx context.Context, bidderID int64) ([]models.UserBidSummary, error)
}
