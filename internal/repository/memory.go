package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-bidding-engine/internal/biddingerrors"
	"auction-bidding-engine/internal/models"

	"github.com/shopspring/decimal"
)

// MemoryLedger is a concurrency-safe in-memory AuctionLedger used by tests and
// the STORAGE=memory dev mode. A per-auction mutex plays the role of the
// database row lock: the first transaction to lock an auction blocks every
// other placement on that auction until it commits or rolls back.
type MemoryLedger struct {
	mu             sync.RWMutex
	auctions       map[int64]*auctionState
	nextBidID      int64
	nextSnapshotID int64
}

type auctionState struct {
	rowLock   sync.Mutex // held between LockAuctionForUpdate and tx end
	auction   models.Auction
	bids      []models.StandingBid
	snapshots []models.HistorySnapshot
}

// NewMemoryLedger creates an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{auctions: make(map[int64]*auctionState)}
}

// AddAuction seeds an auction. Intended for tests and dev-mode prepopulation.
func (l *MemoryLedger) AddAuction(a models.Auction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.auctions[a.ID] = &auctionState{auction: a}
}

// WithinTx runs fn against a staged view of the ledger. The row lock taken by
// LockAuctionForUpdate is released when fn returns; on error the auction's
// state is restored from the snapshot taken at lock time.
func (l *MemoryLedger) WithinTx(ctx context.Context, fn func(tx LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("repository: transaction aborted: %w", err)
	}
	tx := &memoryTx{ledger: l}
	err := fn(tx)
	tx.finish(err != nil)
	return err
}

func (l *MemoryLedger) GetAuction(ctx context.Context, auctionID int64) (models.Auction, error) {
	state, err := l.state(auctionID)
	if err != nil {
		return models.Auction{}, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneAuction(state.auction), nil
}

func (l *MemoryLedger) GetStandingMax(ctx context.Context, auctionID, bidderID int64) (*decimal.Decimal, error) {
	state, err := l.state(auctionID)
	if err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return findStandingMax(state, bidderID), nil
}

func (l *MemoryLedger) GetHistory(ctx context.Context, auctionID int64) ([]models.HistorySnapshot, error) {
	state, err := l.state(auctionID)
	if err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	snaps := append([]models.HistorySnapshot(nil), state.snapshots...)
	sort.SliceStable(snaps, func(i, j int) bool {
		if !snaps[i].SnapshotTime.Equal(snaps[j].SnapshotTime) {
			return snaps[i].SnapshotTime.Before(snaps[j].SnapshotTime)
		}
		return snaps[i].ID < snaps[j].ID
	})
	return snaps, nil
}

func (l *MemoryLedger) GetUserBidSummaries(ctx context.Context, bidderID int64) ([]models.UserBidSummary, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	now := time.Now().UTC()
	summaries := []models.UserBidSummary{}
	for _, state := range l.auctions {
		max := findStandingMax(state, bidderID)
		if max == nil {
			continue
		}
		a := state.auction
		status := "ended"
		if a.EndDate.After(now) {
			status = "active"
		}
		summaries = append(summaries, models.UserBidSummary{
			AuctionID:    a.ID,
			AuctionTitle: a.Title,
			CurrentPrice: cloneDecimal(a.CurrentBid),
			YourMax:      *max,
			EndDate:      a.EndDate,
			Leading:      a.HighestUserID != nil && *a.HighestUserID == bidderID,
			Status:       status,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].EndDate.After(summaries[j].EndDate)
	})
	return summaries, nil
}

func (l *MemoryLedger) state(auctionID int64) (*auctionState, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	state, ok := l.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("repository: auction %d: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	return state, nil
}

// memoryTx applies mutations directly to the locked auction state, keeping a
// pre-image for rollback. At most one auction row is locked per transaction,
// which matches how the placement path uses the ledger.
type memoryTx struct {
	ledger   *MemoryLedger
	locked   *auctionState
	preImage *auctionState
}

func (t *memoryTx) LockAuctionForUpdate(ctx context.Context, auctionID int64) (models.Auction, error) {
	state, err := t.ledger.state(auctionID)
	if err != nil {
		return models.Auction{}, err
	}
	state.rowLock.Lock()
	t.locked = state
	t.preImage = &auctionState{
		auction:   cloneAuction(state.auction),
		bids:      append([]models.StandingBid(nil), state.bids...),
		snapshots: append([]models.HistorySnapshot(nil), state.snapshots...),
	}
	return cloneAuction(state.auction), nil
}

// finish releases the row lock, restoring the pre-image when rolling back.
func (t *memoryTx) finish(rollback bool) {
	if t.locked == nil {
		return
	}
	if rollback && t.preImage != nil {
		t.ledger.mu.Lock()
		t.locked.auction = t.preImage.auction
		t.locked.bids = t.preImage.bids
		t.locked.snapshots = t.preImage.snapshots
		t.ledger.mu.Unlock()
	}
	t.locked.rowLock.Unlock()
	t.locked = nil
}

func (t *memoryTx) GetStandingMax(ctx context.Context, auctionID, bidderID int64) (*decimal.Decimal, error) {
	state, err := t.lockedState(auctionID)
	if err != nil {
		return nil, err
	}
	return findStandingMax(state, bidderID), nil
}

func (t *memoryTx) UpsertStandingBid(ctx context.Context, auctionID, bidderID int64, maxAmount decimal.Decimal) (int64, error) {
	state, err := t.lockedState(auctionID)
	if err != nil {
		return 0, err
	}
	t.ledger.mu.Lock()
	defer t.ledger.mu.Unlock()
	for i := range state.bids {
		if state.bids[i].BidderID == bidderID {
			state.bids[i].MaxBid = maxAmount
			return state.bids[i].ID, nil
		}
	}
	t.ledger.nextBidID++
	bidID := t.ledger.nextBidID
	state.bids = append(state.bids, models.StandingBid{
		ID:        bidID,
		AuctionID: auctionID,
		BidderID:  bidderID,
		MaxBid:    maxAmount,
		CreatedAt: time.Now().UTC(),
	})
	return bidID, nil
}

func (t *memoryTx) TopStandingBids(ctx context.Context, auctionID int64, n int) ([]models.TopBid, error) {
	state, err := t.lockedState(auctionID)
	if err != nil {
		return nil, err
	}
	ranked := append([]models.StandingBid(nil), state.bids...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].MaxBid.Equal(ranked[j].MaxBid) {
			return ranked[i].MaxBid.GreaterThan(ranked[j].MaxBid)
		}
		if !ranked[i].CreatedAt.Equal(ranked[j].CreatedAt) {
			return ranked[i].CreatedAt.Before(ranked[j].CreatedAt)
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	top := make([]models.TopBid, 0, len(ranked))
	for _, b := range ranked {
		top = append(top, models.TopBid{
			UserID:    b.BidderID,
			MaxBid:    b.MaxBid,
			CreatedAt: b.CreatedAt,
			BidID:     b.ID,
		})
	}
	return top, nil
}

func (t *memoryTx) AppendHistorySnapshot(ctx context.Context, snap models.HistorySnapshot) error {
	state, err := t.lockedState(snap.AuctionID)
	if err != nil {
		return err
	}
	t.ledger.mu.Lock()
	defer t.ledger.mu.Unlock()
	t.ledger.nextSnapshotID++
	snap.ID = t.ledger.nextSnapshotID
	state.snapshots = append(state.snapshots, snap)
	return nil
}

func (t *memoryTx) CountHistorySnapshots(ctx context.Context, auctionID int64) (int, error) {
	state, err := t.lockedState(auctionID)
	if err != nil {
		return 0, err
	}
	return len(state.snapshots), nil
}

func (t *memoryTx) ApplyAuctionUpdate(ctx context.Context, auctionID, highestUserID int64, highestMax, currentPrice decimal.Decimal) error {
	state, err := t.lockedState(auctionID)
	if err != nil {
		return err
	}
	t.ledger.mu.Lock()
	defer t.ledger.mu.Unlock()
	state.auction.HighestUserID = &highestUserID
	state.auction.HighestMaxBid = &highestMax
	state.auction.CurrentBid = &currentPrice
	state.auction.BidsCount = len(state.snapshots)
	return nil
}

func (t *memoryTx) MarkSold(ctx context.Context, auctionID, buyerID int64, maxBid, salePrice decimal.Decimal, endedAt time.Time) error {
	state, err := t.lockedState(auctionID)
	if err != nil {
		return err
	}
	t.ledger.mu.Lock()
	defer t.ledger.mu.Unlock()
	ceiling := maxBid
	if state.auction.HighestMaxBid != nil && state.auction.HighestMaxBid.GreaterThan(ceiling) {
		ceiling = *state.auction.HighestMaxBid
	}
	state.auction.Status = models.StatusSold
	state.auction.CurrentBid = &salePrice
	state.auction.HighestUserID = &buyerID
	state.auction.HighestMaxBid = &ceiling
	state.auction.BidsCount = len(state.snapshots)
	state.auction.EndDate = endedAt
	return nil
}

// lockedState guards against tx methods reaching an auction whose row lock
// this transaction does not hold.
func (t *memoryTx) lockedState(auctionID int64) (*auctionState, error) {
	if t.locked == nil || t.locked.auction.ID != auctionID {
		return nil, fmt.Errorf("repository: auction %d is not locked by this transaction", auctionID)
	}
	return t.locked, nil
}

func findStandingMax(state *auctionState, bidderID int64) *decimal.Decimal {
	for i := range state.bids {
		if state.bids[i].BidderID == bidderID {
			max := state.bids[i].MaxBid
			return &max
		}
	}
	return nil
}

func cloneAuction(a models.Auction) models.Auction {
	out := a
	out.CurrentBid = cloneDecimal(a.CurrentBid)
	out.HighestMaxBid = cloneDecimal(a.HighestMaxBid)
	out.BuyNowPrice = cloneDecimal(a.BuyNowPrice)
	if a.HighestUserID != nil {
		id := *a.HighestUserID
		out.HighestUserID = &id
	}
	return out
}

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
