package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"auction-bidding-engine/internal/biddingerrors"
	"auction-bidding-engine/internal/models"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const auctionColumns = `id, seller_id, title, status, start_date, end_date, min_price, bid_increment,
	current_bid_amount, bids_count, highest_user_id, highest_max_bid, buy_now_price`

// PostgresLedger is the production AuctionLedger backed by PostgreSQL.
// Row locking relies on SELECT ... FOR UPDATE inside WithinTx transactions.
type PostgresLedger struct {
	db *sqlx.DB
}

// NewPostgresLedger wraps an open sqlx connection pool.
func NewPostgresLedger(db *sqlx.DB) *PostgresLedger {
	return &PostgresLedger{db: db}
}

// WithinTx opens one transaction, runs fn against it, and commits on a nil
// return. Any error from fn rolls back the whole placement.
func (l *PostgresLedger) WithinTx(ctx context.Context, fn func(tx LedgerTx) error) error {
	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repository: begin transaction: %w", err)
	}
	if err := fn(&postgresTx{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("repository: rollback after %v: %w", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("repository: commit transaction: %w", err)
	}
	return nil
}

// GetAuction reads the auction without locking.
func (l *PostgresLedger) GetAuction(ctx context.Context, auctionID int64) (models.Auction, error) {
	var a models.Auction
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE id = $1`
	if err := l.db.GetContext(ctx, &a, query, auctionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Auction{}, fmt.Errorf("repository: auction %d: %w", auctionID, biddingerrors.ErrAuctionNotFound)
		}
		return models.Auction{}, fmt.Errorf("repository: get auction %d: %w", auctionID, err)
	}
	return a, nil
}

// GetStandingMax is the lock-free read-side variant used by next-bid info.
func (l *PostgresLedger) GetStandingMax(ctx context.Context, auctionID, bidderID int64) (*decimal.Decimal, error) {
	return standingMax(ctx, l.db, auctionID, bidderID)
}

// GetHistory returns the auction's snapshots in stable replay order.
func (l *PostgresLedger) GetHistory(ctx context.Context, auctionID int64) ([]models.HistorySnapshot, error) {
	snaps := []models.HistorySnapshot{}
	query := `
		SELECT id, auction_id, bid_id, actor_user_id, displayed_bid, kind, snapshot_time
		FROM bid_history_snapshots
		WHERE auction_id = $1
		ORDER BY snapshot_time ASC, id ASC`
	if err := l.db.SelectContext(ctx, &snaps, query, auctionID); err != nil {
		return nil, fmt.Errorf("repository: get history for auction %d: %w", auctionID, err)
	}
	return snaps, nil
}

// GetUserBidSummaries lists every auction the user has bid on, with their own
// ceiling, the public price, and whether they currently lead.
func (l *PostgresLedger) GetUserBidSummaries(ctx context.Context, bidderID int64) ([]models.UserBidSummary, error) {
	summaries := []models.UserBidSummary{}
	query := `
		SELECT a.id AS auction_id,
		       a.title AS auction_title,
		       a.current_bid_amount AS current_price,
		       MAX(b.max_bid) AS your_max,
		       a.end_date,
		       CASE WHEN a.highest_user_id = $1 THEN true ELSE false END AS leading,
		       CASE WHEN a.end_date > NOW() THEN 'active' ELSE 'ended' END AS status
		FROM bids b
		JOIN auctions a ON b.auction_id = a.id
		WHERE b.bidder_id = $1
		GROUP BY a.id, a.title, a.current_bid_amount, a.end_date, a.highest_user_id
		ORDER BY a.end_date DESC`
	if err := l.db.SelectContext(ctx, &summaries, query, bidderID); err != nil {
		return nil, fmt.Errorf("repository: get bid summaries for user %d: %w", bidderID, err)
	}
	return summaries, nil
}

// postgresTx implements LedgerTx over one open sqlx transaction.
type postgresTx struct {
	tx *sqlx.Tx
}

func (t *postgresTx) LockAuctionForUpdate(ctx context.Context, auctionID int64) (models.Auction, error) {
	var a models.Auction
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE id = $1 FOR UPDATE`
	if err := t.tx.GetContext(ctx, &a, query, auctionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Auction{}, fmt.Errorf("repository: lock auction %d: %w", auctionID, biddingerrors.ErrAuctionNotFound)
		}
		return models.Auction{}, fmt.Errorf("repository: lock auction %d: %w", auctionID, err)
	}
	return a, nil
}

func (t *postgresTx) GetStandingMax(ctx context.Context, auctionID, bidderID int64) (*decimal.Decimal, error) {
	return standingMax(ctx, t.tx, auctionID, bidderID)
}

// UpsertStandingBid updates the bidder's existing row when present, otherwise
// inserts one. Update-then-insert keeps a single row per (auction, bidder)
// even against schemas predating the unique constraint.
func (t *postgresTx) UpsertStandingBid(ctx context.Context, auctionID, bidderID int64, maxAmount decimal.Decimal) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE bids SET max_bid = $1 WHERE auction_id = $2 AND bidder_id = $3`,
		maxAmount, auctionID, bidderID)
	if err != nil {
		return 0, fmt.Errorf("repository: update standing bid: %w", err)
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("repository: update standing bid: %w", err)
	}
	if updated > 0 {
		var bidID int64
		err := t.tx.GetContext(ctx, &bidID, `
			SELECT id FROM bids
			WHERE auction_id = $1 AND bidder_id = $2
			ORDER BY id DESC
			LIMIT 1`, auctionID, bidderID)
		if err != nil {
			return 0, fmt.Errorf("repository: read standing bid id: %w", err)
		}
		return bidID, nil
	}

	var bidID int64
	err = t.tx.GetContext(ctx, &bidID, `
		INSERT INTO bids (auction_id, bidder_id, max_bid)
		VALUES ($1, $2, $3)
		RETURNING id`, auctionID, bidderID, maxAmount)
	if err != nil {
		return 0, fmt.Errorf("repository: insert standing bid: %w", err)
	}
	return bidID, nil
}

func (t *postgresTx) TopStandingBids(ctx context.Context, auctionID int64, n int) ([]models.TopBid, error) {
	top := []models.TopBid{}
	query := `
		SELECT bidder_id AS user_id, max_bid, created_at, id
		FROM bids
		WHERE auction_id = $1
		ORDER BY max_bid DESC, created_at ASC, id ASC
		LIMIT $2`
	if err := t.tx.SelectContext(ctx, &top, query, auctionID, n); err != nil {
		return nil, fmt.Errorf("repository: top standing bids for auction %d: %w", auctionID, err)
	}
	return top, nil
}

func (t *postgresTx) AppendHistorySnapshot(ctx context.Context, snap models.HistorySnapshot) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO bid_history_snapshots (auction_id, bid_id, actor_user_id, displayed_bid, kind, snapshot_time)
		VALUES ($1, $2, $3, $4, $5::bid_history_kind, $6)`,
		snap.AuctionID, snap.BidID, snap.ActorUserID, snap.DisplayedBid, string(snap.Kind), snap.SnapshotTime)
	if err != nil {
		return fmt.Errorf("repository: append history snapshot for auction %d: %w", snap.AuctionID, err)
	}
	return nil
}

func (t *postgresTx) CountHistorySnapshots(ctx context.Context, auctionID int64) (int, error) {
	var count int
	err := t.tx.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM bid_history_snapshots WHERE auction_id = $1`, auctionID)
	if err != nil {
		return 0, fmt.Errorf("repository: count history snapshots for auction %d: %w", auctionID, err)
	}
	return count, nil
}

// ApplyAuctionUpdate recomputes bids_count from the snapshot table in the same
// statement so the aggregate can never drift from the emitted events.
func (t *postgresTx) ApplyAuctionUpdate(ctx context.Context, auctionID, highestUserID int64, highestMax, currentPrice decimal.Decimal) error {
	_, err := t.tx.ExecContext(ctx, `
		UPDATE auctions
		SET current_bid_amount = $1,
		    highest_user_id = $2,
		    highest_max_bid = $3,
		    bids_count = (SELECT COUNT(*) FROM bid_history_snapshots WHERE auction_id = $4),
		    updated_at = NOW()
		WHERE id = $4`,
		currentPrice, highestUserID, highestMax, auctionID)
	if err != nil {
		return fmt.Errorf("repository: apply auction update for auction %d: %w", auctionID, err)
	}
	return nil
}

func (t *postgresTx) MarkSold(ctx context.Context, auctionID, buyerID int64, maxBid, salePrice decimal.Decimal, endedAt time.Time) error {
	_, err := t.tx.ExecContext(ctx, `
		UPDATE auctions
		SET status = 'sold',
		    current_bid_amount = $1,
		    highest_user_id = $2,
		    highest_max_bid = GREATEST(COALESCE(highest_max_bid, 0), $3),
		    bids_count = (SELECT COUNT(*) FROM bid_history_snapshots WHERE auction_id = $4),
		    updated_at = NOW(),
		    end_date = $5
		WHERE id = $4`,
		salePrice, buyerID, maxBid, auctionID, endedAt)
	if err != nil {
		return fmt.Errorf("repository: mark auction %d sold: %w", auctionID, err)
	}
	return nil
}

// standingMax reads a bidder's ceiling through any sqlx querier (pool or tx).
func standingMax(ctx context.Context, q sqlx.QueryerContext, auctionID, bidderID int64) (*decimal.Decimal, error) {
	var max decimal.Decimal
	err := sqlx.GetContext(ctx, q, &max, `
		SELECT max_bid FROM bids WHERE auction_id = $1 AND bidder_id = $2`,
		auctionID, bidderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repository: standing max for auction %d user %d: %w", auctionID, bidderID, err)
	}
	return &max, nil
}
