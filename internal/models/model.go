package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus is the lifecycle state of an auction. sold/unsold are terminal.
type AuctionStatus string

const (
	StatusActive AuctionStatus = "active"
	StatusSold   AuctionStatus = "sold"
	StatusUnsold AuctionStatus = "unsold"
)

// SnapshotKind tags the reason a public price change was recorded.
type SnapshotKind string

const (
	// KindUserBid marks a price a human placed directly.
	KindUserBid SnapshotKind = "USER_BID"
	// KindAutoRaise marks the system raising the leader's displayed price
	// against a challenger.
	KindAutoRaise SnapshotKind = "AUTO_RAISE"
	// KindTieAuto marks a tie resolved in favor of the earlier bidder.
	KindTieAuto SnapshotKind = "TIE_AUTO"
)

// Auction holds the bidding-relevant fields of an auction. Listing metadata
// (category, images, description) is owned by the external listing store; only
// Title is carried here for user-facing summaries.
type Auction struct {
	ID            int64            `db:"id" json:"auction_id"`
	SellerID      int64            `db:"seller_id" json:"seller_id"`
	Title         string           `db:"title" json:"title"`
	Status        AuctionStatus    `db:"status" json:"status"`
	StartDate     time.Time        `db:"start_date" json:"start_date"`
	EndDate       time.Time        `db:"end_date" json:"end_date"`
	MinPrice      decimal.Decimal  `db:"min_price" json:"min_price"`
	BidIncrement  decimal.Decimal  `db:"bid_increment" json:"bid_increment"`
	CurrentBid    *decimal.Decimal `db:"current_bid_amount" json:"current_bid,omitempty"`
	BidsCount     int              `db:"bids_count" json:"bids_count"`
	HighestUserID *int64           `db:"highest_user_id" json:"-"`
	HighestMaxBid *decimal.Decimal `db:"highest_max_bid" json:"-"`
	BuyNowPrice   *decimal.Decimal `db:"buy_now_price" json:"buy_now_price,omitempty"`
}

// StandingBid is a bidder's current hidden maximum for one auction.
// One row per (auction, bidder); updated in place on re-bids, never duplicated.
type StandingBid struct {
	ID        int64           `db:"id" json:"bid_id"`
	AuctionID int64           `db:"auction_id" json:"auction_id"`
	BidderID  int64           `db:"bidder_id" json:"bidder_id"`
	MaxBid    decimal.Decimal `db:"max_bid" json:"-"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// HistorySnapshot is an immutable, append-only record of a publicly visible
// price change.
type HistorySnapshot struct {
	ID           int64           `db:"id" json:"snapshot_id"`
	AuctionID    int64           `db:"auction_id" json:"auction_id"`
	BidID        int64           `db:"bid_id" json:"bid_id"`
	ActorUserID  int64           `db:"actor_user_id" json:"actor_user_id"`
	DisplayedBid decimal.Decimal `db:"displayed_bid" json:"displayed_bid"`
	Kind         SnapshotKind    `db:"kind" json:"kind"`
	SnapshotTime time.Time       `db:"snapshot_time" json:"snapshot_time"`
}

// TopBid is one row of the leader/runner-up ranking: highest max first,
// earlier bidder winning ties on amount.
type TopBid struct {
	UserID    int64           `db:"user_id"`
	MaxBid    decimal.Decimal `db:"max_bid"`
	CreatedAt time.Time       `db:"created_at"`
	BidID     int64           `db:"id"`
}

// PlacementResult is the public-safe outcome of a bid placement. It never
// carries the leader's or the caller's true ceiling.
type PlacementResult struct {
	AuctionID     int64           `json:"auction_id"`
	HighestUserID int64           `json:"highest_user_id"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	BidsCount     int             `json:"bids_count"`
	MinNextBid    decimal.Decimal `json:"min_next_bid"`
	YouAreLeading bool            `json:"you_are_leading"`
	EndsAt        time.Time       `json:"ends_at"`
}

// UserBidSummary describes one auction a user has bid on.
type UserBidSummary struct {
	AuctionID    int64            `db:"auction_id" json:"auction_id"`
	AuctionTitle string           `db:"auction_title" json:"auction_title"`
	CurrentPrice *decimal.Decimal `db:"current_price" json:"current_price"`
	YourMax      decimal.Decimal  `db:"your_max" json:"your_max"`
	EndDate      time.Time        `db:"end_date" json:"end_date"`
	Leading      bool             `db:"leading" json:"leading"`
	Status       string           `db:"status" json:"status"`
}

// NextBidInfo advertises what a caller would need to bid to change the outcome.
type NextBidInfo struct {
	UserPrevMax *decimal.Decimal `json:"user_prev_max"`
	RequiredMin decimal.Decimal  `json:"required_min"`
}
