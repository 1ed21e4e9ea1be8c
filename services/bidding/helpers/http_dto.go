package helpers

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	MaxBid decimal.Decimal `json:"max_bid"`
}

type PlacementResponse struct {
	AuctionID     int64           `json:"auction_id"`
	HighestUserID int64           `json:"highest_user_id"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	BidsCount     int             `json:"bids_count"`
	MinNextBid    decimal.Decimal `json:"min_next_bid"`
	YouAreLeading bool            `json:"you_are_leading"`
	EndsAt        string          `json:"ends_at"`
}

type HistoryItemResponse struct {
	SnapshotID   int64           `json:"snapshot_id"`
	BidID        int64           `json:"bid_id"`
	ActorUserID  int64           `json:"actor_user_id"`
	DisplayedBid decimal.Decimal `json:"displayed_bid"`
	Kind         string          `json:"kind"`
	SnapshotTime string          `json:"snapshot_time"`
}

type NextBidInfoResponse struct {
	UserPrevMax *decimal.Decimal `json:"user_prev_max"`
	RequiredMin decimal.Decimal  `json:"required_min"`
}

// FormatTime renders timestamps the way every response does.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
