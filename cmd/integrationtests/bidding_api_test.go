package integrationtests

import (
	"net/http"
	"testing"
	"time"

	model "auction-bidding-engine/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// PlaceBidHandler Tests
func TestPlaceBidEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		auction    model.Auction
		userID     int64
		request    any
		wantStatus int
		wantPrice  string
	}{
		{
			name:       "First_Bid_Opens_At_Min_Price",
			auction:    activeAuction(1, 900, "100", "5"),
			userID:     2,
			request:    map[string]string{"max_bid": "150"},
			wantStatus: http.StatusCreated,
			wantPrice:  "100",
		},
		{
			name:       "Bid_Below_Min_Price",
			auction:    activeAuction(1, 900, "100", "5"),
			userID:     2,
			request:    map[string]string{"max_bid": "99"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Seller_Cannot_Bid",
			auction:    activeAuction(1, 900, "100", "5"),
			userID:     900,
			request:    map[string]string{"max_bid": "150"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Invalid_JSON",
			auction:    activeAuction(1, 900, "100", "5"),
			userID:     2,
			request:    "{max_bid: missing quotes}",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupTestRouterWithAuctions(tt.auction)
			resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/1/bids", tt.userID, tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				require.Equal(t, tt.wantPrice, resp["current_price"])
				require.Equal(t, float64(tt.userID), resp["highest_user_id"])
				require.Equal(t, float64(1), resp["bids_count"])
				require.Equal(t, true, resp["you_are_leading"])

				_, err := time.Parse(time.RFC3339, resp["ends_at"].(string))
				require.NoError(t, err)
			}
		})
	}
}

func TestPlaceBidEndpoint_UnknownAuction(t *testing.T) {
	router := SetupTestRouter()
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/42/bids", 2, map[string]string{"max_bid": "150"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaceBidEndpoint_MissingIdentity(t *testing.T) {
	router := SetupTestRouterWithAuctions(activeAuction(1, 900, "100", "5"))
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/1/bids", 0, map[string]string{"max_bid": "150"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// A full proxy-bid duel over HTTP: outbidding, auto-raises, ties, and the
// resulting public history.
func TestBiddingDuelAndHistory(t *testing.T) {
	router := SetupTestRouterWithAuctions(activeAuction(1, 900, "40", "5"))

	// Alice opens; public price is the minimum.
	resp := placeBid(t, router, 1, 101, "100")
	require.Equal(t, "40", resp["current_price"])

	// Bob challenges below Alice's ceiling; Alice is auto-raised past him.
	resp = placeBid(t, router, 1, 102, "50")
	require.Equal(t, "55", resp["current_price"])
	require.Equal(t, float64(101), resp["highest_user_id"])
	require.Equal(t, false, resp["you_are_leading"])

	// Carol matches Alice's ceiling exactly; the earlier bidder keeps the lead.
	resp = placeBid(t, router, 1, 103, "100")
	require.Equal(t, "100", resp["current_price"])
	require.Equal(t, float64(101), resp["highest_user_id"])

	// Bob takes the lead outright at second price.
	resp = placeBid(t, router, 1, 102, "200")
	require.Equal(t, "105", resp["current_price"])
	require.Equal(t, float64(102), resp["highest_user_id"])
	require.Equal(t, true, resp["you_are_leading"])

	respEnv, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/1/history", 0, nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := respEnv["data"].([]any)
	wantKinds := []string{"USER_BID", "USER_BID", "AUTO_RAISE", "USER_BID", "TIE_AUTO", "USER_BID"}
	wantPrices := []string{"40", "50", "55", "100", "100", "105"}
	require.Len(t, items, len(wantKinds))
	for i, raw := range items {
		item := raw.(map[string]any)
		require.Equal(t, wantKinds[i], item["kind"], "snapshot %d", i)
		require.Equal(t, wantPrices[i], item["displayed_bid"], "snapshot %d", i)
	}

	// bids_count tracks the history length exactly.
	require.Equal(t, "105", resp["current_price"])
	require.Equal(t, float64(len(items)), resp["bids_count"])
}

// Leader raising their own ceiling leaves no public trace.
func TestLeaderSilentRaise(t *testing.T) {
	router := SetupTestRouterWithAuctions(activeAuction(1, 900, "40", "5"))

	placeBid(t, router, 1, 101, "100")
	resp := placeBid(t, router, 1, 101, "300")
	require.Equal(t, "40", resp["current_price"])
	require.Equal(t, float64(1), resp["bids_count"])

	// Raising below the previous ceiling is rejected.
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/1/bids", 101, map[string]string{"max_bid": "250"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// GetNextBidInfoHandler Tests
func TestNextBidEndpoint(t *testing.T) {
	router := SetupTestRouterWithAuctions(activeAuction(1, 900, "100", "5"))

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/1/next-bid", 2, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Nil(t, data["user_prev_max"])
	require.Equal(t, "100", data["required_min"])

	placeBid(t, router, 1, 2, "150")

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/1/next-bid", 2, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = resp["data"].(map[string]any)
	require.Equal(t, "150", data["user_prev_max"])
	require.Equal(t, "105", data["required_min"])
}

// GetMyBidSummariesHandler Tests
func TestMyBidsEndpoint(t *testing.T) {
	router := SetupTestRouterWithAuctions(
		activeAuction(1, 900, "40", "5"),
		activeAuction(2, 900, "100", "10"),
	)

	placeBid(t, router, 1, 101, "100")
	placeBid(t, router, 1, 102, "200")
	placeBid(t, router, 2, 101, "500")

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/users/me/bids", 101, nil)
	require.Equal(t, http.StatusOK, w.Code)

	summaries := resp["data"].([]any)
	require.Len(t, summaries, 2)

	byAuction := map[float64]map[string]any{}
	for _, raw := range summaries {
		s := raw.(map[string]any)
		byAuction[s["auction_id"].(float64)] = s
	}
	require.Equal(t, false, byAuction[1]["leading"])
	require.Equal(t, true, byAuction[2]["leading"])
	require.Equal(t, "100", byAuction[1]["your_max"])
	require.Equal(t, "500", byAuction[2]["your_max"])

	// A user with no bids gets an empty list.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/users/me/bids", 555, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 0)
}

// BuyNowHandler Tests
func TestBuyNowEndpoint(t *testing.T) {
	withBuyNow := activeAuction(1, 900, "100", "5")
	price := decimal.RequireFromString("500")
	withBuyNow.BuyNowPrice = &price

	t.Run("Success_Ends_Auction", func(t *testing.T) {
		router := SetupTestRouterWithAuctions(withBuyNow)

		resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/1/buy-now", 2, nil)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, "500", resp["current_price"])
		require.Equal(t, float64(2), resp["highest_user_id"])

		// The auction is sold; further bids are rejected.
		_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/1/bids", 3, map[string]string{"max_bid": "600"})
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Not_Configured", func(t *testing.T) {
		router := SetupTestRouterWithAuctions(activeAuction(1, 900, "100", "5"))
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/1/buy-now", 2, nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}
