package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	bidding "auction-bidding-engine/internal/biddingService"
	model "auction-bidding-engine/internal/models"
	"auction-bidding-engine/internal/repository"
	"auction-bidding-engine/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SetupTestRouter initializes the router with the in-memory ledger for
// integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ledger := repository.NewMemoryLedger()
	placement := bidding.NewBidPlacementService(ledger)
	query := bidding.NewBidQueryService(ledger)
	return server.SetupRouter(placement, query)
}

// SetupTestRouterWithAuctions initializes the router and seeds the ledger.
func SetupTestRouterWithAuctions(auctions ...model.Auction) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ledger := repository.NewMemoryLedger()

	for _, a := range auctions {
		ledger.AddAuction(a)
	}

	placement := bidding.NewBidPlacementService(ledger)
	query := bidding.NewBidQueryService(ledger)
	return server.SetupRouter(placement, query)
}

// activeAuction builds a seedable auction that is open for bidding.
func activeAuction(id, sellerID int64, minPrice, increment string) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		ID:           id,
		SellerID:     sellerID,
		Title:        "auction " + strconv.FormatInt(id, 10),
		Status:       model.StatusActive,
		StartDate:    now.Add(-time.Hour),
		EndDate:      now.Add(24 * time.Hour),
		MinPrice:     decimal.RequireFromString(minPrice),
		BidIncrement: decimal.RequireFromString(increment),
	}
}

// ExecuteRequest executes an HTTP request as the given user and returns the
// response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, userID int64, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("X-User-ID", strconv.FormatInt(userID, 10))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the envelope. On 201 the data object is returned directly.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, userID int64, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, userID, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}

// placeBid posts a max bid for userID and requires a 201.
func placeBid(t *testing.T, router *gin.Engine, auctionID, userID int64, maxBid string) map[string]any {
	t.Helper()
	url := "/auctions/" + strconv.FormatInt(auctionID, 10) + "/bids"
	resp, w := ExecuteRequestAndParse(t, router, "POST", url, userID, map[string]string{"max_bid": maxBid})
	if w.Code != 201 {
		t.Fatalf("placeBid(%d, %d, %s): status %d body %s", auctionID, userID, maxBid, w.Code, w.Body.String())
	}
	return resp
}
