package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"auction-bidding-engine/internal/biddingerrors"
	model "auction-bidding-engine/internal/models"
	"auction-bidding-engine/services/bidding/helpers"
	"auction-bidding-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PlacementServiceInterface interface {
	PlaceBid(ctx context.Context, auctionID, bidderID int64, maxAmount decimal.Decimal) (model.PlacementResult, error)
	BuyNow(ctx context.Context, auctionID, bidderID int64) (model.PlacementResult, error)
}

type QueryServiceInterface interface {
	GetHistory(ctx context.Context, auctionID int64) ([]model.HistorySnapshot, error)
	GetUserBidSummaries(ctx context.Context, bidderID int64) ([]model.UserBidSummary, error)
	GetNextBidInfo(ctx context.Context, auctionID, bidderID int64) (model.NextBidInfo, error)
}

type BiddingHandler struct {
	placement PlacementServiceInterface
	query     QueryServiceInterface
}

func NewBiddingHandler(placement PlacementServiceInterface, query QueryServiceInterface) *BiddingHandler {
	return &BiddingHandler{placement: placement, query: query}
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	auctionID, ok := auctionIDParam(c, "PlaceBidHandler")
	if !ok {
		return
	}
	bidderID := c.GetInt64(helpers.UserIDKey)

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	result, err := h.placement.PlaceBid(c.Request.Context(), auctionID, bidderID, req.MaxBid)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": auctionID,
			"bidder_id":  bidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, placementResponse(result), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id":    result.AuctionID,
		"bidder_id":     bidderID,
		"current_price": result.CurrentPrice.String(),
		"leading":       result.YouAreLeading,
	})
}

// BuyNowHandler handles POST /auctions/:auction_id/buy-now
func (h *BiddingHandler) BuyNowHandler(c *gin.Context) {
	auctionID, ok := auctionIDParam(c, "BuyNowHandler")
	if !ok {
		return
	}
	bidderID := c.GetInt64(helpers.UserIDKey)

	result, err := h.placement.BuyNow(c.Request.Context(), auctionID, bidderID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("BuyNowHandler: failed to buy now", map[string]any{
			"handler":    "BuyNowHandler",
			"auction_id": auctionID,
			"bidder_id":  bidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, placementResponse(result), "auction sold")
	helpers.LogSuccess("BuyNowHandler", "auction sold", map[string]any{
		"auction_id": result.AuctionID,
		"buyer_id":   bidderID,
		"sale_price": result.CurrentPrice.String(),
	})
}

// GetHistoryHandler handles GET /auctions/:auction_id/history
func (h *BiddingHandler) GetHistoryHandler(c *gin.Context) {
	auctionID, ok := auctionIDParam(c, "GetHistoryHandler")
	if !ok {
		return
	}

	snaps, err := h.query.GetHistory(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetHistoryHandler: error retrieving history", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	items := make([]helpers.HistoryItemResponse, 0, len(snaps))
	for _, s := range snaps {
		items = append(items, helpers.HistoryItemResponse{
			SnapshotID:   s.ID,
			BidID:        s.BidID,
			ActorUserID:  s.ActorUserID,
			DisplayedBid: s.DisplayedBid,
			Kind:         string(s.Kind),
			SnapshotTime: helpers.FormatTime(s.SnapshotTime),
		})
	}

	utils.JSONResponse(c, http.StatusOK, items, "history retrieved successfully")
	helpers.LogSuccess("GetHistoryHandler", "history retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(items),
	})
}

// GetNextBidInfoHandler handles GET /auctions/:auction_id/next-bid
func (h *BiddingHandler) GetNextBidInfoHandler(c *gin.Context) {
	auctionID, ok := auctionIDParam(c, "GetNextBidInfoHandler")
	if !ok {
		return
	}
	bidderID := c.GetInt64(helpers.UserIDKey)

	info, err := h.query.GetNextBidInfo(c.Request.Context(), auctionID, bidderID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetNextBidInfoHandler: error retrieving next bid info", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	resp := helpers.NextBidInfoResponse{
		UserPrevMax: info.UserPrevMax,
		RequiredMin: info.RequiredMin,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "next bid info retrieved successfully")
}

// GetMyBidSummariesHandler handles GET /users/me/bids
func (h *BiddingHandler) GetMyBidSummariesHandler(c *gin.Context) {
	bidderID := c.GetInt64(helpers.UserIDKey)

	summaries, err := h.query.GetUserBidSummaries(c.Request.Context(), bidderID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetMyBidSummariesHandler: error retrieving summaries", map[string]any{"bidder_id": bidderID, "error": err.Error()})
		return
	}

	if summaries == nil {
		summaries = []model.UserBidSummary{}
	}

	utils.JSONResponse(c, http.StatusOK, summaries, "bid summaries retrieved successfully")
	helpers.LogSuccess("GetMyBidSummariesHandler", "bid summaries retrieved successfully", map[string]any{
		"bidder_id": bidderID,
		"count":     len(summaries),
	})
}

func placementResponse(result model.PlacementResult) helpers.PlacementResponse {
	return helpers.PlacementResponse{
		AuctionID:     result.AuctionID,
		HighestUserID: result.HighestUserID,
		CurrentPrice:  result.CurrentPrice,
		BidsCount:     result.BidsCount,
		MinNextBid:    result.MinNextBid,
		YouAreLeading: result.YouAreLeading,
		EndsAt:        helpers.FormatTime(result.EndsAt),
	}
}

func auctionIDParam(c *gin.Context, handlerName string) (int64, bool) {
	auctionID, err := strconv.ParseInt(c.Param("auction_id"), 10, 64)
	if err != nil || auctionID <= 0 {
		wrapped := fmt.Errorf("%w - malformed auction id", biddingerrors.ErrInvalidBid)
		utils.JSONError(c, http.StatusBadRequest, wrapped, "invalid auction id")
		utils.Warn(handlerName+": malformed auction id", map[string]any{"auction_id": c.Param("auction_id")})
		return 0, false
	}
	return auctionID, true
}
