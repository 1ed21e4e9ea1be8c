package server

import (
	"errors"

	bidding "auction-bidding-engine/internal/biddingService"
	handler "auction-bidding-engine/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

var errMissingIdentity = errors.New("missing or invalid user identity")

// SetupRouter configures all Gin routes for the application
func SetupRouter(placement *bidding.BidPlacementService, query *bidding.BidQueryService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(placement, query)

	auctions := router.Group("/auctions")
	{
		auctions.POST("/:auction_id/bids", CurrentUserMiddleware, biddingHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/buy-now", CurrentUserMiddleware, biddingHandler.BuyNowHandler)
		auctions.GET("/:auction_id/history", biddingHandler.GetHistoryHandler)
		auctions.GET("/:auction_id/next-bid", CurrentUserMiddleware, biddingHandler.GetNextBidInfoHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/me/bids", CurrentUserMiddleware, biddingHandler.GetMyBidSummariesHandler)
	}

	return router
}
