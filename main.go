package main

import (
	"fmt"
	"os"
	"time"

	bidding "auction-bidding-engine/internal/biddingService"
	"auction-bidding-engine/internal/config"
	model "auction-bidding-engine/internal/models"
	"auction-bidding-engine/internal/repository"
	"auction-bidding-engine/internal/server"
	"auction-bidding-engine/utils"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
)

func main() {

	cfg := config.Load()

	ledger, err := buildLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize storage: %v\n", err)
		os.Exit(1)
	}

	placementSvc := bidding.NewBidPlacementService(ledger)
	querySvc := bidding.NewBidQueryService(ledger)

	router := server.SetupRouter(placementSvc, querySvc)

	fmt.Printf("Starting auction server on %s (storage: %s)...\n", cfg.Port, cfg.Storage)
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildLedger selects the storage backend: PostgreSQL in production, the
// in-memory ledger for local development.
func buildLedger(cfg config.Config) (repository.AuctionLedger, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := sqlx.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("open postgres connection: %w", err)
		}
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		utils.Info("connected to postgres", map[string]any{
			"host": cfg.Database.Host,
			"db":   cfg.Database.Name,
		})
		return repository.NewPostgresLedger(db), nil
	case config.StorageMemory:
		ledger := repository.NewMemoryLedger()
		prepopulateAuctions(ledger)
		return ledger, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

// prepopulateAuctions seeds sample auctions for the in-memory dev mode
func prepopulateAuctions(ledger *repository.MemoryLedger) {
	now := time.Now().UTC()
	buyNow := decimal.NewFromInt(500)
	auctions := []model.Auction{
		{
			ID: 1, SellerID: 100, Title: "Vintage camera", Status: model.StatusActive,
			StartDate: now, EndDate: now.Add(72 * time.Hour),
			MinPrice: decimal.NewFromInt(10), BidIncrement: decimal.NewFromInt(5),
		},
		{
			ID: 2, SellerID: 100, Title: "Mechanical keyboard", Status: model.StatusActive,
			StartDate: now, EndDate: now.Add(48 * time.Hour),
			MinPrice: decimal.NewFromInt(25), BidIncrement: decimal.NewFromInt(5),
			BuyNowPrice: &buyNow,
		},
		{
			ID: 3, SellerID: 101, Title: "Road bike", Status: model.StatusActive,
			StartDate: now, EndDate: now.Add(24 * time.Hour),
			MinPrice: decimal.NewFromInt(150), BidIncrement: decimal.NewFromInt(10),
		},
	}

	for _, a := range auctions {
		ledger.AddAuction(a)
	}
}
