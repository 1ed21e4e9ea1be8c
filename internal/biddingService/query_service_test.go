package bidding

import (
	"context"
	"testing"

	"auction-bidding-engine/internal/biddingerrors"
	model "auction-bidding-engine/internal/models"
	"auction-bidding-engine/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Tests GetHistory
func TestBidQueryService_GetHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := repository.NewMockAuctionLedger(ctrl)
	service := NewBidQueryService(mockLedger)
	ctx := context.Background()

	t.Run("returns_snapshots_as_persisted", func(t *testing.T) {
		snaps := []model.HistorySnapshot{
			{ID: 1, AuctionID: 1, ActorUserID: 200, Kind: model.KindUserBid},
			{ID: 2, AuctionID: 1, ActorUserID: 201, Kind: model.KindAutoRaise},
		}
		mockLedger.EXPECT().GetHistory(gomock.Any(), int64(1)).Return(snaps, nil)

		got, err := service.GetHistory(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, snaps, got)
	})

	t.Run("invalid_auction_id", func(t *testing.T) {
		_, err := service.GetHistory(ctx, 0)
		require.ErrorIs(t, err, biddingerrors.ErrInvalidBid)
	})

	t.Run("unknown_auction", func(t *testing.T) {
		mockLedger.EXPECT().GetHistory(gomock.Any(), int64(9)).
			Return(nil, biddingerrors.ErrAuctionNotFound)

		_, err := service.GetHistory(ctx, 9)
		require.ErrorIs(t, err, biddingerrors.ErrAuctionNotFound)
	})
}

// Tests GetUserBidSummaries
func TestBidQueryService_GetUserBidSummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := repository.NewMockAuctionLedger(ctrl)
	service := NewBidQueryService(mockLedger)
	ctx := context.Background()

	t.Run("returns_summaries", func(t *testing.T) {
		summaries := []model.UserBidSummary{
			{AuctionID: 1, AuctionTitle: "auction 1", Leading: true, Status: "active"},
		}
		mockLedger.EXPECT().GetUserBidSummaries(gomock.Any(), int64(200)).Return(summaries, nil)

		got, err := service.GetUserBidSummaries(ctx, 200)
		require.NoError(t, err)
		require.Equal(t, summaries, got)
	})

	t.Run("invalid_bidder_id", func(t *testing.T) {
		_, err := service.GetUserBidSummaries(ctx, -1)
		require.ErrorIs(t, err, biddingerrors.ErrInvalidBid)
	})
}

// Tests GetNextBidInfo
func TestBidQueryService_GetNextBidInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := repository.NewMockAuctionLedger(ctrl)
	service := NewBidQueryService(mockLedger)
	ctx := context.Background()

	t.Run("fresh_auction_requires_min_price", func(t *testing.T) {
		mockLedger.EXPECT().GetAuction(gomock.Any(), int64(1)).Return(activeAuction(1, 100), nil)
		mockLedger.EXPECT().GetStandingMax(gomock.Any(), int64(1), int64(200)).Return(nil, nil)

		info, err := service.GetNextBidInfo(ctx, 1, 200)
		require.NoError(t, err)
		require.Nil(t, info.UserPrevMax)
		require.True(t, info.RequiredMin.Equal(dec(10)))
	})

	t.Run("running_auction_requires_current_plus_increment", func(t *testing.T) {
		a := activeAuction(1, 100)
		a.BidsCount = 2
		a.CurrentBid = decPtr(105)
		mockLedger.EXPECT().GetAuction(gomock.Any(), int64(1)).Return(a, nil)
		mockLedger.EXPECT().GetStandingMax(gomock.Any(), int64(1), int64(200)).Return(decPtr(100), nil)

		info, err := service.GetNextBidInfo(ctx, 1, 200)
		require.NoError(t, err)
		require.NotNil(t, info.UserPrevMax)
		require.True(t, info.UserPrevMax.Equal(dec(100)))
		require.True(t, info.RequiredMin.Equal(dec(110)))
	})

	t.Run("unknown_auction", func(t *testing.T) {
		mockLedger.EXPECT().GetAuction(gomock.Any(), int64(9)).
			Return(model.Auction{}, biddingerrors.ErrAuctionNotFound)

		_, err := service.GetNextBidInfo(ctx, 9, 200)
		require.ErrorIs(t, err, biddingerrors.ErrAuctionNotFound)
	})
}
