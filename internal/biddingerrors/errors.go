package biddingerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
)

// Auction state errors
var (
	ErrAuctionNotActive = errors.New("auction is not active")
	ErrAuctionEnded     = errors.New("auction has ended")
	ErrSelfBidForbidden = errors.New("cannot bid on your own auction")
	ErrBuyNowDisabled   = errors.New("buy now is not available for this auction")
)

// Bid validation errors
var (
	ErrInvalidBid            = errors.New("invalid bid")
	ErrBidTooLow             = errors.New("bid amount too low")
	ErrMustExceedOwnPrevious = errors.New("bid must exceed your own previous maximum")
)
