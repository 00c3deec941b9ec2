package chi

import (
	"time"

	domauc "github.com/hammerlot/auctiondex/internal/domain/auction"
)

// auctionResponse is the wire representation of one auction.
type auctionResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartPrice   float64   `json:"startPrice"`
	ReservePrice float64   `json:"reservePrice"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// listResponse is the envelope for collection endpoints.
type listResponse struct {
	Success bool              `json:"success"`
	Count   int               `json:"count"`
	Data    []auctionResponse `json:"data"`
}

// itemResponse is the envelope for single-auction endpoints.
type itemResponse struct {
	Success bool            `json:"success"`
	Data    auctionResponse `json:"data"`
}

// errorResponse is the envelope for failures.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func auctionToResponse(a domauc.Auction) auctionResponse {
	return auctionResponse{
		ID:           a.ID(),
		Title:        a.Title(),
		Description:  a.Description(),
		StartPrice:   a.StartPrice(),
		ReservePrice: a.ReservePrice(),
		CreatedAt:    a.CreatedAt().UTC(),
		UpdatedAt:    a.UpdatedAt().UTC(),
	}
}

func auctionsToResponse(auctions []domauc.Auction) []auctionResponse {
	items := make([]auctionResponse, len(auctions))
	for i, a := range auctions {
		items[i] = auctionToResponse(a)
	}
	return items
}
