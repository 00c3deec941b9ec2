package auction

import (
	"fmt"
	"strings"
	"time"

	"github.com/hammerlot/auctiondex/internal/domain"
)

// Auction is the auction listing aggregate (immutable value object).
type Auction struct {
	id           string
	title        string
	description  string
	startPrice   float64
	reservePrice float64
	createdAt    time.Time
	updatedAt    time.Time
}

// New validates and creates an Auction.
// Title and description must be non-empty after trimming; both prices must be
// non-negative. No ordering is enforced between start and reserve price.
func New(id, title, description string, startPrice, reservePrice float64, now time.Time) (Auction, error) {
	if id == "" {
		return Auction{}, fmt.Errorf("%w: id is required", domain.ErrInvalidAuction)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return Auction{}, fmt.Errorf("%w: title is required", domain.ErrInvalidAuction)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return Auction{}, fmt.Errorf("%w: description is required", domain.ErrInvalidAuction)
	}
	if startPrice < 0 {
		return Auction{}, fmt.Errorf("%w: start price must be non-negative, got %g", domain.ErrInvalidAuction, startPrice)
	}
	if reservePrice < 0 {
		return Auction{}, fmt.Errorf("%w: reserve price must be non-negative, got %g", domain.ErrInvalidAuction, reservePrice)
	}

	return Auction{
		id:           id,
		title:        title,
		description:  description,
		startPrice:   startPrice,
		reservePrice: reservePrice,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct creates an Auction without validation (storage hydration).
func Reconstruct(
	id, title, description string, startPrice, reservePrice float64,
	createdAt, updatedAt time.Time,
) Auction {
	return Auction{
		id:           id,
		title:        title,
		description:  description,
		startPrice:   startPrice,
		reservePrice: reservePrice,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the auction identifier.
func (a *Auction) ID() string { return a.id }

// Title returns the listing title.
func (a *Auction) Title() string { return a.title }

// Description returns the listing description.
func (a *Auction) Description() string { return a.description }

// StartPrice returns the opening bid.
func (a *Auction) StartPrice() float64 { return a.startPrice }

// ReservePrice returns the minimum acceptable sale price.
func (a *Auction) ReservePrice() float64 { return a.reservePrice }

// CreatedAt returns the creation timestamp.
func (a *Auction) CreatedAt() time.Time { return a.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (a *Auction) UpdatedAt() time.Time { return a.updatedAt }
