package seed

import (
	"context"

	domauc "github.com/hammerlot/auctiondex/internal/domain/auction"
)

// Repository defines the storage contract for seeding operations.
type Repository interface {
	EnsureIndex(ctx context.Context) error
	PutMulti(ctx context.Context, auctions []domauc.Auction) error
	DeleteAll(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
	All(ctx context.Context, scanCap int) ([]domauc.Auction, error)
}
