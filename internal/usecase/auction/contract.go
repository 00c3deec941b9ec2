package auction

import (
	"context"

	domauc "github.com/hammerlot/auctiondex/internal/domain/auction"
	"github.com/hammerlot/auctiondex/internal/domain/query"
)

// Repository defines the storage contract for auction reads.
type Repository interface {
	List(ctx context.Context, f query.Filter) ([]domauc.Auction, error)
	Search(ctx context.Context, term string, f query.Filter) ([]domauc.Auction, error)
	Get(ctx context.Context, id string) (domauc.Auction, error)
	All(ctx context.Context, scanCap int) ([]domauc.Auction, error)
}
