package auction

import (
	"context"
	"time"

	domauc "github.com/hammerlot/auctiondex/internal/domain/auction"
	"github.com/hammerlot/auctiondex/internal/domain/query"
)

var testLimits = query.Limits{Default: 20, Max: 100}

// mockRepo implements Repository for tests.
type mockRepo struct {
	listFn   func(ctx context.Context, f query.Filter) ([]domauc.Auction, error)
	searchFn func(ctx context.Context, term string, f query.Filter) ([]domauc.Auction, error)
	getFn    func(ctx context.Context, id string) (domauc.Auction, error)
	allFn    func(ctx context.Context, scanCap int) ([]domauc.Auction, error)
}

func (m *mockRepo) List(ctx context.Context, f query.Filter) ([]domauc.Auction, error) {
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return nil, nil
}

func (m *mockRepo) Search(ctx context.Context, term string, f query.Filter) ([]domauc.Auction, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, term, f)
	}
	return nil, nil
}

func (m *mockRepo) Get(ctx context.Context, id string) (domauc.Auction, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domauc.Auction{}, nil
}

func (m *mockRepo) All(ctx context.Context, scanCap int) ([]domauc.Auction, error) {
	if m.allFn != nil {
		return m.allFn(ctx, scanCap)
	}
	return nil, nil
}

func newTestService() (*Service, *mockRepo) {
	mr := &mockRepo{}
	return New(mr, Options{MinTokenLen: 3, SimilarScanCap: 100}), mr
}

// fixtureAuctions is the shared five-listing dataset, newest first.
func fixtureAuctions() []domauc.Auction {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mk := func(i int, id, title, desc string, price float64) domauc.Auction {
		ts := base.Add(time.Duration(i) * time.Hour)
		return domauc.Reconstruct(id, title, desc, price, price*1.2, ts, ts)
	}
	// Reverse-chronological, matching repository output order.
	return []domauc.Auction{
		mk(5, "id-desk", "Office Desk", "Standing office desk, adjustable height", 200),
		mk(4, "id-console", "Gaming Console", "Latest generation gaming console", 400),
		mk(3, "id-guitar", "Vintage Guitar", "1960s vintage acoustic guitar", 300),
		mk(2, "id-bike", "Mountain Bike", "Trail-ready mountain bike with front suspension", 500),
		mk(1, "id-laptop", "Gaming Laptop", "High-end RTX 4080 gaming laptop", 1000),
	}
}

func byID(auctions []domauc.Auction, id string) domauc.Auction {
	for _, a := range auctions {
		if a.ID() == id {
			return a
		}
	}
	return domauc.Auction{}
}

func ids(auctions []domauc.Auction) []string {
	out := make([]string, len(auctions))
	for i, a := range auctions {
		out[i] = a.ID()
	}
	return out
}
