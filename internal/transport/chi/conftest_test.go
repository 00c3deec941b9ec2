package chi

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hammerlot/auctiondex/internal/domain"
	domauc "github.com/hammerlot/auctiondex/internal/domain/auction"
	"github.com/hammerlot/auctiondex/internal/domain/query"
	auctionuc "github.com/hammerlot/auctiondex/internal/usecase/auction"
	healthuc "github.com/hammerlot/auctiondex/internal/usecase/health"
)

var testLimits = query.Limits{Default: 20, Max: 100}

// Stable ids for the fixture listings.
var (
	idLaptop  = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb01"
	idBike    = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb02"
	idGuitar  = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb03"
	idConsole = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb04"
	idDesk    = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb05"
)

// fakeRepo is an in-memory Repository with store-equivalent filtering.
type fakeRepo struct {
	auctions []domauc.Auction
	err      error
}

func (f *fakeRepo) List(_ context.Context, flt query.Filter) ([]domauc.Auction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.filter(func(domauc.Auction) bool { return true }, flt), nil
}

func (f *fakeRepo) Search(_ context.Context, term string, flt query.Filter) ([]domauc.Auction, error) {
	if f.err != nil {
		return nil, f.err
	}
	term = strings.ToLower(term)
	return f.filter(func(a domauc.Auction) bool {
		return strings.Contains(strings.ToLower(a.Title()), term) ||
			strings.Contains(strings.ToLower(a.Description()), term)
	}, flt), nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (domauc.Auction, error) {
	if f.err != nil {
		return domauc.Auction{}, f.err
	}
	if _, err := uuid.Parse(id); err != nil {
		return domauc.Auction{}, domain.ErrInvalidID
	}
	for _, a := range f.auctions {
		if a.ID() == id {
			return a, nil
		}
	}
	return domauc.Auction{}, domain.ErrNotFound
}

func (f *fakeRepo) All(_ context.Context, scanCap int) ([]domauc.Auction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.filter(func(domauc.Auction) bool { return true },
		query.NewFilter(nil, nil, scanCap, query.Limits{Default: scanCap, Max: scanCap})), nil
}

func (f *fakeRepo) filter(match func(domauc.Auction) bool, flt query.Filter) []domauc.Auction {
	out := make([]domauc.Auction, 0, len(f.auctions))
	for _, a := range f.auctions {
		if !match(a) {
			continue
		}
		if flt.MinPrice() != nil && a.StartPrice() < *flt.MinPrice() {
			continue
		}
		if flt.MaxPrice() != nil && a.StartPrice() > *flt.MaxPrice() {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	if len(out) > flt.Limit() {
		out = out[:flt.Limit()]
	}
	return out
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

// fixtureAuctions returns the five sample listings.
func fixtureAuctions() []domauc.Auction {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mk := func(i int, id, title, desc string, price float64) domauc.Auction {
		ts := base.Add(time.Duration(i) * time.Hour)
		return domauc.Reconstruct(id, title, desc, price, price*1.2, ts, ts)
	}
	return []domauc.Auction{
		mk(1, idLaptop, "Gaming Laptop", "High-end RTX 4080 gaming laptop", 1000),
		mk(2, idBike, "Mountain Bike", "Trail-ready mountain bike with front suspension", 500),
		mk(3, idGuitar, "Vintage Guitar", "1960s vintage acoustic guitar", 300),
		mk(4, idConsole, "Gaming Console", "Latest generation gaming console", 400),
		mk(5, idDesk, "Office Desk", "Standing office desk, adjustable height", 200),
	}
}

func newTestServer() (*Server, *fakeRepo) {
	repo := &fakeRepo{auctions: fixtureAuctions()}
	auctions := auctionuc.New(repo, auctionuc.Options{MinTokenLen: 3, SimilarScanCap: 100})
	health := healthuc.New(stubPinger{}, nil)
	return NewServer(auctions, health, zap.NewNop(), testLimits), repo
}
