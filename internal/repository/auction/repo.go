package auction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hammerlot/auctiondex/internal/db"
	"github.com/hammerlot/auctiondex/internal/domain"
	domauc "github.com/hammerlot/auctiondex/internal/domain/auction"
	"github.com/hammerlot/auctiondex/internal/domain/query"
)

// store is the consumer interface for auction persistence (ISP).
//
//nolint:interfacebloat // auction repo needs hash + index + search operations
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	DelMulti(ctx context.Context, keys []string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchList(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// Repo implements usecase/auction.Repository and usecase/seed.Repository.
type Repo struct {
	store  store
	prefix string
}

// New creates an auction repository. keyPrefix namespaces every key and the
// index name, e.g. "auctiondex:".
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, prefix: keyPrefix}
}

// EnsureIndex creates the auction search index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	name := r.indexName()
	exists, err := r.store.IndexExists(ctx, name)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		return nil
	}

	def, err := buildIndex(name, r.auctionPrefix())
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	if err := r.store.CreateIndex(ctx, def); err != nil {
		// Concurrent creation is fine
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create index %s: %w", name, err)
	}
	return nil
}

// DropIndex removes the auction search index. Missing index is not an error.
func (r *Repo) DropIndex(ctx context.Context) error {
	if err := r.store.DropIndex(ctx, r.indexName()); err != nil {
		if errors.Is(err, db.ErrIndexNotFound) {
			return nil
		}
		return fmt.Errorf("drop index: %w", err)
	}
	return nil
}

// List returns auctions matching the price filter, newest first.
func (r *Repo) List(ctx context.Context, f query.Filter) ([]domauc.Auction, error) {
	q := db.AndClauses(priceClause(f))
	return r.searchList(ctx, q, f.Limit())
}

// Search returns auctions whose title or description matches the term,
// narrowed by the price filter, newest first.
func (r *Repo) Search(ctx context.Context, term string, f query.Filter) ([]domauc.Auction, error) {
	q := db.AndClauses(
		db.TextUnionClause(term, fieldTitle, fieldDescription),
		priceClause(f),
	)
	return r.searchList(ctx, q, f.Limit())
}

// Get retrieves a single auction by id. A malformed id is rejected before
// touching the store.
func (r *Repo) Get(ctx context.Context, id string) (domauc.Auction, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domauc.Auction{}, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}

	m, err := r.store.HGetAll(ctx, r.auctionKey(id))
	if err != nil {
		return domauc.Auction{}, fmt.Errorf("hgetall auction %s: %w", id, err)
	}
	if len(m) == 0 {
		return domauc.Auction{}, domain.ErrNotFound
	}
	return auctionFromHash(m)
}

// All returns up to scanCap auctions, newest first. Used as the candidate
// pool for similarity lookups.
func (r *Repo) All(ctx context.Context, scanCap int) ([]domauc.Auction, error) {
	return r.searchList(ctx, "*", scanCap)
}

// Put stores one auction.
func (r *Repo) Put(ctx context.Context, a domauc.Auction) error {
	if err := r.store.HSet(ctx, r.auctionKey(a.ID()), auctionToHash(a)); err != nil {
		return fmt.Errorf("hset auction %s: %w", a.ID(), err)
	}
	return nil
}

// PutMulti stores auctions in a single pipelined write.
func (r *Repo) PutMulti(ctx context.Context, auctions []domauc.Auction) error {
	if len(auctions) == 0 {
		return nil
	}
	items := make([]db.HashSetItem, len(auctions))
	for i, a := range auctions {
		items[i] = db.HashSetItem{Key: r.auctionKey(a.ID()), Fields: auctionToHash(a)}
	}
	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("hset multi %d auctions: %w", len(auctions), err)
	}
	return nil
}

// DeleteAll removes every stored auction. Returns the number of deleted keys.
func (r *Repo) DeleteAll(ctx context.Context) (int, error) {
	keys, err := r.store.Scan(ctx, r.auctionPrefix()+"*")
	if err != nil {
		return 0, fmt.Errorf("scan auctions: %w", err)
	}
	if len(keys) == 0 {
		return 0, nil
	}
	if err := r.store.DelMulti(ctx, keys); err != nil {
		return 0, fmt.Errorf("del %d auctions: %w", len(keys), err)
	}
	return len(keys), nil
}

// Count returns the number of indexed auctions.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.SearchCount(ctx, r.indexName(), "*")
	if err != nil {
		return 0, fmt.Errorf("count auctions: %w", err)
	}
	return n, nil
}

func (r *Repo) searchList(ctx context.Context, q string, limit int) ([]domauc.Auction, error) {
	sr, err := r.store.SearchList(ctx, &db.ListQuery{
		IndexName: r.indexName(),
		Query:     q,
		SortBy:    fieldCreatedAt,
		SortDesc:  true,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("search auctions: %w", err)
	}

	auctions := make([]domauc.Auction, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		a, err := auctionFromHash(entry.Fields)
		if err != nil {
			return nil, fmt.Errorf("parse auction %s: %w", entry.Key, err)
		}
		auctions = append(auctions, a)
	}
	return auctions, nil
}

func priceClause(f query.Filter) string {
	if f.MinPrice() == nil && f.MaxPrice() == nil {
		return ""
	}
	return db.NumericRangeClause(fieldStartPrice, f.MinPrice(), f.MaxPrice())
}

// Key patterns: auctiondex:auctions:{id}, auctiondex:auctions:idx

func (r *Repo) auctionKey(id string) string {
	return r.auctionPrefix() + id
}

func (r *Repo) auctionPrefix() string {
	return r.prefix + "auctions:"
}

func (r *Repo) indexName() string {
	return r.prefix + "auctions:idx"
}
