package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domauc "github.com/hammerlot/auctiondex/internal/domain/auction"
)

// ErrAlreadySeeded is returned by Load when the store holds auctions and
// force was not requested.
var ErrAlreadySeeded = errors.New("store already contains auctions")

// Listing is one auction to seed, before id and timestamp assignment.
type Listing struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	StartPrice   float64 `json:"startPrice"`
	ReservePrice float64 `json:"reservePrice"`
}

// Service loads sample data into the store.
type Service struct {
	repo Repository
	now  func() time.Time
}

// New creates a seeding service.
func New(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock overrides the timestamp source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Load validates listings, assigns fresh ids and timestamps, and writes
// everything in one pipelined batch. The search index is created first so a
// fresh store is immediately queryable. When the store already holds auctions
// and force is false, nothing is written and ErrAlreadySeeded is returned;
// with force the existing auctions are deleted before loading.
// Returns the number of stored auctions.
func (s *Service) Load(ctx context.Context, listings []Listing, force bool) (int, error) {
	if err := s.repo.EnsureIndex(ctx); err != nil {
		return 0, fmt.Errorf("ensure index: %w", err)
	}

	if force {
		if _, err := s.repo.DeleteAll(ctx); err != nil {
			return 0, fmt.Errorf("delete existing: %w", err)
		}
	} else {
		n, err := s.repo.Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("count existing: %w", err)
		}
		if n > 0 {
			return 0, fmt.Errorf("%w: %d present, use force to reseed", ErrAlreadySeeded, n)
		}
	}

	now := s.now().UTC()
	auctions := make([]domauc.Auction, 0, len(listings))
	for i, l := range listings {
		// Stagger timestamps so newest-first ordering follows input order
		// back to front.
		ts := now.Add(time.Duration(i) * time.Millisecond)
		a, err := domauc.New(uuid.NewString(), l.Title, l.Description, l.StartPrice, l.ReservePrice, ts)
		if err != nil {
			return 0, fmt.Errorf("listing %d: %w", i, err)
		}
		auctions = append(auctions, a)
	}

	if err := s.repo.PutMulti(ctx, auctions); err != nil {
		return 0, fmt.Errorf("store auctions: %w", err)
	}
	return len(auctions), nil
}

// Reset removes every stored auction and returns the number deleted.
func (s *Service) Reset(ctx context.Context) (int, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete auctions: %w", err)
	}
	return n, nil
}

// Stored returns up to scanCap stored auctions, newest first.
func (s *Service) Stored(ctx context.Context, scanCap int) ([]domauc.Auction, error) {
	auctions, err := s.repo.All(ctx, scanCap)
	if err != nil {
		return nil, fmt.Errorf("list stored auctions: %w", err)
	}
	return auctions, nil
}
