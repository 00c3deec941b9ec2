package auction

import (
	"context"
	"fmt"
	"strings"

	"github.com/hammerlot/auctiondex/internal/domain"
	domauc "github.com/hammerlot/auctiondex/internal/domain/auction"
	"github.com/hammerlot/auctiondex/internal/domain/query"
)

// Options tune the read paths.
type Options struct {
	// MinTokenLen is the shortest token considered by similarity matching.
	MinTokenLen int
	// SimilarScanCap bounds the candidate pool fetched for a similarity
	// lookup.
	SimilarScanCap int
}

// Service handles auction listing, search, retrieval, and similarity lookups.
type Service struct {
	repo Repository
	opts Options
}

// New creates an auction service.
func New(repo Repository, opts Options) *Service {
	if opts.MinTokenLen <= 0 {
		opts.MinTokenLen = domauc.DefaultMinTokenLen
	}
	if opts.SimilarScanCap <= 0 {
		opts.SimilarScanCap = 10000
	}
	return &Service{repo: repo, opts: opts}
}

// List returns auctions matching the filter, newest first.
func (s *Service) List(ctx context.Context, f query.Filter) ([]domauc.Auction, error) {
	auctions, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	return auctions, nil
}

// Search returns auctions whose title or description matches the term.
// A blank term is rejected with ErrMissingQuery.
func (s *Service) Search(ctx context.Context, term string, f query.Filter) ([]domauc.Auction, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.ErrMissingQuery
	}

	auctions, err := s.repo.Search(ctx, term, f)
	if err != nil {
		return nil, fmt.Errorf("search auctions: %w", err)
	}
	return auctions, nil
}

// Get retrieves a single auction by id.
func (s *Service) Get(ctx context.Context, id string) (domauc.Auction, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return domauc.Auction{}, fmt.Errorf("get auction: %w", err)
	}
	return a, nil
}

// Similar returns auctions sharing at least one significant token with the
// reference auction's title or description. The reference itself is excluded.
// Candidates keep the repository's newest-first order; no relevance ranking
// is applied.
func (s *Service) Similar(ctx context.Context, id string, f query.Filter) ([]domauc.Auction, error) {
	ref, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reference auction: %w", err)
	}

	set := domauc.TokenSet(s.opts.MinTokenLen, ref.Title(), ref.Description())
	if len(set) == 0 {
		return []domauc.Auction{}, nil
	}

	candidates, err := s.repo.All(ctx, s.opts.SimilarScanCap)
	if err != nil {
		return nil, fmt.Errorf("scan similarity candidates: %w", err)
	}

	matches := make([]domauc.Auction, 0, f.Limit())
	for _, c := range candidates {
		if c.ID() == ref.ID() {
			continue
		}
		if !domauc.SharesToken(set, s.opts.MinTokenLen, c.Title(), c.Description()) {
			continue
		}
		matches = append(matches, c)
		if len(matches) >= f.Limit() {
			break
		}
	}
	return matches, nil
}
