package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// IndexProber checks that the search index answers queries.
type IndexProber interface {
	Count(ctx context.Context) (int, error)
}
