package db

// ListQuery is the input for a filtered, sorted, capped FT.SEARCH read.
type ListQuery struct {
	IndexName    string
	Query        string // FT.SEARCH query string, "*" matches everything
	SortBy       string // empty means default collection order
	SortDesc     bool
	Offset       int
	Limit        int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}
