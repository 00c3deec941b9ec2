package auction

import "github.com/hammerlot/auctiondex/internal/db"

// buildIndex defines the auction search index: TEXT over title/description
// for keyword search, NUMERIC over start_price for range filtering, and a
// sortable NUMERIC created_at for newest-first ordering.
func buildIndex(name, keyPrefix string) (*db.IndexDefinition, error) {
	return db.NewIndex(name).
		Prefix(keyPrefix).
		Text(fieldTitle).
		Text(fieldDescription).
		Numeric(fieldStartPrice).
		Numeric(fieldReservePrice).
		NumericSortable(fieldCreatedAt).
		Build()
}
