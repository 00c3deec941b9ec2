package auction

import (
	"fmt"
	"strconv"
	"time"

	domauc "github.com/hammerlot/auctiondex/internal/domain/auction"
)

// Hash field names. created_at is the sort key and must stay NUMERIC SORTABLE
// in the index definition.
const (
	fieldID           = "id"
	fieldTitle        = "title"
	fieldDescription  = "description"
	fieldStartPrice   = "start_price"
	fieldReservePrice = "reserve_price"
	fieldCreatedAt    = "created_at"
	fieldUpdatedAt    = "updated_at"
)

// auctionToHash converts a domain Auction to a map for HSET.
// Timestamps are stored as unix milliseconds so the index can sort on them.
func auctionToHash(a domauc.Auction) map[string]string {
	return map[string]string{
		fieldID:           a.ID(),
		fieldTitle:        a.Title(),
		fieldDescription:  a.Description(),
		fieldStartPrice:   strconv.FormatFloat(a.StartPrice(), 'f', -1, 64),
		fieldReservePrice: strconv.FormatFloat(a.ReservePrice(), 'f', -1, 64),
		fieldCreatedAt:    strconv.FormatInt(a.CreatedAt().UnixMilli(), 10),
		fieldUpdatedAt:    strconv.FormatInt(a.UpdatedAt().UnixMilli(), 10),
	}
}

// auctionFromHash hydrates a domain Auction from an HGETALL or FT.SEARCH
// result map.
func auctionFromHash(m map[string]string) (domauc.Auction, error) {
	id := m[fieldID]
	if id == "" {
		return domauc.Auction{}, fmt.Errorf("missing id field")
	}

	startPrice, err := parseFloat(m, fieldStartPrice)
	if err != nil {
		return domauc.Auction{}, err
	}
	reservePrice, err := parseFloat(m, fieldReservePrice)
	if err != nil {
		return domauc.Auction{}, err
	}
	createdAt, err := parseMilli(m, fieldCreatedAt)
	if err != nil {
		return domauc.Auction{}, err
	}

	updatedAt := createdAt
	if m[fieldUpdatedAt] != "" {
		if updatedAt, err = parseMilli(m, fieldUpdatedAt); err != nil {
			return domauc.Auction{}, err
		}
	}

	return domauc.Reconstruct(
		id, m[fieldTitle], m[fieldDescription],
		startPrice, reservePrice,
		createdAt, updatedAt,
	), nil
}

func parseFloat(m map[string]string, field string) (float64, error) {
	s := m[field]
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", field, err)
	}
	return v, nil
}

func parseMilli(m map[string]string, field string) (time.Time, error) {
	s := m[field]
	if s == "" {
		return time.Time{}, fmt.Errorf("missing %s field", field)
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %w", field, err)
	}
	return time.UnixMilli(ms).UTC(), nil
}
