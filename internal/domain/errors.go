package domain

import "errors"

var (
	// ErrNotFound signals that no auction has the requested id.
	ErrNotFound = errors.New("auction not found")
	// ErrMissingQuery signals a search request without a search term.
	ErrMissingQuery = errors.New("missing query parameter")
	// ErrInvalidID signals an identifier that fails the store's format rules.
	ErrInvalidID = errors.New("invalid auction identifier")
	// ErrInvalidFilter signals a malformed price bound or limit parameter.
	ErrInvalidFilter = errors.New("invalid filter parameter")
	// ErrInvalidAuction signals an auction record that fails validation.
	ErrInvalidAuction = errors.New("invalid auction")
)
