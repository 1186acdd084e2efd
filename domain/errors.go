package domain

import "errors"

var (
	// ErrFetch indicates a transport or decoding failure talking to the API.
	ErrFetch = errors.New("fetch failed")

	// ErrNotFound indicates the API returned no item for a requested ID.
	ErrNotFound = errors.New("item not found")

	// ErrUnknownKind indicates an unrecognised story list name.
	ErrUnknownKind = errors.New("unknown story kind")
)
