package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and upstream clients return
// these (optionally wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: record does not exist upstream or in a store
// - ErrExpired: cached entry has passed its TTL
// - ErrInvalidState: record in wrong state for requested operation
// - ErrUnavailable: upstream service or store temporarily unavailable
//
// For validation errors (bad input, malformed identifiers), use
// pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrExpired      = errors.New("expired")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
