package searcher

import "time"

// SearchStats are counters for a single FindMove search. The search is
// single-threaded, so plain fields suffice.
type SearchStats struct {
	// Simulations is the number of completed iterations.
	Simulations int
	// FullPlayouts counts playouts that reached checkmate or stalemate
	// before the depth cap.
	FullPlayouts int
	Elapsed      time.Duration
}
