// Package core defines the small shared types used on the search hot path.
package core

// LocalID is a dense, internal identifier for a point within a single index.
// It is strictly 32-bit, allowing for max 4 Billion points per index.
// Used for all hot-path structures (candidate collectors, bitmaps, heaps).
type LocalID uint32

// MaxLocalID is the maximum possible value for a LocalID.
const MaxLocalID = ^LocalID(0)
