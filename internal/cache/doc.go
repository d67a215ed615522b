// Package cache provides an LRU for rendered widget drawings.
//
// Drawings are a pure function of (algorithm, widget state), so the canonical
// state encoding is a stable cache key. The cache is bounded by total value
// size in bytes; hit and miss counters are lock-free.
package cache
