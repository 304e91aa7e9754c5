package game

import "sync/atomic"

var cloneCounter atomic.Uint64

// cloneSeed hands out distinct seeds for cloned decks. Clones must not touch
// the parent's generator (parallel branches copy from the same parent), so
// the sequence comes from a process-wide counter instead.
func cloneSeed() int64 {
	return int64(cloneCounter.Add(1) * 0x9e3779b97f4a7c15)
}
