package hashing

import (
	"sync"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// ThreadSafePositionTable wraps PositionTable with mutex protection for concurrent access.
type ThreadSafePositionTable struct {
	table *PositionTable
	mu    sync.RWMutex
}

// NewThreadSafePositionTable creates a new thread-safe position table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePositionTable(maxCapacity int) *ThreadSafePositionTable {
	return &ThreadSafePositionTable{
		table: NewPositionTable(maxCapacity),
	}
}

// CheckAndAdd atomically records the position and reports whether it
// was seen before.
func (t *ThreadSafePositionTable) CheckAndAdd(b *chess.Board) bool {
	key := GenerateZobristHash(b)
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.CheckAndAddKey(key)
}

// CheckAndAddKey atomically records an already-computed key.
func (t *ThreadSafePositionTable) CheckAndAddKey(key uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.CheckAndAddKey(key)
}

// RepeatCount returns the number of repeated positions recorded.
func (t *ThreadSafePositionTable) RepeatCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.RepeatCount()
}

// UniqueCount returns the number of distinct positions recorded.
func (t *ThreadSafePositionTable) UniqueCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.UniqueCount()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafePositionTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}

// Reset clears the table.
func (t *ThreadSafePositionTable) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Reset()
}
