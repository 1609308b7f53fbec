package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

func TestThreadSafePositionTable(t *testing.T) {
	table := NewThreadSafePositionTable(0)
	board := chess.NewBoard()

	if table.CheckAndAdd(board) {
		t.Error("first position was marked as repeated")
	}
	if !table.CheckAndAdd(board) {
		t.Error("repeated position was not detected")
	}
	if table.UniqueCount() != 1 {
		t.Errorf("Expected 1 unique position, got %d", table.UniqueCount())
	}

	table.Reset()
	if table.UniqueCount() != 0 {
		t.Error("Reset should clear the table")
	}
}

func TestThreadSafePositionTableConcurrent(t *testing.T) {
	table := NewThreadSafePositionTable(0)

	const goroutines = 8
	const keysPerGoroutine = 100

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < keysPerGoroutine; k++ {
				table.CheckAndAddKey(uint64(k))
			}
		}()
	}
	wg.Wait()

	if table.UniqueCount() != keysPerGoroutine {
		t.Errorf("Expected %d unique keys, got %d", keysPerGoroutine, table.UniqueCount())
	}
	want := (goroutines - 1) * keysPerGoroutine
	if table.RepeatCount() != want {
		t.Errorf("Expected %d repeats, got %d", want, table.RepeatCount())
	}
}
