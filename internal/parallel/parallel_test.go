package parallel

import (
	"fmt"
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}

	var counter int64
	n := 1000
	seen := make([]bool, n)

	For(n, func(i int) {
		atomic.AddInt64(&counter, 1)
		seen[i] = true
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("index %d not visited", i)
		}
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	For(5, func(i int) {
		order = append(order, i)
	}, cfg)

	if fmt.Sprint(order) != "[0 1 2 3 4]" {
		t.Errorf("Expected in-order execution, got %v", order)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestForErr_LowestIndexWins(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 4}

	err := ForErr(100, func(i int) error {
		if i == 17 || i == 90 {
			return fmt.Errorf("row %d", i)
		}
		return nil
	}, cfg)

	if err == nil || err.Error() != "row 17" {
		t.Errorf("Expected error from row 17, got %v", err)
	}
}

func TestForErr_NoError(t *testing.T) {
	if err := ForErr(10, func(int) error { return nil }, DefaultConfig()); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}
