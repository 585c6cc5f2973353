package services

import (
	"errors"
	"sync"
	"testing"
)

func TestPartitionTickers(t *testing.T) {
	tickers := make([]string, 70)
	for i := range tickers {
		tickers[i] = "t"
	}
	batches := partitionTickers(tickers, 35)
	if len(batches) != 2 {
		t.Errorf("Expected 2 batches, got %d", len(batches))
	}
	if len(batches[0]) != 35 || len(batches[1]) != 35 {
		t.Errorf("Expected batches of 35, got %d and %d", len(batches[0]), len(batches[1]))
	}
}

func TestPartitionTickers_Remainder(t *testing.T) {
	tickers := make([]string, 37)
	batches := partitionTickers(tickers, 35)
	if len(batches) != 2 {
		t.Errorf("Expected 2 batches, got %d", len(batches))
	}
	if len(batches[1]) != 2 {
		t.Errorf("Expected remainder batch of 2, got %d", len(batches[1]))
	}
}

func TestPartitionTickers_Empty(t *testing.T) {
	if batches := partitionTickers(nil, 35); len(batches) != 0 {
		t.Errorf("Expected no batches, got %d", len(batches))
	}
}

func TestRunBatches_FailureDoesNotBlockSiblings(t *testing.T) {
	tickers := make([]string, 35)
	for i := range tickers {
		tickers[i] = string(rune('a' + i%26))
	}
	tickers[7] = "bad"

	var mu sync.Mutex
	completed := 0

	runBatches(tickers, 35, 0, func(ticker string) error {
		if ticker == "bad" {
			return errors.New("provider failure")
		}
		mu.Lock()
		completed++
		mu.Unlock()
		return nil
	})

	if completed != 34 {
		t.Errorf("Expected 34 completed items, got %d", completed)
	}
}

func TestRunBatches_AllBatchesRun(t *testing.T) {
	tickers := make([]string, 70)
	for i := range tickers {
		tickers[i] = "t"
	}

	var mu sync.Mutex
	calls := 0

	runBatches(tickers, 35, 0, func(string) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil
	})

	if calls != 70 {
		t.Errorf("Expected 70 calls across batches, got %d", calls)
	}
}
