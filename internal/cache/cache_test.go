// file: internal/cache/cache_test.go
// version: 2.1.0
// guid: b2c3d4e5-f6a7-8b9c-0d1e-2f3a4b5c6d7e

package cache

import (
	"strings"
	"sync"
	"testing"
)

func TestGetOrSetFirstSeenWins(t *testing.T) {
	c := New[string](nil)
	v, loaded := c.GetOrSet("k", "first")
	if loaded || v != "first" {
		t.Fatalf("expected first store, got %q loaded=%v", v, loaded)
	}
	v, loaded = c.GetOrSet("k", "second")
	if !loaded || v != "first" {
		t.Fatalf("expected first value to win, got %q loaded=%v", v, loaded)
	}
}

func TestKeyNormalization(t *testing.T) {
	c := New[int](strings.ToLower)
	c.GetOrSet("Key", 1)
	v, ok := c.Get("KEY")
	if !ok || v != 1 {
		t.Fatalf("expected normalized lookup to hit, got %d ok=%v", v, ok)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}
}

func TestGetMiss(t *testing.T) {
	c := New[string](nil)
	if _, ok := c.Get("absent"); ok {
		t.Fatal("expected a miss on an empty store")
	}
	if c.Len() != 0 {
		t.Fatal("Get must not store anything")
	}
}

func TestConcurrentGetOrSet(t *testing.T) {
	c := New[int](nil)
	var wg sync.WaitGroup
	results := make([]int, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.GetOrSet("shared", i)
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		if r != results[0] {
			t.Fatalf("expected a single winner, got %v", results)
		}
	}
}
