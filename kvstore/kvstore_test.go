package kvstore_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rise-and-shine/fileserve/kvstore"
)

func TestSetGet(t *testing.T) {
	s := kvstore.New[string]()
	defer s.Close()

	s.Set("k", "v", time.Minute)

	got, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestExpiration(t *testing.T) {
	s := kvstore.New[int](kvstore.WithSweepInterval(time.Hour))
	defer s.Close()

	s.Set("short", 1, 10*time.Millisecond)
	s.Set("long", 2, time.Minute)

	time.Sleep(30 * time.Millisecond)

	_, ok := s.Get("short")
	assert.False(t, ok, "expired entries must be invisible even before the sweeper runs")

	got, ok := s.Get("long")
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestNegativeTTLNeverExpires(t *testing.T) {
	s := kvstore.New[string](kvstore.WithDefaultTTL(time.Minute))
	defer s.Close()

	s.Set("pinned", "v", -1)

	time.Sleep(10 * time.Millisecond)

	_, ok := s.Get("pinned")
	assert.True(t, ok)
}

func TestUpdateIsAtomic(t *testing.T) {
	s := kvstore.New[int64]()
	defer s.Close()

	const (
		workers    = 8
		increments = 100
	)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range increments {
				s.Update("counter", time.Minute, func(n int64) int64 { return n + 1 })
			}
		}()
	}
	wg.Wait()

	got, ok := s.Get("counter")
	assert.True(t, ok)
	assert.Equal(t, int64(workers*increments), got)
}

func TestUpdateResetsExpiredEntry(t *testing.T) {
	s := kvstore.New[int64]()
	defer s.Close()

	s.Set("counter", 99, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	got := s.Update("counter", time.Minute, func(n int64) int64 { return n + 1 })
	assert.Equal(t, int64(1), got, "an expired counter must restart from zero")
}

func TestDeleteAndLen(t *testing.T) {
	s := kvstore.New[string]()
	defer s.Close()

	s.Set("a", "1", time.Minute)
	s.Set("b", "2", time.Minute)
	assert.Equal(t, 2, s.Len())

	s.Delete("a")
	assert.Equal(t, 1, s.Len())

	_, ok := s.Get("a")
	assert.False(t, ok)
}
