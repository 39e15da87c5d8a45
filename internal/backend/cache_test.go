package backend

import (
	"testing"
	"time"
)

func TestResponseCacheExpiry(t *testing.T) {
	current := time.Date(2025, 9, 7, 13, 0, 0, 0, time.UTC)
	cache := newResponseCache(60*time.Second, func() time.Time { return current })

	cache.put("http://127.0.0.1:8000/api/picks", []byte(`{"value":"a"}`))

	tests := []struct {
		name    string
		elapsed time.Duration
		wantHit bool
	}{
		{name: "immediately live", elapsed: 0, wantHit: true},
		{name: "just inside TTL", elapsed: 59*time.Second + 999*time.Millisecond, wantHit: true},
		{name: "at TTL", elapsed: 60 * time.Second, wantHit: false},
		{name: "past TTL", elapsed: 61 * time.Second, wantHit: false},
	}

	base := current
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current = base.Add(tt.elapsed)
			_, hit := cache.get("http://127.0.0.1:8000/api/picks")
			if hit != tt.wantHit {
				t.Errorf("hit = %v, want %v after %v", hit, tt.wantHit, tt.elapsed)
			}
		})
	}
}

func TestResponseCacheExactURLKeying(t *testing.T) {
	current := time.Date(2025, 9, 7, 13, 0, 0, 0, time.UTC)
	cache := newResponseCache(60*time.Second, func() time.Time { return current })

	cache.put("http://127.0.0.1:8000/api/picks?season=2025", []byte(`{"value":"a"}`))

	if _, hit := cache.get("http://127.0.0.1:8000/api/picks"); hit {
		t.Error("cache hit for different query string, want miss")
	}
	if _, hit := cache.get("http://127.0.0.1:8000/api/picks?season=2025"); !hit {
		t.Error("cache miss for exact URL, want hit")
	}
}

func TestResponseCacheOverwriteAfterExpiry(t *testing.T) {
	current := time.Date(2025, 9, 7, 13, 0, 0, 0, time.UTC)
	cache := newResponseCache(60*time.Second, func() time.Time { return current })

	url := "http://127.0.0.1:8000/api/analytics/roi-trends"
	cache.put(url, []byte(`old`))

	current = current.Add(2 * time.Minute)
	cache.put(url, []byte(`new`))

	payload, hit := cache.get(url)
	if !hit {
		t.Fatal("cache miss after overwrite, want hit")
	}
	if string(payload) != "new" {
		t.Errorf("payload = %q, want %q", payload, "new")
	}
}

func TestResponseCacheClearIsIdempotent(t *testing.T) {
	current := time.Date(2025, 9, 7, 13, 0, 0, 0, time.UTC)
	cache := newResponseCache(60*time.Second, func() time.Time { return current })

	cache.put("http://127.0.0.1:8000/api/picks", []byte(`a`))

	cache.clear()
	cache.clear()

	if _, hit := cache.get("http://127.0.0.1:8000/api/picks"); hit {
		t.Error("cache hit after clear, want miss")
	}
}
