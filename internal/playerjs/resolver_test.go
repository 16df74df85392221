package playerjs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestResolverPlayerPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/watch" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<html>"jsUrl":"/s/player/ab12cd34/player_ias.vflset/en_US/base.js"</html>`))
	}))
	defer srv.Close()

	resolver := NewResolver(srv.Client(), NewAssetCache(), ResolverConfig{BaseURL: srv.URL})

	path, err := resolver.PlayerPath(context.Background(), "jNQXAC9IVRw")
	if err != nil {
		t.Fatalf("PlayerPath() error = %v", err)
	}
	if path != "/s/player/ab12cd34/player_ias.vflset/en_US/base.js" {
		t.Fatalf("PlayerPath() = %q", path)
	}
}

func TestResolverAssetFetchedOnce(t *testing.T) {
	var fetches int32
	js := loadFixture(t, "player_fixture.js")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/s/player/") {
			atomic.AddInt32(&fetches, 1)
			_, _ = w.Write([]byte(js))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	resolver := NewResolver(srv.Client(), NewAssetCache(), ResolverConfig{BaseURL: srv.URL})

	first, err := resolver.Asset(context.Background(), "/s/player/abc/base.js")
	if err != nil {
		t.Fatalf("Asset() error = %v", err)
	}
	second, err := resolver.Asset(context.Background(), "/s/player/abc/base.js")
	if err != nil {
		t.Fatalf("Asset() second call error = %v", err)
	}
	if first != second {
		t.Fatalf("Asset() returned distinct assets for the same path")
	}
	if got := atomic.LoadInt32(&fetches); got != 1 {
		t.Fatalf("player script fetched %d times, want 1", got)
	}
}

func TestAssetCacheConverges(t *testing.T) {
	cache := NewAssetCache()
	a := NewAsset("/s/player/x/base.js", "var nothing=1;")
	b := NewAsset("/s/player/x/base.js", "var nothing=2;")

	if got := cache.Put("/s/player/x/base.js", a); got != a {
		t.Fatalf("first Put() did not return stored asset")
	}
	// A racing second initializer loses: the cell keeps the first value.
	if got := cache.Put("/s/player/x/base.js", b); got != a {
		t.Fatalf("second Put() replaced the converged asset")
	}
	got, ok := cache.Get("/s/player/x/base.js")
	if !ok || got != a {
		t.Fatalf("Get() = %v, %v; want first asset", got, ok)
	}
}
