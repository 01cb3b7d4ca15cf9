package countries

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const flatFranceBody = `[
	{"name":"France","alpha2Code":"FR","flags":{"svg":"https://x/fr.svg"}},
	{"name":"Germany","alpha2Code":"DE","flags":{}}
]`

func countingServer(t *testing.T, hits *atomic.Int32, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadFallsBackPastBrokenSource(t *testing.T) {
	var brokenHits, goodHits atomic.Int32
	broken := countingServer(t, &brokenHits, http.StatusNotFound, "not here")
	good := countingServer(t, &goodHits, http.StatusOK, flatFranceBody)

	loader := NewLoader(
		NewRestV2(broken.URL, time.Second),
		NewRestV2(good.URL, time.Second),
	)
	entries, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Name != "France" || e.LocalizedName != "Fransiya" || e.ImageURL != "https://x/fr.svg" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if brokenHits.Load() != 1 || goodHits.Load() != 1 {
		t.Errorf("hits = %d/%d, want 1/1", brokenHits.Load(), goodHits.Load())
	}
}

func TestLoadStopsAtFirstUsableSource(t *testing.T) {
	var firstHits, secondHits atomic.Int32
	first := countingServer(t, &firstHits, http.StatusOK, flatFranceBody)
	second := countingServer(t, &secondHits, http.StatusOK, flatFranceBody)

	loader := NewLoader(
		NewRestV2(first.URL, time.Second),
		NewRestV2(second.URL, time.Second),
	)
	if _, err := loader.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if secondHits.Load() != 0 {
		t.Errorf("second source was contacted %d times after the first succeeded", secondHits.Load())
	}
}

func TestLoadSkipsInlineErrorDocument(t *testing.T) {
	var errHits, goodHits atomic.Int32
	// Some restcountries deployments answer 200 with an error document.
	errDoc := countingServer(t, &errHits, http.StatusOK, `{"status":404,"message":"page not found"}`)
	good := countingServer(t, &goodHits, http.StatusOK, flatFranceBody)

	loader := NewLoader(
		NewRestV2(errDoc.URL, time.Second),
		NewRestV2(good.URL, time.Second),
	)
	entries, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if goodHits.Load() != 1 {
		t.Error("fallback source not used after inline error document")
	}
}

func TestLoadFailsWhenAllSourcesFail(t *testing.T) {
	var hits atomic.Int32
	down := countingServer(t, &hits, http.StatusInternalServerError, "boom")
	// The last source answers cleanly but every record filters out, so its
	// failure is what Load reports.
	empty := countingServer(t, &hits, http.StatusOK, `[{"name":"Narnia","flags":{"svg":"https://x/na.svg"}}]`)

	loader := NewLoader(
		NewRestV2(down.URL, time.Second),
		NewRestV2(empty.URL, time.Second),
	)
	_, err := loader.Load(context.Background())
	if err == nil {
		t.Fatal("Load should fail when no source yields a playable set")
	}
	if !errors.Is(err, ErrNoUsableEntries) {
		t.Errorf("want ErrNoUsableEntries in chain, got %v", err)
	}
}

func TestLoadWithoutSources(t *testing.T) {
	if _, err := NewLoader().Load(context.Background()); !errors.Is(err, ErrNoSources) {
		t.Fatalf("want ErrNoSources, got %v", err)
	}
}

func TestCatalogCachesAcrossCalls(t *testing.T) {
	var hits atomic.Int32
	srv := countingServer(t, &hits, http.StatusOK, flatFranceBody)
	cat := NewCatalog(NewLoader(NewRestV2(srv.URL, time.Second)))

	if cat.Loaded() {
		t.Fatal("catalog should start empty")
	}
	for i := 0; i < 3; i++ {
		if _, err := cat.Entries(context.Background()); err != nil {
			t.Fatalf("Entries: %v", err)
		}
	}
	if hits.Load() != 1 {
		t.Errorf("upstream hit %d times, want 1", hits.Load())
	}
	if !cat.Loaded() {
		t.Error("catalog should report loaded after first fetch")
	}
}

func TestCatalogReloadKeepsOldSetOnFailure(t *testing.T) {
	var failing atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(flatFranceBody))
	}))
	t.Cleanup(srv.Close)

	cat := NewCatalog(NewLoader(NewRestV2(srv.URL, time.Second)))
	first, err := cat.Entries(context.Background())
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}

	failing.Store(true)
	if _, err := cat.Reload(context.Background()); err == nil {
		t.Fatal("Reload should surface the load failure")
	}
	after, err := cat.Entries(context.Background())
	if err != nil {
		t.Fatalf("Entries after failed reload: %v", err)
	}
	if len(after) != len(first) {
		t.Errorf("failed reload changed the cached set: %d -> %d", len(first), len(after))
	}
}
