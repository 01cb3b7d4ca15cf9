package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultMirrorURL   = "https://www.apicountries.com/countries"
	defaultSnapshotURL = "https://raw.githubusercontent.com/Yuter777/Which-flag-game/main/data/countries-snapshot.json"
)

// Mirror fetches apicountries.com, a community mirror that replicates the
// restcountries v2 record layout.
type Mirror struct {
	url  string
	http *http.Client
}

// NewMirror creates the mirror source. An empty url selects apicountries.com.
func NewMirror(url string, timeout time.Duration) *Mirror {
	if url == "" {
		url = defaultMirrorURL
	}
	return &Mirror{url: url, http: newHTTPClient(timeout)}
}

func (s *Mirror) Name() string { return "apicountries" }

func (s *Mirror) Fetch(ctx context.Context) ([]Entry, error) {
	body, err := get(ctx, s.http, s.url)
	if err != nil {
		return nil, err
	}
	if err := errorBody(body); err != nil {
		return nil, err
	}
	return parseFlat(body)
}

// Snapshot fetches a static last-resort dump of the v2 dataset. Snapshots
// come in two layouts: a Next.js page-data export nesting the records under
// pageProps.countries, and a plain wrapper nesting them under data.
type Snapshot struct {
	url  string
	http *http.Client
}

// NewSnapshot creates the snapshot source. An empty url selects the dump
// checked into the project repository.
func NewSnapshot(url string, timeout time.Duration) *Snapshot {
	if url == "" {
		url = defaultSnapshotURL
	}
	return &Snapshot{url: url, http: newHTTPClient(timeout)}
}

func (s *Snapshot) Name() string { return "snapshot" }

func (s *Snapshot) Fetch(ctx context.Context) ([]Entry, error) {
	body, err := get(ctx, s.http, s.url)
	if err != nil {
		return nil, err
	}
	if err := errorBody(body); err != nil {
		return nil, err
	}
	return parseSnapshot(body)
}

// parseSnapshot parses the wrapped snapshot layouts. A body that is neither
// wrapper is rejected rather than guessed at.
func parseSnapshot(body []byte) ([]Entry, error) {
	var doc struct {
		PageProps struct {
			Countries []flagRecord `json:"countries"`
		} `json:"pageProps"`
		Data []flagRecord `json:"data"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: want snapshot wrapper object", ErrUnrecognizedShape)
	}
	records := doc.PageProps.Countries
	if records == nil {
		records = doc.Data
	}
	if records == nil {
		return nil, fmt.Errorf("%w: no pageProps.countries or data field", ErrUnrecognizedShape)
	}
	return entriesFromRecords(records), nil
}
