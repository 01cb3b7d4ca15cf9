package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultV2URL  = "https://restcountries.com/v2/all?fields=name,alpha2Code,flags"
	defaultV31URL = "https://restcountries.com/v3.1/all?fields=name,cca2,flags"
)

// RestV2 fetches the restcountries v2 dataset: a flat array of records with
// a plain-string name.
type RestV2 struct {
	url  string
	http *http.Client
}

// NewRestV2 creates a v2 source. An empty url selects the public
// restcountries deployment.
func NewRestV2(url string, timeout time.Duration) *RestV2 {
	if url == "" {
		url = defaultV2URL
	}
	return &RestV2{url: url, http: newHTTPClient(timeout)}
}

func (s *RestV2) Name() string { return "restcountries-v2" }

func (s *RestV2) Fetch(ctx context.Context) ([]Entry, error) {
	body, err := get(ctx, s.http, s.url)
	if err != nil {
		return nil, err
	}
	if err := errorBody(body); err != nil {
		return nil, err
	}
	return parseFlat(body)
}

// RestV31 fetches the restcountries v3.1 dataset, where the name is an
// object with common and official spellings.
type RestV31 struct {
	url  string
	http *http.Client
}

// NewRestV31 creates a v3.1 source. An empty url selects the public
// restcountries deployment.
func NewRestV31(url string, timeout time.Duration) *RestV31 {
	if url == "" {
		url = defaultV31URL
	}
	return &RestV31{url: url, http: newHTTPClient(timeout)}
}

func (s *RestV31) Name() string { return "restcountries-v3" }

func (s *RestV31) Fetch(ctx context.Context) ([]Entry, error) {
	body, err := get(ctx, s.http, s.url)
	if err != nil {
		return nil, err
	}
	if err := errorBody(body); err != nil {
		return nil, err
	}
	return parseV31(body)
}

type v31Record struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	CCA2  string `json:"cca2"`
	Flags struct {
		SVG string `json:"svg"`
		PNG string `json:"png"`
	} `json:"flags"`
}

// parseV31 parses the v3.1 array shape by flattening each record into the
// common flat form first.
func parseV31(body []byte) ([]Entry, error) {
	var records []v31Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: want array of v3.1 country records", ErrUnrecognizedShape)
	}
	flat := make([]flagRecord, 0, len(records))
	for _, r := range records {
		name := r.Name.Common
		if name == "" {
			name = r.Name.Official
		}
		fr := flagRecord{Name: name, Alpha2Code: strings.ToUpper(r.CCA2)}
		fr.Flags.SVG = r.Flags.SVG
		fr.Flags.PNG = r.Flags.PNG
		flat = append(flat, fr)
	}
	return entriesFromRecords(flat), nil
}
