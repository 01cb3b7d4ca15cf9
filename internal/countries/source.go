package countries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Source is one upstream country-data endpoint. Fetch returns the normalized
// entries the source could produce; an empty result with a nil error is
// possible and is treated as a failure by the Loader.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	Fetch(ctx context.Context) ([]Entry, error)
}

// ErrUnrecognizedShape is returned when a response body is valid JSON but not
// in a layout the parser knows. Callers can errors.Is against it to tell a
// shape mismatch from a transport failure.
var ErrUnrecognizedShape = errors.New("unrecognized response shape")

// defaultTimeout bounds a single source request when the caller does not
// configure one.
const defaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a response is read. The full restcountries
// dataset is a few hundred KB; anything past this is not country data.
const maxBodyBytes = 8 << 20

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// get performs the GET request shared by all sources and returns the raw
// body. Non-2xx statuses are reported as errors with a body excerpt.
func get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// errorBody checks for the restcountries-style inline error document
// ({"status": 404, "message": "..."}) that some deployments return with a
// 200 status.
func errorBody(body []byte) error {
	var e struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return nil
	}
	if e.Status != 0 && e.Message != "" {
		return fmt.Errorf("error document: status %d: %s", e.Status, e.Message)
	}
	return nil
}

// flagRecord is the flat country record used by restcountries v2 and the
// mirrors that replicate it.
type flagRecord struct {
	Name       string `json:"name"`
	Alpha2Code string `json:"alpha2Code"`
	Flags      struct {
		SVG string `json:"svg"`
		PNG string `json:"png"`
	} `json:"flags"`
	// Older v2 dumps carry the SVG under "flag" instead of "flags".
	Flag string `json:"flag"`
}

func (r flagRecord) imageURL() string {
	switch {
	case r.Flags.SVG != "":
		return r.Flags.SVG
	case r.Flags.PNG != "":
		return r.Flags.PNG
	default:
		return r.Flag
	}
}

// entriesFromRecords maps raw records onto playable entries: records without
// a name or an image are dropped, names are canonicalized and localized, and
// only popular countries survive.
func entriesFromRecords(records []flagRecord) []Entry {
	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		image := r.imageURL()
		if image == "" {
			continue
		}
		name := CanonicalName(r.Name)
		if name == "" || !IsPopular(name) {
			continue
		}
		entries = append(entries, Entry{
			Name:          name,
			LocalizedName: LocalizedName(name),
			ImageURL:      image,
			Code:          strings.ToUpper(r.Alpha2Code),
		})
	}
	return entries
}

// parseFlat parses a top-level JSON array of flat country records.
func parseFlat(body []byte) ([]Entry, error) {
	var records []flagRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: want array of country records", ErrUnrecognizedShape)
	}
	return entriesFromRecords(records), nil
}
