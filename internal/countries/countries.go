// Package countries loads the playable flag set from public country-data
// APIs. A fixed sequence of sources is tried in order until one yields a
// usable set; records are normalized into Entry values, localized into
// Uzbek, and filtered down to a curated list of well-known countries.
package countries

import "strings"

// Entry is one playable flag.
type Entry struct {
	// Name is the canonical English country name and the join key for the
	// popular-country filter.
	Name string `json:"name"`
	// LocalizedName is the Uzbek display name, falling back to Name when no
	// translation is known.
	LocalizedName string `json:"localizedName"`
	// ImageURL points at the flag image. Always non-empty.
	ImageURL string `json:"imageUrl"`
	// Code is the ISO 3166-1 alpha-2 code when the source provides one.
	Code string `json:"code,omitempty"`
}

// nameAliases maps official or legacy spellings used by some sources onto
// the canonical names used by Popular and the Uzbek table. restcountries v2
// reports ISO-style official names ("Russian Federation"), v3.1 reports
// common names ("Russia"); the common name is canonical here.
var nameAliases = map[string]string{
	"United States of America":                             "United States",
	"United Kingdom of Great Britain and Northern Ireland": "United Kingdom",
	"Russian Federation":      "Russia",
	"Korea (Republic of)":     "South Korea",
	"Republic of Korea":       "South Korea",
	"Korea (Democratic People's Republic of)": "North Korea",
	"Viet Nam":                            "Vietnam",
	"Iran (Islamic Republic of)":          "Iran",
	"Syrian Arab Republic":                "Syria",
	"Czech Republic":                      "Czechia",
	"Venezuela (Bolivarian Republic of)":  "Venezuela",
	"Bolivia (Plurinational State of)":    "Bolivia",
	"Tanzania, United Republic of":        "Tanzania",
	"Moldova (Republic of)":               "Moldova",
	"Türkiye":                             "Turkey",
	"United Republic of Tanzania":         "Tanzania",
	"Macedonia (the former Yugoslav Republic of)": "North Macedonia",
}

// CanonicalName resolves a source-provided country name to its canonical
// spelling.
func CanonicalName(name string) string {
	name = strings.TrimSpace(name)
	if canonical, ok := nameAliases[name]; ok {
		return canonical
	}
	return name
}
