package countries

// popular is the curated set of countries whose flags are in play. Keys are
// canonical English names as produced by CanonicalName. The game deliberately
// sticks to flags most players have a fighting chance of recognizing.
var popular = map[string]struct{}{
	// Europe
	"France":         {},
	"Germany":        {},
	"Italy":          {},
	"Spain":          {},
	"Portugal":       {},
	"United Kingdom": {},
	"Ireland":        {},
	"Netherlands":    {},
	"Belgium":        {},
	"Switzerland":    {},
	"Austria":        {},
	"Sweden":         {},
	"Norway":         {},
	"Denmark":        {},
	"Finland":        {},
	"Poland":         {},
	"Czechia":        {},
	"Slovakia":       {},
	"Hungary":        {},
	"Romania":        {},
	"Bulgaria":       {},
	"Greece":         {},
	"Croatia":        {},
	"Ukraine":        {},
	"Belarus":        {},
	"Russia":         {},

	// Turkey, the Caucasus and Central Asia
	"Turkey":       {},
	"Georgia":      {},
	"Armenia":      {},
	"Azerbaijan":   {},
	"Kazakhstan":   {},
	"Uzbekistan":   {},
	"Kyrgyzstan":   {},
	"Tajikistan":   {},
	"Turkmenistan": {},

	// South Asia
	"Afghanistan": {},
	"Pakistan":    {},
	"India":       {},
	"Bangladesh":  {},
	"Sri Lanka":   {},

	// East and Southeast Asia
	"China":       {},
	"Japan":       {},
	"South Korea": {},
	"North Korea": {},
	"Vietnam":     {},
	"Thailand":    {},
	"Malaysia":    {},
	"Singapore":   {},
	"Indonesia":   {},
	"Philippines": {},

	// Oceania
	"Australia":   {},
	"New Zealand": {},

	// Middle East
	"Iran":                 {},
	"Iraq":                 {},
	"Saudi Arabia":         {},
	"United Arab Emirates": {},
	"Qatar":                {},
	"Kuwait":               {},
	"Israel":               {},

	// Africa
	"Egypt":        {},
	"Morocco":      {},
	"Algeria":      {},
	"South Africa": {},
	"Nigeria":      {},
	"Kenya":        {},
	"Ethiopia":     {},

	// The Americas
	"United States": {},
	"Canada":        {},
	"Mexico":        {},
	"Brazil":        {},
	"Argentina":     {},
	"Chile":         {},
	"Colombia":      {},
	"Peru":          {},
	"Venezuela":     {},
}

// IsPopular reports whether a canonical country name is part of the playable
// set.
func IsPopular(name string) bool {
	_, ok := popular[name]
	return ok
}

// PopularCount returns the size of the playable set.
func PopularCount() int {
	return len(popular)
}
