package countries

// uzbekNames maps canonical English country names to their Uzbek (Latin
// script) display names. Every name in popular must have a row here; the
// table may carry extra rows beyond the playable set.
var uzbekNames = map[string]string{
	"France":         "Fransiya",
	"Germany":        "Germaniya",
	"Italy":          "Italiya",
	"Spain":          "Ispaniya",
	"Portugal":       "Portugaliya",
	"United Kingdom": "Buyuk Britaniya",
	"Ireland":        "Irlandiya",
	"Netherlands":    "Niderlandiya",
	"Belgium":        "Belgiya",
	"Switzerland":    "Shveytsariya",
	"Austria":        "Avstriya",
	"Sweden":         "Shvetsiya",
	"Norway":         "Norvegiya",
	"Denmark":        "Daniya",
	"Finland":        "Finlyandiya",
	"Poland":         "Polsha",
	"Czechia":        "Chexiya",
	"Slovakia":       "Slovakiya",
	"Hungary":        "Vengriya",
	"Romania":        "Ruminiya",
	"Bulgaria":       "Bolgariya",
	"Greece":         "Gretsiya",
	"Croatia":        "Xorvatiya",
	"Ukraine":        "Ukraina",
	"Belarus":        "Belorussiya",
	"Russia":         "Rossiya",

	"Turkey":       "Turkiya",
	"Georgia":      "Gruziya",
	"Armenia":      "Armaniston",
	"Azerbaijan":   "Ozarbayjon",
	"Kazakhstan":   "Qozogʻiston",
	"Uzbekistan":   "Oʻzbekiston",
	"Kyrgyzstan":   "Qirgʻiziston",
	"Tajikistan":   "Tojikiston",
	"Turkmenistan": "Turkmaniston",

	"Afghanistan": "Afgʻoniston",
	"Pakistan":    "Pokiston",
	"India":       "Hindiston",
	"Bangladesh":  "Bangladesh",
	"Sri Lanka":   "Shri-Lanka",

	"China":       "Xitoy",
	"Japan":       "Yaponiya",
	"South Korea": "Janubiy Koreya",
	"North Korea": "Shimoliy Koreya",
	"Vietnam":     "Vyetnam",
	"Thailand":    "Tailand",
	"Malaysia":    "Malayziya",
	"Singapore":   "Singapur",
	"Indonesia":   "Indoneziya",
	"Philippines": "Filippin",

	"Australia":   "Avstraliya",
	"New Zealand": "Yangi Zelandiya",

	"Iran":                 "Eron",
	"Iraq":                 "Iroq",
	"Saudi Arabia":         "Saudiya Arabistoni",
	"United Arab Emirates": "Birlashgan Arab Amirliklari",
	"Qatar":                "Qatar",
	"Kuwait":               "Quvayt",
	"Israel":               "Isroil",

	"Egypt":        "Misr",
	"Morocco":      "Marokash",
	"Algeria":      "Jazoir",
	"South Africa": "Janubiy Afrika",
	"Nigeria":      "Nigeriya",
	"Kenya":        "Keniya",
	"Ethiopia":     "Efiopiya",

	"United States": "Amerika Qoʻshma Shtatlari",
	"Canada":        "Kanada",
	"Mexico":        "Meksika",
	"Brazil":        "Braziliya",
	"Argentina":     "Argentina",
	"Chile":         "Chili",
	"Colombia":      "Kolumbiya",
	"Peru":          "Peru",
	"Venezuela":     "Venesuela",

	// Not currently playable, kept for when the set grows.
	"Syria":           "Suriya",
	"Moldova":         "Moldova",
	"North Macedonia": "Shimoliy Makedoniya",
	"Bolivia":         "Boliviya",
	"Tanzania":        "Tanzaniya",
}

// LocalizedName returns the Uzbek display name for a canonical country name.
// Unknown names fall back to the canonical name itself so a missing table row
// never blanks the UI.
func LocalizedName(name string) string {
	if uz, ok := uzbekNames[name]; ok {
		return uz
	}
	return name
}
