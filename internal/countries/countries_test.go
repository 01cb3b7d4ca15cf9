package countries

import "testing"

func TestCanonicalName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"France", "France"},
		{" France ", "France"},
		{"Russian Federation", "Russia"},
		{"United States of America", "United States"},
		{"Korea (Republic of)", "South Korea"},
		{"Viet Nam", "Vietnam"},
		{"Türkiye", "Turkey"},
		{"Czech Republic", "Czechia"},
		{"Atlantis", "Atlantis"},
	}
	for _, c := range cases {
		if got := CanonicalName(c.in); got != c.want {
			t.Errorf("CanonicalName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLocalizedName(t *testing.T) {
	if got := LocalizedName("France"); got != "Fransiya" {
		t.Errorf("France localized as %q, want Fransiya", got)
	}
	if got := LocalizedName("Uzbekistan"); got != "Oʻzbekiston" {
		t.Errorf("Uzbekistan localized as %q, want Oʻzbekiston", got)
	}
	// Unknown names must fall back to the input, never to an empty string.
	if got := LocalizedName("Atlantis"); got != "Atlantis" {
		t.Errorf("unknown name localized as %q, want fallback to input", got)
	}
}

// Every playable country must have an Uzbek display name. The runtime
// fallback keeps the UI alive if this ever regresses, but a playable flag
// showing its English name is a content bug, so drift fails here.
func TestEveryPopularCountryHasUzbekName(t *testing.T) {
	for name := range popular {
		if _, ok := uzbekNames[name]; !ok {
			t.Errorf("popular country %q has no Uzbek name", name)
		}
	}
}

// Alias targets feed IsPopular and LocalizedName lookups, so each one has to
// be a canonical spelling known to the localization table.
func TestAliasTargetsAreCanonical(t *testing.T) {
	for alias, target := range nameAliases {
		if _, ok := uzbekNames[target]; !ok {
			t.Errorf("alias %q points at %q, which has no localization row", alias, target)
		}
		if _, ok := nameAliases[target]; ok {
			t.Errorf("alias %q points at %q, which is itself an alias", alias, target)
		}
	}
}

func TestIsPopular(t *testing.T) {
	if !IsPopular("France") {
		t.Error("France should be playable")
	}
	if IsPopular("Russian Federation") {
		t.Error("raw source names must be canonicalized before the popular check")
	}
	if IsPopular("") {
		t.Error("empty name should never be playable")
	}
	if got := PopularCount(); got < 60 || got > 90 {
		t.Errorf("playable set has %d countries, expected the curated ~70", got)
	}
}
