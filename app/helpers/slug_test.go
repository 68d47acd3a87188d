package helpers

import (
	"fmt"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hôtel Carlton":              "hotel-carlton",
		"Le Jardin d'Antanimena":     "le-jardin-d'antanimena",
		"Clinique et Maternité":      "clinique-et-maternite",
		"BAOBAB MALL":                "baobab-mall",
		"Technologie & Informatique": "technologie-&-informatique",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestListingSlugTimestampSuffix(t *testing.T) {
	now := time.Now()
	want := fmt.Sprintf("hotel-carlton-%d", now.UnixMilli())
	if got := ListingSlug("Hôtel Carlton", now); got != want {
		t.Errorf("ListingSlug = %q, want %q", got, want)
	}
}

func TestListingSlugUniqueForDuplicateTitles(t *testing.T) {
	a := ListingSlug("Hôtel Carlton", time.UnixMilli(1700000000000))
	b := ListingSlug("Hôtel Carlton", time.UnixMilli(1700000000001))
	if a == b {
		t.Fatalf("expected distinct slugs for distinct timestamps, both %q", a)
	}
}
