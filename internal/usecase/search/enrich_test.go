package search

import (
	"testing"

	"github.com/kailas-cloud/neighborly/internal/domain/geo"
	"github.com/kailas-cloud/neighborly/internal/domain/provider"
)

func TestEnrich(t *testing.T) {
	ref := geo.Point{Lat: 40.7128, Lng: -74.0060}
	jc := geo.Point{Lat: 40.7178, Lng: -74.0431}

	withCoords := mustProvider(t, provider.Params{
		ID: "a", Platform: "rover", Rating: 4, Price: 10,
		Location: "Somewhere", Coordinates: &jc,
	})
	located := mustProvider(t, provider.Params{
		ID: "b", Platform: "rover", Rating: 4, Price: 10, Location: "Jersey City, NJ",
	})
	unknown := mustProvider(t, provider.Params{
		ID: "c", Platform: "rover", Rating: 4, Price: 10, Location: "Atlantis",
	})

	locate := func(location string) (geo.Point, bool) {
		if location == "Jersey City, NJ" {
			return jc, true
		}
		return geo.Point{}, false
	}

	got := Enrich([]provider.Provider{withCoords, located, unknown}, ref, locate)
	assertIDs(t, got, "a", "b", "c")

	want := geo.Between(ref, jc)
	for _, p := range got[:2] {
		if p.Distance() == nil {
			t.Fatalf("provider %s: expected distance", p.ID())
		}
		if *p.Distance() != want {
			t.Errorf("provider %s: distance %v, want %v", p.ID(), *p.Distance(), want)
		}
		if p.Coordinates() == nil || *p.Coordinates() != jc {
			t.Errorf("provider %s: coordinates %v, want %v", p.ID(), p.Coordinates(), jc)
		}
	}
	if got[2].Distance() != nil {
		t.Error("unplaced provider must not get a distance")
	}

	if located.Distance() != nil || located.Coordinates() != nil {
		t.Error("input provider was modified")
	}
}

func TestEnrich_NilLocator(t *testing.T) {
	p := mustProvider(t, provider.Params{ID: "a", Platform: "rover", Rating: 4, Price: 10, Location: "X"})
	got := Enrich([]provider.Provider{p}, geo.Point{}, nil)
	if got[0].Distance() != nil {
		t.Error("expected no distance without coordinates or locator")
	}
}

func TestEnrich_SamePointIsZero(t *testing.T) {
	at := geo.Point{Lat: 51.5, Lng: -0.12}
	p := mustProvider(t, provider.Params{ID: "a", Platform: "rover", Rating: 4, Price: 10, Coordinates: &at})
	got := Enrich([]provider.Provider{p}, at, nil)
	if d := got[0].Distance(); d == nil || *d != 0 {
		t.Errorf("expected distance 0, got %v", d)
	}
}
