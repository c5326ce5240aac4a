// Package geocode resolves free-text locations against a static gazetteer.
package geocode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/neighborly/internal/domain/geo"
)

// Place is a gazetteer entry. Aliases resolve to the same point.
type Place struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases,omitempty"`
	Lat     float64  `yaml:"lat"`
	Lng     float64  `yaml:"lng"`
}

type file struct {
	Places []Place `yaml:"places"`
}

type entry struct {
	name  string
	point geo.Point
}

// Gazetteer is an immutable place-name index.
type Gazetteer struct {
	exact map[string]geo.Point
	// longest names first, so "new york" wins over "york".
	bySize []entry
}

// New builds a gazetteer. Names are matched case-insensitively.
func New(places []Place) (*Gazetteer, error) {
	g := &Gazetteer{exact: make(map[string]geo.Point, len(places))}
	for _, pl := range places {
		pt, err := geo.NewPoint(pl.Lat, pl.Lng)
		if err != nil {
			return nil, fmt.Errorf("place %q: %w", pl.Name, err)
		}
		for _, n := range append([]string{pl.Name}, pl.Aliases...) {
			key := normalize(n)
			if key == "" {
				continue
			}
			if _, dup := g.exact[key]; dup {
				return nil, fmt.Errorf("place %q: duplicate name %q", pl.Name, n)
			}
			g.exact[key] = pt
			g.bySize = append(g.bySize, entry{name: key, point: pt})
		}
	}
	sort.SliceStable(g.bySize, func(i, j int) bool {
		return len(g.bySize[i].name) > len(g.bySize[j].name)
	})
	return g, nil
}

// Load reads a gazetteer from a YAML file.
func Load(path string) (*Gazetteer, error) {
	places, err := LoadPlaces(path)
	if err != nil {
		return nil, err
	}
	return New(places)
}

// LoadPlaces reads the place list of a gazetteer file without indexing it.
func LoadPlaces(path string) ([]Place, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from trusted config
	if err != nil {
		return nil, fmt.Errorf("open gazetteer: %w", err)
	}
	defer func() { _ = f.Close() }()
	return decodePlaces(f)
}

// Decode parses a gazetteer document.
func Decode(r io.Reader) (*Gazetteer, error) {
	places, err := decodePlaces(r)
	if err != nil {
		return nil, err
	}
	return New(places)
}

func decodePlaces(r io.Reader) ([]Place, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc file
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse gazetteer: %w", err)
	}
	return doc.Places, nil
}

// Locate resolves location. An exact name match wins; otherwise the longest
// known name contained in location as whole words is used.
// A miss is reported as ok=false, never as an error.
func (g *Gazetteer) Locate(ctx context.Context, location string) (geo.Point, bool, error) {
	if err := ctx.Err(); err != nil {
		return geo.Point{}, false, err
	}
	key := normalize(location)
	if key == "" {
		return geo.Point{}, false, nil
	}
	if pt, ok := g.exact[key]; ok {
		return pt, true, nil
	}
	padded := " " + key + " "
	for _, e := range g.bySize {
		if strings.Contains(padded, " "+e.name+" ") {
			return e.point, true, nil
		}
	}
	return geo.Point{}, false, nil
}

// Len returns the number of indexed names (including aliases).
func (g *Gazetteer) Len() int { return len(g.exact) }

// normalize lowercases and maps punctuation to single spaces:
// "Jersey City, NJ" -> "jersey city nj".
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := true
	for _, r := range strings.ToLower(s) {
		if isWordRune(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimSpace(b.String())
}

func isWordRune(r rune) bool {
	return r == '\'' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
