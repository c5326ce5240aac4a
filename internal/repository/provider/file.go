package provider

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/neighborly/internal/domain/platform"
	domprov "github.com/kailas-cloud/neighborly/internal/domain/provider"
)

// File is the layout of a catalog seed file.
type File struct {
	Platforms []platform.Info `yaml:"platforms"`
	Providers []Record        `yaml:"providers"`
}

// Catalog is a validated seed file.
type Catalog struct {
	Providers []domprov.Provider
	Platforms []platform.Info
}

// LoadFile reads and validates a YAML catalog seed file.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from trusted config
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Decode parses a YAML catalog. Unknown keys, invalid records and duplicate
// ids are rejected; records keep their file order.
func Decode(r io.Reader) (Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, fmt.Errorf("parse yaml: %w", err)
	}

	providers, err := build(f.Providers)
	if err != nil {
		return Catalog{}, err
	}
	return Catalog{Providers: providers, Platforms: f.Platforms}, nil
}

func build(records []Record) ([]domprov.Provider, error) {
	out := make([]domprov.Provider, 0, len(records))
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		p, err := domprov.New(rec.Params())
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if prev, dup := seen[p.ID()]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %q (first at record %d)", i, p.ID(), prev)
		}
		seen[p.ID()] = i
		out = append(out, p)
	}
	return out, nil
}
