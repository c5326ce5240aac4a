package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/neighborly/internal/domain"
)

func TestMemory_SnapshotKeepsOrder(t *testing.T) {
	m, err := NewMemory(sampleProviders(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := m.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"9", "10", "2"}
	for i, id := range ids(got) {
		if id != want[i] {
			t.Errorf("position %d: got %s, want %s", i, id, want[i])
		}
	}
	if m.Len() != 3 {
		t.Errorf("len: got %d", m.Len())
	}
	if err := m.Ping(context.Background()); err != nil {
		t.Errorf("ping: %v", err)
	}
}

func TestMemory_InputSliceIsCopied(t *testing.T) {
	src := sampleProviders(t)
	m, err := NewMemory(src)
	if err != nil {
		t.Fatal(err)
	}
	src[0] = src[1]
	got, _ := m.Snapshot(context.Background())
	if got[0].ID() != "9" {
		t.Errorf("snapshot changed with caller slice: %s", got[0].ID())
	}
}

func TestMemory_Get(t *testing.T) {
	m, err := NewMemory(sampleProviders(t))
	if err != nil {
		t.Fatal(err)
	}
	p, err := m.Get(context.Background(), "10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "Mike the Fixer" {
		t.Errorf("name: got %q", p.Name())
	}
	if _, err := m.Get(context.Background(), "404"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNewMemory_Duplicate(t *testing.T) {
	ps := sampleProviders(t)
	_, err := NewMemory(append(ps, ps[0]))
	if !errors.Is(err, domain.ErrInvalidProvider) {
		t.Errorf("expected ErrInvalidProvider, got %v", err)
	}
}
