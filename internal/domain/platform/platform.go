// Package platform holds display metadata of the third-party platforms
// providers are aggregated from.
package platform

import "strings"

// Info is the display metadata of a platform.
type Info struct {
	Key   string `json:"key" yaml:"key"`
	Name  string `json:"name" yaml:"name"`
	Icon  string `json:"icon" yaml:"icon"`
	Color string `json:"color" yaml:"color"`
}

// Fallback metadata for platforms missing from the registry.
const (
	DefaultIcon  = "🏢"
	DefaultColor = "#6B7280"
)

var builtin = []Info{
	{Key: "rover", Name: "Rover", Icon: "🐕", Color: "#00BD70"},
	{Key: "wag", Name: "Wag!", Icon: "🦮", Color: "#4FC3A1"},
	{Key: "taskrabbit", Name: "TaskRabbit", Icon: "🔨", Color: "#1FB264"},
	{Key: "thumbtack", Name: "Thumbtack", Icon: "📌", Color: "#009FD9"},
	{Key: "care", Name: "Care.com", Icon: "❤️", Color: "#FF6B35"},
	{Key: "wyzant", Name: "Wyzant", Icon: "📚", Color: "#3B5998"},
	{Key: "angi", Name: "Angi", Icon: "🏠", Color: "#FF6153"},
}

// Registry resolves platform keys to display metadata.
// It is immutable after construction and safe for concurrent use.
type Registry struct {
	order []string
	byKey map[string]Info
}

// NewRegistry creates a registry from the built-in platforms plus extra entries.
// Extra entries override built-ins with the same key.
func NewRegistry(extra ...Info) *Registry {
	r := &Registry{byKey: make(map[string]Info, len(builtin)+len(extra))}
	for _, list := range [][]Info{builtin, extra} {
		for _, info := range list {
			key := normalizeKey(info.Key)
			if key == "" {
				continue
			}
			info.Key = key
			if _, seen := r.byKey[key]; !seen {
				r.order = append(r.order, key)
			}
			r.byKey[key] = info
		}
	}
	return r
}

// Lookup returns metadata for key. Unknown keys get a generic entry named after the key.
func (r *Registry) Lookup(key string) Info {
	k := normalizeKey(key)
	if info, ok := r.byKey[k]; ok {
		return info
	}
	return Info{Key: key, Name: key, Icon: DefaultIcon, Color: DefaultColor}
}

// Known reports whether key is registered.
func (r *Registry) Known(key string) bool {
	_, ok := r.byKey[normalizeKey(key)]
	return ok
}

// All returns registered platforms in registration order.
func (r *Registry) All() []Info {
	out := make([]Info, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.byKey[k])
	}
	return out
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
