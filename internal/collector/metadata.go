package collector

import (
	"encoding/json"
	"slices"

	"github.com/simonhull/commontags/internal/schema"
	"github.com/simonhull/commontags/internal/types"
)

// Metadata is the finalized canonical metadata of one file. It is
// read-only; accessors return copies of list values.
type Metadata struct {
	singles  map[schema.SingletonKey]any
	lists    map[schema.ListKey][]any
	order    []schema.Key
	warnings []types.Warning
}

func (m *Metadata) set(k schema.SingletonKey, v any) {
	if _, ok := m.singles[k]; !ok {
		m.order = append(m.order, k)
	}
	m.singles[k] = v
}

// Singleton returns the value of a singleton key.
func (m *Metadata) Singleton(k schema.SingletonKey) (any, bool) {
	v, ok := m.singles[k]
	return v, ok
}

// List returns the values of a list key in ingestion order.
func (m *Metadata) List(k schema.ListKey) []any {
	return slices.Clone(m.lists[k])
}

// Get returns the value stored under a canonical key name: the value for a
// singleton, a []any for a list.
func (m *Metadata) Get(name string) (any, bool) {
	k, ok := schema.Lookup(name)
	if !ok {
		return nil, false
	}
	switch k := k.(type) {
	case schema.SingletonKey:
		return m.Singleton(k)
	case schema.ListKey:
		vs := m.List(k)
		return vs, len(vs) > 0
	}
	return nil, false
}

// Text returns a text singleton, or "" if absent.
func (m *Metadata) Text(k schema.SingletonKey) string {
	s, _ := m.singles[k].(string)
	return s
}

// Int returns an integer singleton.
func (m *Metadata) Int(k schema.SingletonKey) (int, bool) {
	n, ok := m.singles[k].(int)
	return n, ok
}

// Float returns a numeric singleton.
func (m *Metadata) Float(k schema.SingletonKey) (float64, bool) {
	f, ok := m.singles[k].(float64)
	return f, ok
}

// Bool returns a boolean singleton.
func (m *Metadata) Bool(k schema.SingletonKey) (bool, bool) {
	b, ok := m.singles[k].(bool)
	return b, ok
}

// PartOfSet returns a position singleton such as track or disk. Missing
// parts are nil.
func (m *Metadata) PartOfSet(k schema.SingletonKey) types.PartOfSet {
	p, _ := m.singles[k].(types.PartOfSet)
	return p
}

// Strings returns the text values of a list key.
func (m *Metadata) Strings(k schema.ListKey) []string {
	var out []string
	for _, v := range m.lists[k] {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Pictures returns every embedded picture in ingestion order.
func (m *Metadata) Pictures() []types.Picture {
	var out []types.Picture
	for _, v := range m.lists[schema.Picture] {
		if p, ok := v.(types.Picture); ok {
			out = append(out, p)
		}
	}
	return out
}

// Ratings returns every rating in ingestion order.
func (m *Metadata) Ratings() []types.Rating {
	var out []types.Rating
	for _, v := range m.lists[schema.Rating] {
		if r, ok := v.(types.Rating); ok {
			out = append(out, r)
		}
	}
	return out
}

// Artist returns the artist, explicit or joined from the artists list.
func (m *Metadata) Artist() string {
	return m.Text(schema.Artist)
}

// Stars converts the first rating that carries a value to 0-5 stars.
func (m *Metadata) Stars() int {
	for _, r := range m.Ratings() {
		if r.Rating != nil {
			return RatingToStars(r.Rating)
		}
	}
	return 0
}

// Cover returns the preferred picture, or nil.
func (m *Metadata) Cover() *types.Picture {
	return SelectCover(m.Pictures())
}

// Keys returns the keys present, in the order they were first seen.
func (m *Metadata) Keys() []schema.Key {
	return slices.Clone(m.order)
}

// Warnings returns the diagnostics recorded while collecting.
func (m *Metadata) Warnings() []types.Warning {
	return slices.Clone(m.warnings)
}

// Map renders the metadata keyed by canonical name. Lists become slices.
func (m *Metadata) Map() map[string]any {
	out := make(map[string]any, len(m.order))
	for _, k := range m.order {
		switch k := k.(type) {
		case schema.SingletonKey:
			out[k.Name()] = m.singles[k]
		case schema.ListKey:
			out[k.Name()] = m.List(k)
		}
	}
	return out
}

// MarshalJSON encodes the metadata as an object keyed by canonical name.
func (m *Metadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Map())
}

// MarshalYAML encodes the metadata as a mapping keyed by canonical name.
func (m *Metadata) MarshalYAML() (any, error) {
	return m.Map(), nil
}
