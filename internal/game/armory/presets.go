package armory

import "fmt"

// Presets is a table of reusable attachment templates keyed by category.
type Presets struct {
	byCategory map[Category][]Attachment
}

// NewPresets returns an empty Presets table.
func NewPresets() *Presets {
	return &Presets{byCategory: make(map[Category][]Attachment)}
}

// Add appends a to its category's presets.
func (p *Presets) Add(a Attachment) {
	p.byCategory[a.category] = append(p.byCategory[a.category], a)
}

// List returns the presets for c in insertion order.
func (p *Presets) List(c Category) []Attachment {
	return append([]Attachment(nil), p.byCategory[c]...)
}

// Get returns the preset at index i (0-based) within c.
//
// Postcondition: returns an error iff i is out of range.
func (p *Presets) Get(c Category, i int) (Attachment, error) {
	list := p.byCategory[c]
	if i < 0 || i >= len(list) {
		return Attachment{}, fmt.Errorf("armory: Presets.Get: index %d out of range [0,%d) for %s", i, len(list), c)
	}
	return list[i], nil
}

// Categories returns the categories that have at least one preset, in
// canonical order.
func (p *Presets) Categories() []Category {
	var out []Category
	for _, c := range Categories() {
		if len(p.byCategory[c]) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of presets across all categories.
func (p *Presets) Len() int {
	n := 0
	for _, list := range p.byCategory {
		n += len(list)
	}
	return n
}

// All returns every preset, grouped by category in canonical order.
func (p *Presets) All() []Attachment {
	var out []Attachment
	for _, c := range Categories() {
		out = append(out, p.byCategory[c]...)
	}
	return out
}
