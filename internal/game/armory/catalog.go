package armory

import (
	"errors"
	"sort"
)

// Catalog is the two-tier source of candidate attachments: entries common to
// every weapon, and entries specific to one weapon name.
type Catalog struct {
	common   map[Category][]Attachment
	specific map[string]map[Category][]Attachment
}

// CatalogEntry is one catalog record with its scope.
type CatalogEntry struct {
	// Weapon is the weapon the entry is specific to; "" for common entries.
	Weapon     string
	Attachment Attachment
}

// NewCatalog returns an empty Catalog.
//
// Postcondition: all internal maps are initialised.
func NewCatalog() *Catalog {
	return &Catalog{
		common:   make(map[Category][]Attachment),
		specific: make(map[string]map[Category][]Attachment),
	}
}

// Lookup returns the common entries for c followed by the entries specific
// to weaponName, each in stored order. Unknown weapons or categories yield an
// empty slice.
//
// Postcondition: the result is a fresh slice; the catalog is unchanged.
func (c *Catalog) Lookup(weaponName string, cat Category) []Attachment {
	out := make([]Attachment, 0, len(c.common[cat])+len(c.specific[weaponName][cat]))
	out = append(out, c.common[cat]...)
	out = append(out, c.specific[weaponName][cat]...)
	return out
}

// AddCommon appends a to the common tier.
func (c *Catalog) AddCommon(a Attachment) {
	c.common[a.category] = append(c.common[a.category], a)
}

// AddSpecific appends a to the tier for weaponName.
//
// Precondition: weaponName must be non-empty.
func (c *Catalog) AddSpecific(weaponName string, a Attachment) error {
	if weaponName == "" {
		return errors.New("armory: Catalog.AddSpecific: weapon name must not be empty")
	}
	byCat, ok := c.specific[weaponName]
	if !ok {
		byCat = make(map[Category][]Attachment)
		c.specific[weaponName] = byCat
	}
	byCat[a.category] = append(byCat[a.category], a)
	return nil
}

// Add appends a to the common tier when weaponName is empty and to the
// weapon-specific tier otherwise.
func (c *Catalog) Add(weaponName string, a Attachment) error {
	if weaponName == "" {
		c.AddCommon(a)
		return nil
	}
	return c.AddSpecific(weaponName, a)
}

// Remove deletes every entry in category cat named name, from both tiers and
// every weapon, and returns how many were removed.
func (c *Catalog) Remove(cat Category, name string) int {
	removed := 0
	c.common[cat], removed = dropNamed(c.common[cat], name)
	for weapon, byCat := range c.specific {
		var n int
		byCat[cat], n = dropNamed(byCat[cat], name)
		removed += n
		if len(byCat[cat]) == 0 {
			delete(byCat, cat)
		}
		if len(byCat) == 0 {
			delete(c.specific, weapon)
		}
	}
	if len(c.common[cat]) == 0 {
		delete(c.common, cat)
	}
	return removed
}

func dropNamed(list []Attachment, name string) ([]Attachment, int) {
	var kept []Attachment
	for _, a := range list {
		if a.name != name {
			kept = append(kept, a)
		}
	}
	return kept, len(list) - len(kept)
}

// Entries lists every entry: common entries first in canonical category
// order, then each weapon's entries with weapons sorted by name.
func (c *Catalog) Entries() []CatalogEntry {
	var out []CatalogEntry
	for _, cat := range Categories() {
		for _, a := range c.common[cat] {
			out = append(out, CatalogEntry{Attachment: a})
		}
	}
	for _, weapon := range c.Weapons() {
		for _, cat := range Categories() {
			for _, a := range c.specific[weapon][cat] {
				out = append(out, CatalogEntry{Weapon: weapon, Attachment: a})
			}
		}
	}
	return out
}

// Weapons returns the names with weapon-specific entries, sorted.
func (c *Catalog) Weapons() []string {
	names := make([]string, 0, len(c.specific))
	for name := range c.specific {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the total number of entries across both tiers.
func (c *Catalog) Len() int {
	n := 0
	for _, list := range c.common {
		n += len(list)
	}
	for _, byCat := range c.specific {
		for _, list := range byCat {
			n += len(list)
		}
	}
	return n
}
