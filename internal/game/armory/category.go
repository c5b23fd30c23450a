// Package armory models firearms, their attachments, the attachment
// compatibility rules, and the kill statistics derived from a weapon's stats.
package armory

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCategory is returned when a category tag is not one of the twelve
// known mount points.
var ErrInvalidCategory = errors.New("invalid attachment category")

// Category identifies an attachment mount point on a weapon.
type Category int

const (
	CategoryTopRail Category = iota
	CategoryLeftRail
	CategoryRightRail
	CategoryBarrel
	CategoryMuzzle
	CategoryForegrip
	CategoryMagazine
	CategoryMagWell
	CategoryCantedSight
	CategoryStock
	CategoryRearGrip
	CategoryGripMount

	categoryCount = iota
)

// Categories returns every Category in canonical order.
//
// Postcondition: len(result) == 12; result[i] == Category(i).
func Categories() []Category {
	out := make([]Category, categoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c >= 0 && c < categoryCount
}

// String returns the canonical persisted tag for c.
func (c Category) String() string {
	switch c {
	case CategoryTopRail:
		return "TOP_RAIL"
	case CategoryLeftRail:
		return "LEFT_RAIL"
	case CategoryRightRail:
		return "RIGHT_RAIL"
	case CategoryBarrel:
		return "BARREL"
	case CategoryMuzzle:
		return "MUZZLE"
	case CategoryForegrip:
		return "FOREGRIP"
	case CategoryMagazine:
		return "MAGAZINE"
	case CategoryMagWell:
		return "MAG_WELL"
	case CategoryCantedSight:
		return "CANTED_SIGHT"
	case CategoryStock:
		return "STOCK"
	case CategoryRearGrip:
		return "REAR_GRIP"
	case CategoryGripMount:
		return "GRIP_MOUNT"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Label returns the human-readable name of c.
func (c Category) Label() string {
	switch c {
	case CategoryTopRail:
		return "Top Rail"
	case CategoryLeftRail:
		return "Left Rail"
	case CategoryRightRail:
		return "Right Rail"
	case CategoryBarrel:
		return "Barrel"
	case CategoryMuzzle:
		return "Muzzle"
	case CategoryForegrip:
		return "Foregrip"
	case CategoryMagazine:
		return "Magazine"
	case CategoryMagWell:
		return "Mag Well"
	case CategoryCantedSight:
		return "Canted Sight"
	case CategoryStock:
		return "Stock"
	case CategoryRearGrip:
		return "Rear Grip"
	case CategoryGripMount:
		return "Grip Mount"
	}
	return c.String()
}

// legacyCategoryLabels maps the labels found in legacy data files
// to their categories.
var legacyCategoryLabels = map[string]Category{
	"上导轨":         CategoryTopRail,
	"左导轨":         CategoryLeftRail,
	"右导轨":         CategoryRightRail,
	"枪管":          CategoryBarrel,
	"枪口":          CategoryMuzzle,
	"前握把":         CategoryForegrip,
	"弹匣":          CategoryMagazine,
	"弹匣座":         CategoryMagWell,
	"侧瞄具":         CategoryCantedSight,
	"枪托":          CategoryStock,
	"后握把":         CategoryRearGrip,
	"握把座":         CategoryGripMount,
	"PISTOL_GRIP": CategoryRearGrip,
}

// ParseCategory resolves a persisted or user-supplied tag to a Category.
// Canonical tags match case-insensitively, with spaces and hyphens treated as
// underscores; legacy labels match exactly.
//
// Postcondition: err wraps ErrInvalidCategory iff s names no category.
func ParseCategory(s string) (Category, error) {
	trimmed := strings.TrimSpace(s)
	if c, ok := legacyCategoryLabels[trimmed]; ok {
		return c, nil
	}
	norm := strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_").Replace(trimmed))
	if c, ok := legacyCategoryLabels[norm]; ok {
		return c, nil
	}
	for _, c := range Categories() {
		if c.String() == norm {
			return c, nil
		}
	}
	return 0, fmt.Errorf("armory: ParseCategory: %w: %q", ErrInvalidCategory, s)
}

// MarshalText encodes c as its canonical tag.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("armory: Category.MarshalText: %w: %d", ErrInvalidCategory, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a canonical tag or legacy label.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes c as its canonical tag.
func (c Category) MarshalYAML() (interface{}, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("armory: Category.MarshalYAML: %w: %d", ErrInvalidCategory, int(c))
	}
	return c.String(), nil
}

// UnmarshalYAML decodes a canonical tag or legacy label.
func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}
