package armory

import (
	"fmt"
	"math"
	"sort"
)

// AttachmentSnapshot is the persisted form of an Attachment. Modifiers are
// numbers; fractional values from older files are rounded on load.
type AttachmentSnapshot struct {
	Name           string  `json:"name" yaml:"name"`
	AttachmentType string  `json:"attachment_type,omitempty" yaml:"attachment_type,omitempty"`
	Type           string  `json:"type,omitempty" yaml:"type,omitempty"` // legacy key for AttachmentType
	RecoilMod      float64 `json:"recoil_mod" yaml:"recoil_mod"`
	HandlingMod    float64 `json:"handling_mod" yaml:"handling_mod"`
	StabilityMod   float64 `json:"stability_mod" yaml:"stability_mod"`
	HipFireMod     float64 `json:"hip_fire_mod" yaml:"hip_fire_mod"`
	CanMountGrip   bool    `json:"can_mount_grip" yaml:"can_mount_grip,omitempty"`
	IsDrumMag      *bool   `json:"is_drum_mag,omitempty" yaml:"is_drum_mag,omitempty"` // nil = infer from name
}

// WeaponSnapshot is the persisted form of a Weapon. Missing fields decode to
// zero values.
type WeaponSnapshot struct {
	Name            string               `json:"name" yaml:"name"`
	WeaponType      string               `json:"weapon_type" yaml:"weapon_type"`
	SoldierClasses  []string             `json:"soldier_classes" yaml:"soldier_classes"`
	BaseDamage      float64              `json:"base_damage" yaml:"base_damage"`
	StomachDamage   float64              `json:"stomach_damage" yaml:"stomach_damage"`
	LimbDamage      float64              `json:"limb_damage" yaml:"limb_damage"`
	FootDamage      float64              `json:"foot_damage" yaml:"foot_damage"`
	RangeMeters     float64              `json:"range_meters" yaml:"range_meters"`
	FireRate        float64              `json:"fire_rate" yaml:"fire_rate"`
	RecoilControl   float64              `json:"recoil_control" yaml:"recoil_control"`
	HandlingSpeed   float64              `json:"handling_speed" yaml:"handling_speed"`
	ADSStability    float64              `json:"ads_stability" yaml:"ads_stability"`
	HipFireAccuracy float64              `json:"hip_fire_accuracy" yaml:"hip_fire_accuracy"`
	Attachments     []AttachmentSnapshot `json:"attachments" yaml:"attachments"`
}

// CatalogSnapshot is the persisted form of a Catalog, keyed by category tag.
type CatalogSnapshot struct {
	Common   map[string][]AttachmentSnapshot            `json:"common" yaml:"common"`
	Specific map[string]map[string][]AttachmentSnapshot `json:"specific" yaml:"specific"`
}

// PresetsSnapshot is the persisted form of Presets, keyed by category tag.
type PresetsSnapshot map[string][]AttachmentSnapshot

// Snapshot returns the persisted form of a.
func (a Attachment) Snapshot() AttachmentSnapshot {
	s := AttachmentSnapshot{
		Name:           a.name,
		AttachmentType: a.category.String(),
		RecoilMod:      float64(a.mods.Recoil),
		HandlingMod:    float64(a.mods.Handling),
		StabilityMod:   float64(a.mods.Stability),
		HipFireMod:     float64(a.mods.HipFire),
		CanMountGrip:   a.gripSupport,
	}
	if a.category == CategoryMagazine {
		drum := a.drumMagazine
		s.IsDrumMag = &drum
	}
	return s
}

// AttachmentFromSnapshot restores an Attachment, reading the category from
// attachment_type or, when that is empty, the legacy type key.
//
// Postcondition: err wraps ErrInvalidCategory iff the category is unknown.
func AttachmentFromSnapshot(s AttachmentSnapshot) (Attachment, error) {
	tag := s.AttachmentType
	if tag == "" {
		tag = s.Type
	}
	c, err := ParseCategory(tag)
	if err != nil {
		return Attachment{}, fmt.Errorf("armory: AttachmentFromSnapshot %q: %w", s.Name, err)
	}
	return attachmentFromRecord(s, c), nil
}

func attachmentFromRecord(s AttachmentSnapshot, c Category) Attachment {
	mods := Mods{
		Recoil:    roundMod(s.RecoilMod),
		Handling:  roundMod(s.HandlingMod),
		Stability: roundMod(s.StabilityMod),
		HipFire:   roundMod(s.HipFireMod),
	}
	opts := []AttachmentOption{WithGripSupport(s.CanMountGrip)}
	if s.IsDrumMag != nil {
		opts = append(opts, WithDrumMagazine(*s.IsDrumMag))
	}
	return newAttachment(s.Name, c, mods, opts...)
}

func roundMod(v float64) int {
	return int(math.Round(v))
}

// Snapshot returns the persisted form of w, attachments in mount order.
func (w *Weapon) Snapshot() WeaponSnapshot {
	s := WeaponSnapshot{
		Name:            w.Name,
		WeaponType:      string(w.Type),
		SoldierClasses:  make([]string, 0, len(w.Classes)),
		BaseDamage:      w.Damage.Chest,
		StomachDamage:   w.Damage.Stomach,
		LimbDamage:      w.Damage.Limb,
		FootDamage:      w.Damage.Foot,
		RangeMeters:     w.RangeMeters,
		FireRate:        w.FireRate,
		RecoilControl:   w.Base.RecoilControl,
		HandlingSpeed:   w.Base.HandlingSpeed,
		ADSStability:    w.Base.ADSStability,
		HipFireAccuracy: w.Base.HipFireAccuracy,
		Attachments:     make([]AttachmentSnapshot, 0, len(w.attachments)),
	}
	for _, c := range w.Classes {
		s.SoldierClasses = append(s.SoldierClasses, string(c))
	}
	for _, a := range w.attachments {
		s.Attachments = append(s.Attachments, a.Snapshot())
	}
	return s
}

// WeaponFromSnapshot restores a Weapon. Attachments are restored verbatim in
// stored order without running the mount rules; weapon type and classes are
// normalised but never rejected.
//
// Postcondition: err is non-nil only when an attachment's category is unknown.
func WeaponFromSnapshot(s WeaponSnapshot) (*Weapon, error) {
	w := &Weapon{
		Name:        s.Name,
		Type:        NormalizeWeaponType(s.WeaponType),
		Damage:      Damage{Chest: s.BaseDamage, Stomach: s.StomachDamage, Limb: s.LimbDamage, Foot: s.FootDamage},
		RangeMeters: s.RangeMeters,
		FireRate:    s.FireRate,
		Base: Performance{
			RecoilControl:   s.RecoilControl,
			HandlingSpeed:   s.HandlingSpeed,
			ADSStability:    s.ADSStability,
			HipFireAccuracy: s.HipFireAccuracy,
		},
	}
	for _, c := range s.SoldierClasses {
		w.Classes = append(w.Classes, NormalizeSoldierClass(c))
	}
	for i, as := range s.Attachments {
		a, err := AttachmentFromSnapshot(as)
		if err != nil {
			return nil, fmt.Errorf("armory: WeaponFromSnapshot %q: attachment %d: %w", s.Name, i, err)
		}
		w.attachments = append(w.attachments, a)
	}
	return w, nil
}

// Snapshot returns the persisted form of c.
func (c *Catalog) Snapshot() CatalogSnapshot {
	s := CatalogSnapshot{
		Common:   make(map[string][]AttachmentSnapshot),
		Specific: make(map[string]map[string][]AttachmentSnapshot),
	}
	for cat, list := range c.common {
		s.Common[cat.String()] = snapshotList(list)
	}
	for weapon, byCat := range c.specific {
		out := make(map[string][]AttachmentSnapshot, len(byCat))
		for cat, list := range byCat {
			out[cat.String()] = snapshotList(list)
		}
		s.Specific[weapon] = out
	}
	return s
}

// CatalogFromSnapshot restores a Catalog. The map key decides each entry's
// category. Keys naming the same category (a legacy label and its tag) are
// merged in category order, then by raw key, so repeated loads agree.
//
// Postcondition: err wraps ErrInvalidCategory iff a key is not a category.
func CatalogFromSnapshot(s CatalogSnapshot) (*Catalog, error) {
	c := NewCatalog()
	common, err := orderedLists(s.Common)
	if err != nil {
		return nil, fmt.Errorf("armory: CatalogFromSnapshot: common: %w", err)
	}
	for _, l := range common {
		for _, rec := range l.records {
			c.AddCommon(attachmentFromRecord(rec, l.category))
		}
	}
	weapons := make([]string, 0, len(s.Specific))
	for weapon := range s.Specific {
		weapons = append(weapons, weapon)
	}
	sort.Strings(weapons)
	for _, weapon := range weapons {
		lists, err := orderedLists(s.Specific[weapon])
		if err != nil {
			return nil, fmt.Errorf("armory: CatalogFromSnapshot: %q: %w", weapon, err)
		}
		for _, l := range lists {
			for _, rec := range l.records {
				if err := c.AddSpecific(weapon, attachmentFromRecord(rec, l.category)); err != nil {
					return nil, err
				}
			}
		}
	}
	return c, nil
}

// Snapshot returns the persisted form of p.
func (p *Presets) Snapshot() PresetsSnapshot {
	s := make(PresetsSnapshot, len(p.byCategory))
	for cat, list := range p.byCategory {
		s[cat.String()] = snapshotList(list)
	}
	return s
}

// PresetsFromSnapshot restores Presets. The map key decides each preset's
// category; keys are merged in the same order as CatalogFromSnapshot.
func PresetsFromSnapshot(s PresetsSnapshot) (*Presets, error) {
	p := NewPresets()
	lists, err := orderedLists(s)
	if err != nil {
		return nil, fmt.Errorf("armory: PresetsFromSnapshot: %w", err)
	}
	for _, l := range lists {
		for _, rec := range l.records {
			p.Add(attachmentFromRecord(rec, l.category))
		}
	}
	return p, nil
}

type taggedList struct {
	category Category
	key      string
	records  []AttachmentSnapshot
}

// orderedLists parses every key of m and sorts the lists by category, then
// by raw key.
func orderedLists(m map[string][]AttachmentSnapshot) ([]taggedList, error) {
	out := make([]taggedList, 0, len(m))
	for key, records := range m {
		cat, err := ParseCategory(key)
		if err != nil {
			return nil, err
		}
		out = append(out, taggedList{category: cat, key: key, records: records})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].category != out[j].category {
			return out[i].category < out[j].category
		}
		return out[i].key < out[j].key
	})
	return out, nil
}

func snapshotList(list []Attachment) []AttachmentSnapshot {
	out := make([]AttachmentSnapshot, 0, len(list))
	for _, a := range list {
		out = append(out, a.Snapshot())
	}
	return out
}
