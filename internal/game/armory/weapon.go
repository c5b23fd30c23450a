package armory

import (
	"errors"
	"fmt"
)

// Damage holds per-hit damage by body part.
type Damage struct {
	Chest   float64
	Stomach float64
	Limb    float64
	Foot    float64
}

// Performance holds the four handling stats, each intended to lie in [0,100].
type Performance struct {
	RecoilControl   float64
	HandlingSpeed   float64
	ADSStability    float64
	HipFireAccuracy float64
}

// Weapon is the aggregate root: base stats plus the mounted attachments.
//
// Invariant: Mount admits at most one attachment per Category.
type Weapon struct {
	Name        string
	Type        WeaponType
	Classes     []SoldierClass
	Damage      Damage
	RangeMeters float64
	FireRate    float64 // rounds per minute
	Base        Performance

	attachments []Attachment
}

// Attachments returns a copy of the mounted attachments in mount order.
func (w *Weapon) Attachments() []Attachment {
	return append([]Attachment(nil), w.attachments...)
}

// Mounted returns the attachment in category c, if any.
func (w *Weapon) Mounted(c Category) (Attachment, bool) {
	for _, a := range w.attachments {
		if a.category == c {
			return a, true
		}
	}
	return Attachment{}, false
}

// HasClass reports whether c is among the weapon's soldier classes.
func (w *Weapon) HasClass(c SoldierClass) bool {
	for _, have := range w.Classes {
		if have == c {
			return true
		}
	}
	return false
}

// Validate checks the weapon's base stats.
// Precondition: w is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (w *Weapon) Validate() error {
	var errs []error
	if w.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if !w.Type.Valid() {
		errs = append(errs, fmt.Errorf("weapon type %q is not valid", w.Type))
	}
	for _, c := range w.Classes {
		if !c.Valid() {
			errs = append(errs, fmt.Errorf("soldier class %q is not valid", c))
		}
	}
	for _, part := range BodyParts() {
		if w.Damage.For(part) <= 0 {
			errs = append(errs, fmt.Errorf("%s damage must be > 0", part))
		}
	}
	if w.FireRate <= 0 {
		errs = append(errs, errors.New("fire rate must be > 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon validation failed: %v", errs)
	}
	return nil
}

// CanMount reports whether a could be mounted, without mounting it.
//
// Postcondition: returns the error Mount would return; w is unchanged.
func (w *Weapon) CanMount(a Attachment) error {
	for _, rule := range mountRules {
		if err := rule(w, a); err != nil {
			return fmt.Errorf("armory: Weapon.Mount %q on %q: %w", a.name, w.Name, err)
		}
	}
	return nil
}

// Mount appends a to the loadout after checking every compatibility rule in
// order. The first failing rule wins and the loadout is left unchanged.
//
// Postcondition: on success a is the last element of Attachments().
func (w *Weapon) Mount(a Attachment) error {
	if err := w.CanMount(a); err != nil {
		return err
	}
	w.attachments = append(w.attachments, a)
	return nil
}

// Unmount removes every mounted attachment named name and returns how many
// were removed. An unknown name is a no-op.
func (w *Weapon) Unmount(name string) int {
	kept := w.attachments[:0:0]
	for _, a := range w.attachments {
		if a.name != name {
			kept = append(kept, a)
		}
	}
	removed := len(w.attachments) - len(kept)
	w.attachments = kept
	return removed
}

// DerivedStats returns base performance plus all attachment deltas, each
// stat clamped to [0,100] once on the final sum.
//
// Postcondition: every field of the result lies in [0,100]; w is unchanged.
func (w *Weapon) DerivedStats() Performance {
	p := w.Base
	for _, a := range w.attachments {
		p.RecoilControl += float64(a.mods.Recoil)
		p.HandlingSpeed += float64(a.mods.Handling)
		p.ADSStability += float64(a.mods.Stability)
		p.HipFireAccuracy += float64(a.mods.HipFire)
	}
	return Performance{
		RecoilControl:   clampStat(p.RecoilControl),
		HandlingSpeed:   clampStat(p.HandlingSpeed),
		ADSStability:    clampStat(p.ADSStability),
		HipFireAccuracy: clampStat(p.HipFireAccuracy),
	}
}

func clampStat(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// AvailableCategories lists the categories an attachment could currently be
// mounted in, in canonical order. Mag wells are hidden while a drum magazine is
// mounted and grip mounts are hidden until a grip-support rear grip is mounted.
func (w *Weapon) AvailableCategories() []Category {
	var out []Category
	for _, c := range Categories() {
		if _, taken := w.Mounted(c); taken {
			continue
		}
		switch c {
		case CategoryMagWell:
			if w.hasDrumMagazine() {
				continue
			}
		case CategoryGripMount:
			if !w.hasGripSupport() {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

func (w *Weapon) hasDrumMagazine() bool {
	for _, a := range w.attachments {
		if a.category == CategoryMagazine && a.drumMagazine {
			return true
		}
	}
	return false
}

func (w *Weapon) hasGripSupport() bool {
	for _, a := range w.attachments {
		if a.category == CategoryRearGrip && a.gripSupport {
			return true
		}
	}
	return false
}
