package armory

import "errors"

var (
	// ErrCategoryOccupied is returned when the category already holds an attachment.
	ErrCategoryOccupied = errors.New("category already occupied")
	// ErrInvalidMagWellMount is returned when a mag well is mounted over a drum magazine.
	ErrInvalidMagWellMount = errors.New("mag well cannot be mounted with a drum magazine")
	// ErrInvalidDrumMagMount is returned when a drum magazine is mounted over a mag well.
	ErrInvalidDrumMagMount = errors.New("drum magazine cannot be mounted with a mag well")
	// ErrMissingGripPrerequisite is returned when a grip mount has no supporting rear grip.
	ErrMissingGripPrerequisite = errors.New("grip mount requires a rear grip with grip support")
)

// mountRule rejects a if it cannot join w's current loadout.
type mountRule func(w *Weapon, a Attachment) error

// mountRules run in order; the first error wins.
var mountRules = []mountRule{
	requireFreeCategory,
	forbidMagWellWithDrum,
	forbidDrumWithMagWell,
	requireGripSupport,
}

func requireFreeCategory(w *Weapon, a Attachment) error {
	if _, taken := w.Mounted(a.category); taken {
		return ErrCategoryOccupied
	}
	return nil
}

func forbidMagWellWithDrum(w *Weapon, a Attachment) error {
	if a.category == CategoryMagWell && w.hasDrumMagazine() {
		return ErrInvalidMagWellMount
	}
	return nil
}

func forbidDrumWithMagWell(w *Weapon, a Attachment) error {
	if a.category != CategoryMagazine || !a.drumMagazine {
		return nil
	}
	if _, ok := w.Mounted(CategoryMagWell); ok {
		return ErrInvalidDrumMagMount
	}
	return nil
}

func requireGripSupport(w *Weapon, a Attachment) error {
	if a.category == CategoryGripMount && !w.hasGripSupport() {
		return ErrMissingGripPrerequisite
	}
	return nil
}
