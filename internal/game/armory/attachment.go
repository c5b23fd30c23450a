package armory

import (
	"fmt"
	"strings"
)

// drumMarkers are the name tokens that classify a magazine as a drum when
// the drum flag is not given explicitly.
var drumMarkers = []string{"drum", "弹鼓"}

// Mods holds the four signed stat deltas an attachment applies.
type Mods struct {
	Recoil    int
	Handling  int
	Stability int
	HipFire   int
}

// Attachment is one equippable weapon part. It is immutable after
// construction and copied by value; each Weapon owns its own copies.
type Attachment struct {
	name         string
	category     Category
	mods         Mods
	gripSupport  bool
	drumMagazine bool
}

type attachmentSpec struct {
	gripSupport bool
	drum        *bool
}

// AttachmentOption customises an Attachment during construction.
type AttachmentOption func(*attachmentSpec)

// WithGripSupport marks a rear grip as able to carry a grip mount.
// It has no effect on other categories.
func WithGripSupport(v bool) AttachmentOption {
	return func(s *attachmentSpec) { s.gripSupport = v }
}

// WithDrumMagazine sets the drum classification of a magazine explicitly,
// overriding name-based detection. It has no effect on other categories.
func WithDrumMagazine(v bool) AttachmentOption {
	return func(s *attachmentSpec) { s.drum = &v }
}

// NewAttachment constructs an Attachment from a category tag.
//
// Precondition: tag must name one of the twelve categories.
// Postcondition: returns an error wrapping ErrInvalidCategory otherwise.
func NewAttachment(name, tag string, mods Mods, opts ...AttachmentOption) (Attachment, error) {
	c, err := ParseCategory(tag)
	if err != nil {
		return Attachment{}, fmt.Errorf("armory: NewAttachment %q: %w", name, err)
	}
	return newAttachment(name, c, mods, opts...), nil
}

// MustAttachment is NewAttachment for a known-valid Category. It panics if c
// is out of range.
func MustAttachment(name string, c Category, mods Mods, opts ...AttachmentOption) Attachment {
	if !c.Valid() {
		panic(fmt.Sprintf("armory: MustAttachment: %v", c))
	}
	return newAttachment(name, c, mods, opts...)
}

func newAttachment(name string, c Category, mods Mods, opts ...AttachmentOption) Attachment {
	var spec attachmentSpec
	for _, opt := range opts {
		opt(&spec)
	}
	a := Attachment{name: name, category: c, mods: mods}
	if c == CategoryRearGrip {
		a.gripSupport = spec.gripSupport
	}
	if c == CategoryMagazine {
		if spec.drum != nil {
			a.drumMagazine = *spec.drum
		} else {
			a.drumMagazine = hasDrumMarker(name)
		}
	}
	return a
}

func hasDrumMarker(name string) bool {
	lower := strings.ToLower(name)
	for _, m := range drumMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// Name returns the display name.
func (a Attachment) Name() string { return a.name }

// Category returns the mount point.
func (a Attachment) Category() Category { return a.category }

// Mods returns the stat deltas.
func (a Attachment) Mods() Mods { return a.mods }

// CanMountGripSupport reports whether this rear grip accepts a grip mount.
func (a Attachment) CanMountGripSupport() bool { return a.gripSupport }

// IsDrumMagazine reports whether this magazine is of the drum sub-kind.
func (a Attachment) IsDrumMagazine() bool { return a.drumMagazine }

// ModSummary lists the non-zero deltas, e.g. "recoil +5, handling -3".
//
// Postcondition: returns "" when every delta is zero.
func (a Attachment) ModSummary() string {
	var parts []string
	add := func(label string, v int) {
		if v != 0 {
			parts = append(parts, fmt.Sprintf("%s %+d", label, v))
		}
	}
	add("recoil", a.mods.Recoil)
	add("handling", a.mods.Handling)
	add("stability", a.mods.Stability)
	add("hip fire", a.mods.HipFire)
	return strings.Join(parts, ", ")
}
