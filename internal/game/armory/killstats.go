package armory

import (
	"errors"
	"fmt"
	"math"
)

// ErrDivisionUndefined is returned when a damage figure or the fire rate is
// not positive, or the target health gives no finite bullet count, leaving
// bullets-to-kill or time-to-kill undefined.
var ErrDivisionUndefined = errors.New("division undefined")

// DefaultTargetHealth is the health pool used when the caller has no other.
const DefaultTargetHealth = 100.0

// BodyPart is a hit location with its own damage figure.
type BodyPart string

const (
	PartChest   BodyPart = "chest"
	PartStomach BodyPart = "stomach"
	PartLimb    BodyPart = "limb"
	PartFoot    BodyPart = "foot"
)

// BodyParts returns the hit locations in display order.
func BodyParts() []BodyPart {
	return []BodyPart{PartChest, PartStomach, PartLimb, PartFoot}
}

// For returns the damage for part, or 0 for an unknown part.
func (d Damage) For(part BodyPart) float64 {
	switch part {
	case PartChest:
		return d.Chest
	case PartStomach:
		return d.Stomach
	case PartLimb:
		return d.Limb
	case PartFoot:
		return d.Foot
	}
	return 0
}

// KillStats is the bullets-to-kill per body part and the fastest theoretical
// time to kill.
type KillStats struct {
	Health float64
	BTK    map[BodyPart]int
	// FastestKillMs is (min BTK - 1) * 60000 / fire rate.
	FastestKillMs float64
}

// MinBTK returns the smallest bullets-to-kill across body parts.
func (k KillStats) MinBTK() int {
	first := true
	var lowest int
	for _, part := range BodyParts() {
		n, ok := k.BTK[part]
		if !ok {
			continue
		}
		if first || n < lowest {
			lowest = n
			first = false
		}
	}
	return lowest
}

// KillStats computes bullets-to-kill against targetHealth for each body part
// and the fastest kill time in milliseconds. Non-positive health is not
// rejected and yields degenerate counts.
//
// Postcondition: err wraps ErrDivisionUndefined when any damage figure or the
// fire rate is <= 0, or when health is NaN, infinite or so large that a
// bullet count does not fit in an int.
func (w *Weapon) KillStats(targetHealth float64) (KillStats, error) {
	ks := KillStats{Health: targetHealth, BTK: make(map[BodyPart]int, 4)}
	for _, part := range BodyParts() {
		d := w.Damage.For(part)
		if d <= 0 {
			return KillStats{}, fmt.Errorf("armory: Weapon.KillStats %q: %w: %s damage is %v", w.Name, ErrDivisionUndefined, part, d)
		}
		n, ok := bulletCount(targetHealth, d)
		if !ok {
			return KillStats{}, fmt.Errorf("armory: Weapon.KillStats %q: %w: %s bullets for health %v is not representable", w.Name, ErrDivisionUndefined, part, targetHealth)
		}
		ks.BTK[part] = n
	}
	if w.FireRate <= 0 {
		return KillStats{}, fmt.Errorf("armory: Weapon.KillStats %q: %w: fire rate is %v", w.Name, ErrDivisionUndefined, w.FireRate)
	}
	ks.FastestKillMs = float64(ks.MinBTK()-1) * 60000 / w.FireRate
	return ks, nil
}

// bulletCount returns ceil(health/damage) when it is a finite value strictly
// inside the int range, so MinBTK()-1 cannot wrap.
func bulletCount(health, damage float64) (int, bool) {
	q := math.Ceil(health / damage)
	if math.IsNaN(q) || q >= math.MaxInt || q <= math.MinInt {
		return 0, false
	}
	return int(q), true
}
