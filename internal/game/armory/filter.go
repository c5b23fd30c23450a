package armory

import "sort"

// TypesForClass returns the distinct weapon types carried by weapons available
// to class, in canonical type order.
func TypesForClass(weapons []*Weapon, class SoldierClass) []WeaponType {
	seen := make(map[WeaponType]bool)
	for _, w := range weapons {
		if w.HasClass(class) {
			seen[w.Type] = true
		}
	}
	var out []WeaponType
	for _, t := range weaponTypes {
		if seen[t] {
			out = append(out, t)
		}
	}
	return out
}

// Matching returns the weapons available to class with type t, sorted by name.
func Matching(weapons []*Weapon, class SoldierClass, t WeaponType) []*Weapon {
	var out []*Weapon
	for _, w := range weapons {
		if w.Type == t && w.HasClass(class) {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
