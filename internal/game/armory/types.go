package armory

import "strings"

// WeaponType is the class of firearm.
type WeaponType string

const (
	WeaponTypeSMG          WeaponType = "SMG"
	WeaponTypeAssaultRifle WeaponType = "ASSAULT_RIFLE"
	WeaponTypeShotgun      WeaponType = "SHOTGUN"
	WeaponTypeDMR          WeaponType = "DMR"
	WeaponTypeSniperRifle  WeaponType = "SNIPER_RIFLE"
	WeaponTypePistol       WeaponType = "PISTOL"
)

// weaponTypes is the canonical display order.
var weaponTypes = []WeaponType{
	WeaponTypeSMG,
	WeaponTypeAssaultRifle,
	WeaponTypeShotgun,
	WeaponTypeDMR,
	WeaponTypeSniperRifle,
	WeaponTypePistol,
}

var legacyWeaponTypes = map[string]WeaponType{
	"冲锋枪":    WeaponTypeSMG,
	"步枪":     WeaponTypeAssaultRifle,
	"霰弹枪":    WeaponTypeShotgun,
	"精确射手步枪": WeaponTypeDMR,
	"狙击步枪":   WeaponTypeSniperRifle,
	"手枪":     WeaponTypePistol,
}

// WeaponTypes returns all weapon types in canonical order.
func WeaponTypes() []WeaponType {
	return append([]WeaponType(nil), weaponTypes...)
}

// Valid reports whether t is a known weapon type.
func (t WeaponType) Valid() bool {
	for _, known := range weaponTypes {
		if t == known {
			return true
		}
	}
	return false
}

// NormalizeWeaponType maps legacy labels and loosely-cased tags onto the
// canonical constants. Unrecognised input is returned verbatim.
func NormalizeWeaponType(s string) WeaponType {
	if t, ok := legacyWeaponTypes[strings.TrimSpace(s)]; ok {
		return t
	}
	t := WeaponType(normalizeTag(s))
	if t.Valid() {
		return t
	}
	return WeaponType(s)
}

// SoldierClass is a player class a weapon is available to.
type SoldierClass string

const (
	ClassAssault  SoldierClass = "ASSAULT"
	ClassSupport  SoldierClass = "SUPPORT"
	ClassEngineer SoldierClass = "ENGINEER"
	ClassRecon    SoldierClass = "RECON"
)

var soldierClasses = []SoldierClass{ClassAssault, ClassSupport, ClassEngineer, ClassRecon}

var legacySoldierClasses = map[string]SoldierClass{
	"突击": ClassAssault,
	"支援": ClassSupport,
	"工程": ClassEngineer,
	"侦查": ClassRecon,
}

// SoldierClasses returns all soldier classes in canonical order.
func SoldierClasses() []SoldierClass {
	return append([]SoldierClass(nil), soldierClasses...)
}

// Valid reports whether c is a known soldier class.
func (c SoldierClass) Valid() bool {
	for _, known := range soldierClasses {
		if c == known {
			return true
		}
	}
	return false
}

// NormalizeSoldierClass maps legacy labels and loosely-cased tags onto the
// canonical constants. Unrecognised input is returned verbatim.
func NormalizeSoldierClass(s string) SoldierClass {
	if c, ok := legacySoldierClasses[strings.TrimSpace(s)]; ok {
		return c
	}
	c := SoldierClass(normalizeTag(s))
	if c.Valid() {
		return c
	}
	return SoldierClass(s)
}

func normalizeTag(s string) string {
	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_").Replace(strings.TrimSpace(s)))
}
