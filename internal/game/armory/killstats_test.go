package armory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/armory/internal/game/armory"
)

func TestKillStats_ChestBTK(t *testing.T) {
	w := rifle()
	w.Damage.Chest = 34
	ks, err := w.KillStats(100)
	require.NoError(t, err)
	assert.Equal(t, 3, ks.BTK[armory.PartChest])
}

func TestKillStats_AKXScenario(t *testing.T) {
	w := rifle()
	require.NoError(t, w.Mount(armory.MustAttachment("Brake", armory.CategoryMuzzle, armory.Mods{Recoil: 10})))

	ks, err := w.KillStats(100)
	require.NoError(t, err)
	assert.Equal(t, map[armory.BodyPart]int{
		armory.PartChest:   3,
		armory.PartStomach: 3,
		armory.PartLimb:    4,
		armory.PartFoot:    4,
	}, ks.BTK)
	assert.Equal(t, 3, ks.MinBTK())
	assert.InDelta(t, 200.0, ks.FastestKillMs, 1e-9)
	assert.Equal(t, 100.0, ks.Health)
}

func TestKillStats_ZeroFireRate(t *testing.T) {
	w := rifle()
	w.FireRate = 0
	_, err := w.KillStats(100)
	assert.ErrorIs(t, err, armory.ErrDivisionUndefined)
}

func TestKillStats_NonPositiveDamage(t *testing.T) {
	for _, part := range armory.BodyParts() {
		w := rifle()
		switch part {
		case armory.PartChest:
			w.Damage.Chest = 0
		case armory.PartStomach:
			w.Damage.Stomach = -1
		case armory.PartLimb:
			w.Damage.Limb = 0
		case armory.PartFoot:
			w.Damage.Foot = -5
		}
		_, err := w.KillStats(100)
		assert.ErrorIs(t, err, armory.ErrDivisionUndefined, string(part))
		assert.Contains(t, err.Error(), string(part))
	}
}

func TestKillStats_NonPositiveHealthIsDegenerate(t *testing.T) {
	ks, err := rifle().KillStats(0)
	require.NoError(t, err)
	assert.Equal(t, 0, ks.BTK[armory.PartChest])
	assert.Less(t, ks.FastestKillMs, 0.0)
}

func TestKillStats_UnrepresentableHealth(t *testing.T) {
	for _, health := range []float64{1e30, -1e30, math.Inf(1), math.Inf(-1), math.NaN()} {
		w := rifle()
		w.Damage = armory.Damage{Chest: 1, Stomach: 1, Limb: 1, Foot: 1}
		ks, err := w.KillStats(health)
		assert.ErrorIs(t, err, armory.ErrDivisionUndefined, "health %v", health)
		assert.Equal(t, armory.KillStats{}, ks, "health %v", health)
	}
}

func TestKillStats_LargeButRepresentableHealth(t *testing.T) {
	w := rifle()
	w.Damage = armory.Damage{Chest: 1, Stomach: 1, Limb: 1, Foot: 1}
	ks, err := w.KillStats(1e12)
	require.NoError(t, err)
	assert.Equal(t, 1_000_000_000_000, ks.BTK[armory.PartChest])
	assert.Greater(t, ks.FastestKillMs, 0.0)
}

func TestProperty_KillStats_HugeHealthNeverWraps(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := rifle()
		health := rapid.Float64Range(1e21, 1e300).Draw(rt, "health")
		ks, err := w.KillStats(health)
		if err == nil {
			rt.Fatalf("health %v: expected error, got %+v", health, ks)
		}
	})
}

func TestKillStats_IgnoresAttachments(t *testing.T) {
	w := rifle()
	before, err := w.KillStats(150)
	require.NoError(t, err)
	require.NoError(t, w.Mount(armory.MustAttachment("Brake", armory.CategoryMuzzle, armory.Mods{Recoil: 20})))
	after, err := w.KillStats(150)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestProperty_KillStats_MatchesFormula(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := rifle()
		w.Damage = armory.Damage{
			Chest:   rapid.Float64Range(1, 200).Draw(rt, "chest"),
			Stomach: rapid.Float64Range(1, 200).Draw(rt, "stomach"),
			Limb:    rapid.Float64Range(1, 200).Draw(rt, "limb"),
			Foot:    rapid.Float64Range(1, 200).Draw(rt, "foot"),
		}
		w.FireRate = rapid.Float64Range(1, 1500).Draw(rt, "rpm")
		health := rapid.Float64Range(1, 500).Draw(rt, "health")

		ks, err := w.KillStats(health)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		lowest := math.MaxInt
		for _, part := range armory.BodyParts() {
			want := int(math.Ceil(health / w.Damage.For(part)))
			if ks.BTK[part] != want {
				rt.Fatalf("%s BTK = %d, want %d", part, ks.BTK[part], want)
			}
			if ks.BTK[part] < 1 {
				rt.Fatalf("%s BTK must be >= 1 for positive health", part)
			}
			if want < lowest {
				lowest = want
			}
		}
		wantMs := float64(lowest-1) * 60000 / w.FireRate
		if math.Abs(ks.FastestKillMs-wantMs) > 1e-6 {
			rt.Fatalf("FastestKillMs = %v, want %v", ks.FastestKillMs, wantMs)
		}
	})
}
