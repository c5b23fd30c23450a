package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/armory/internal/game/armory"
	"github.com/cory-johannsen/armory/internal/storage"
	"github.com/cory-johannsen/armory/internal/storage/postgres"
	"github.com/cory-johannsen/armory/internal/testutil"
)

func setupBackend(t *testing.T) *postgres.Backend {
	t.Helper()
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	return postgres.NewBackend(pc.Pool, zaptest.NewLogger(t))
}

func testWeapon(name string) *armory.Weapon {
	return &armory.Weapon{
		Name:     name,
		Type:     armory.WeaponTypeSMG,
		Classes:  []armory.SoldierClass{armory.ClassEngineer},
		Damage:   armory.Damage{Chest: 30, Stomach: 28, Limb: 22, Foot: 20},
		FireRate: 900,
	}
}

func TestPool_Health(t *testing.T) {
	pc := testutil.NewPostgresContainer(t)
	assert.NoError(t, pc.Pool.Health(context.Background(), 5*time.Second))
}

func TestPool_CheckSchema(t *testing.T) {
	pc := testutil.NewPostgresContainer(t)
	ctx := context.Background()

	err := pc.Pool.CheckSchema(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weapons, documents")

	pc.ApplyMigrations(t)
	assert.NoError(t, pc.Pool.CheckSchema(ctx))
}

func TestOpen_AppliesSchemaCheck(t *testing.T) {
	pc := testutil.NewPostgresContainer(t)
	_, err := postgres.Open(context.Background(), pc.Config, zaptest.NewLogger(t))
	assert.ErrorContains(t, err, "run the migrate command first")

	pc.ApplyMigrations(t)
	b, err := postgres.Open(context.Background(), pc.Config, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, b.Close())
}

func TestBackend_WeaponLifecycle(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	w := testWeapon("Vector")
	require.NoError(t, w.Mount(armory.MustAttachment("50rd Drum", armory.CategoryMagazine, armory.Mods{Handling: -10})))
	require.NoError(t, b.Save(ctx, w))
	require.NoError(t, b.Save(ctx, testWeapon("MP5")))

	weapons, err := b.List(ctx)
	require.NoError(t, err)
	require.Len(t, weapons, 2)
	assert.Equal(t, "MP5", weapons[0].Name)
	assert.Equal(t, w.Snapshot(), weapons[1].Snapshot())

	w.FireRate = 1100
	require.NoError(t, b.Save(ctx, w))
	weapons, err = b.List(ctx)
	require.NoError(t, err)
	require.Len(t, weapons, 2)
	assert.Equal(t, 1100.0, weapons[1].FireRate)

	require.NoError(t, b.Delete(ctx, "MP5"))
	assert.ErrorIs(t, b.Delete(ctx, "MP5"), storage.ErrWeaponNotFound)
}

func TestBackend_ListSkipsCorruptRows(t *testing.T) {
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	core, logs := observer.New(zapcore.WarnLevel)
	b := postgres.NewBackend(pc.Pool, zap.New(core))
	ctx := context.Background()

	require.NoError(t, b.Save(ctx, testWeapon("MP5")))
	_, err := pc.RawPool.Exec(ctx,
		`INSERT INTO weapons (id, name, snapshot) VALUES (gen_random_uuid(), $1, $2::jsonb), (gen_random_uuid(), $3, $4::jsonb)`,
		"Bad Category", `{"name": "Bad Category", "attachments": [{"name": "x", "attachment_type": "SCOPE"}]}`,
		"Bad Shape", `{"name": 5}`,
	)
	require.NoError(t, err)

	weapons, err := b.List(ctx)
	require.NoError(t, err)
	require.Len(t, weapons, 1)
	assert.Equal(t, "MP5", weapons[0].Name)

	skipped := logs.FilterMessage("skipping corrupt weapon row").All()
	require.Len(t, skipped, 2)
	assert.Equal(t, "Bad Category", skipped[0].ContextMap()["name"])
	assert.Equal(t, "Bad Shape", skipped[1].ContextMap()["name"])
}

func TestBackend_Documents(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	c, err := b.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	c.AddCommon(armory.MustAttachment("Red Dot", armory.CategoryTopRail, armory.Mods{Handling: -2, Stability: 5}))
	require.NoError(t, c.AddSpecific("Vector", armory.MustAttachment("Vector Stock", armory.CategoryStock, armory.Mods{Recoil: 4})))
	require.NoError(t, b.SaveCatalog(ctx, c))
	got, err := b.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, c.Entries(), got.Entries())

	p := armory.NewPresets()
	p.Add(armory.MustAttachment("Suppressor", armory.CategoryMuzzle, armory.Mods{Recoil: 5, Handling: -5}))
	require.NoError(t, b.SavePresets(ctx, p))
	gotP, err := b.LoadPresets(ctx)
	require.NoError(t, err)
	assert.Equal(t, p.All(), gotP.All())
}
