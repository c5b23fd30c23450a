package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/armory/internal/config"
	"github.com/cory-johannsen/armory/internal/game/armory"
	"github.com/cory-johannsen/armory/internal/storage"
	"github.com/cory-johannsen/armory/internal/storage/redis"
	"github.com/cory-johannsen/armory/internal/testutil"
)

const prefix = "test:"

type RedisBackendTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	backend *redis.Backend
	logs    *observer.ObservedLogs
	ctx     context.Context
}

func (s *RedisBackendTestSuite) SetupTest() {
	mr, client := testutil.NewRedis(s.T())
	core, logs := observer.New(zap.InfoLevel)
	s.mr = mr
	s.logs = logs
	s.backend = redis.New(client, prefix, zap.New(core))
	s.ctx = context.Background()
}

func (s *RedisBackendTestSuite) weapon(name string) *armory.Weapon {
	return &armory.Weapon{
		Name:     name,
		Type:     armory.WeaponTypeDMR,
		Classes:  []armory.SoldierClass{armory.ClassRecon},
		Damage:   armory.Damage{Chest: 60, Stomach: 55, Limb: 45, Foot: 40},
		FireRate: 300,
	}
}

func (s *RedisBackendTestSuite) TestSaveWritesValueAndIndex() {
	w := s.weapon("SVD")
	s.Require().NoError(w.Mount(armory.MustAttachment("PSO Scope", armory.CategoryTopRail, armory.Mods{Stability: 12})))
	s.Require().NoError(s.backend.Save(s.ctx, w))

	s.True(s.mr.Exists(prefix + "weapon:SVD"))
	members, err := s.mr.Members(prefix + "weapons")
	s.Require().NoError(err)
	s.Equal([]string{"SVD"}, members)

	weapons, err := s.backend.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(weapons, 1)
	s.Equal(w.Snapshot(), weapons[0].Snapshot())
}

func (s *RedisBackendTestSuite) TestListSortedByName() {
	for _, name := range []string{"SVD", "M14", "Kar98"} {
		s.Require().NoError(s.backend.Save(s.ctx, s.weapon(name)))
	}
	weapons, err := s.backend.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(weapons, 3)
	s.Equal("Kar98", weapons[0].Name)
	s.Equal("M14", weapons[1].Name)
	s.Equal("SVD", weapons[2].Name)
}

func (s *RedisBackendTestSuite) TestListSkipsDanglingAndCorrupt() {
	s.Require().NoError(s.backend.Save(s.ctx, s.weapon("SVD")))
	_, err := s.mr.SAdd(prefix+"weapons", "Ghost", "Broken")
	s.Require().NoError(err)
	s.Require().NoError(s.mr.Set(prefix+"weapon:Broken", "{nope"))

	weapons, err := s.backend.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(weapons, 1)
	s.Equal("SVD", weapons[0].Name)
	s.Equal(1, s.logs.FilterMessage("weapon indexed without a value").Len())
	s.Equal(1, s.logs.FilterMessage("skipping corrupt weapon").Len())
}

func (s *RedisBackendTestSuite) TestDelete() {
	s.Require().NoError(s.backend.Save(s.ctx, s.weapon("SVD")))
	s.Require().NoError(s.backend.Delete(s.ctx, "SVD"))
	s.False(s.mr.Exists(prefix + "weapon:SVD"))
	s.ErrorIs(s.backend.Delete(s.ctx, "SVD"), storage.ErrWeaponNotFound)
}

func (s *RedisBackendTestSuite) TestSaveRejectsEmptyName() {
	s.Error(s.backend.Save(s.ctx, s.weapon("")))
}

func (s *RedisBackendTestSuite) TestCatalogAndPresets() {
	empty, err := s.backend.LoadCatalog(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, empty.Len())

	c := armory.NewCatalog()
	c.AddCommon(armory.MustAttachment("Muzzle Brake", armory.CategoryMuzzle, armory.Mods{Recoil: 15, Handling: -3, Stability: 5}))
	s.Require().NoError(c.AddSpecific("SVD", armory.MustAttachment("Cheek Rest", armory.CategoryStock, armory.Mods{Stability: 4})))
	s.Require().NoError(s.backend.SaveCatalog(s.ctx, c))
	s.True(s.mr.Exists(prefix + "catalog"))

	got, err := s.backend.LoadCatalog(s.ctx)
	s.Require().NoError(err)
	s.Equal(c.Entries(), got.Entries())

	p := armory.NewPresets()
	p.Add(armory.MustAttachment("Lightweight Barrel", armory.CategoryBarrel, armory.Mods{Recoil: -5, Handling: 10, Stability: -3}))
	s.Require().NoError(s.backend.SavePresets(s.ctx, p))
	gotP, err := s.backend.LoadPresets(s.ctx)
	s.Require().NoError(err)
	s.Equal(p.All(), gotP.All())
}

func (s *RedisBackendTestSuite) TestLoadCatalogCorrupt() {
	s.Require().NoError(s.mr.Set(prefix+"catalog", "not json"))
	_, err := s.backend.LoadCatalog(s.ctx)
	s.Error(err)
}

func (s *RedisBackendTestSuite) TestOpen() {
	b, err := redis.Open(s.ctx, config.RedisConfig{Addr: s.mr.Addr(), KeyPrefix: prefix}, zap.NewNop())
	s.Require().NoError(err)
	s.NoError(b.Close())

	_, err = redis.Open(s.ctx, config.RedisConfig{}, zap.NewNop())
	s.Error(err)
}

func TestRedisBackendSuite(t *testing.T) {
	suite.Run(t, new(RedisBackendTestSuite))
}
