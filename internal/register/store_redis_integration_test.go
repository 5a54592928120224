//go:build integration

package register_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"prisonerprofile/internal/register"
	"prisonerprofile/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *register.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = register.NewRedisStore(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestEmptyCacheReturnsEmptySlice() {
	ctx := context.Background()

	prisons, err := s.store.GetActivePrisons(ctx)

	s.Require().NoError(err)
	s.NotNil(prisons)
	s.Empty(prisons)
}

func (s *RedisStoreSuite) TestRoundTripPersistsOnlyActivePrisons() {
	ctx := context.Background()
	input := []register.Prison{
		{PrisonID: "MDI", PrisonName: "Moorland (HMP & YOI)", Active: true},
		{PrisonID: "LEI", PrisonName: "Leeds (HMP)", Active: true},
		{PrisonID: "XXI", PrisonName: "Closed (HMP)", Active: false},
	}

	s.Require().NoError(s.store.SetActivePrisons(ctx, input, 1))

	prisons, err := s.store.GetActivePrisons(ctx)
	s.Require().NoError(err)
	s.Equal([]register.Prison{
		{PrisonID: "MDI", PrisonName: "Moorland (HMP & YOI)", Active: true},
		{PrisonID: "LEI", PrisonName: "Leeds (HMP)", Active: true},
	}, prisons)

	// Idempotent: a second read without an intervening write returns the
	// same snapshot.
	again, err := s.store.GetActivePrisons(ctx)
	s.Require().NoError(err)
	s.Equal(prisons, again)
}

func (s *RedisStoreSuite) TestSnapshotCarriesDayGranularityTTL() {
	ctx := context.Background()

	s.Require().NoError(s.store.SetActivePrisons(ctx, []register.Prison{
		{PrisonID: "MDI", PrisonName: "Moorland (HMP & YOI)", Active: true},
	}, 1))

	ttl := s.redis.Client.TTL(ctx, "register:prisons:active").Val()
	s.Greater(ttl, 23*time.Hour)
	s.LessOrEqual(ttl, 24*time.Hour)
}

func (s *RedisStoreSuite) TestRefreshOverwritesWholeSnapshot() {
	ctx := context.Background()

	s.Require().NoError(s.store.SetActivePrisons(ctx, []register.Prison{
		{PrisonID: "MDI", PrisonName: "Moorland (HMP & YOI)", Active: true},
	}, 1))
	s.Require().NoError(s.store.SetActivePrisons(ctx, []register.Prison{
		{PrisonID: "LEI", PrisonName: "Leeds (HMP)", Active: true},
	}, 1))

	prisons, err := s.store.GetActivePrisons(ctx)
	s.Require().NoError(err)
	s.Equal([]register.Prison{{PrisonID: "LEI", PrisonName: "Leeds (HMP)", Active: true}}, prisons)
}
