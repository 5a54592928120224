package register

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"prisonerprofile/pkg/domain"
)

// =============================================================================
// Register Service Test Suite
// =============================================================================
// The service owns the cache-aside fallback decisions (read failure falls
// through to the API, write failure is swallowed, API failure degrades to
// not-found). Those branches are exercised here with fakes; the Redis store
// itself is covered by the integration-tagged suite.

type fakeCache struct {
	prisons []Prison
	getErr  error
	setErr  error

	setCalls     int
	lastSet      []Prison
	lastDuration int
}

func (f *fakeCache) GetActivePrisons(context.Context) ([]Prison, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.prisons == nil {
		return []Prison{}, nil
	}
	return f.prisons, nil
}

func (f *fakeCache) SetActivePrisons(_ context.Context, prisons []Prison, durationDays int) error {
	f.setCalls++
	f.lastSet = prisons
	f.lastDuration = durationDays
	return f.setErr
}

type fakeAPI struct {
	prisons []Prison
	err     error
	calls   int
}

func (f *fakeAPI) GetPrisons(context.Context, string) ([]Prison, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.prisons, nil
}

type ServiceSuite struct {
	suite.Suite
	cache *fakeCache
	api   *fakeAPI
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.cache = &fakeCache{}
	s.api = &fakeAPI{}
}

func (s *ServiceSuite) newService() *Service {
	return NewService(s.cache, s.api, slog.New(slog.DiscardHandler))
}

func (s *ServiceSuite) TestPrisonName() {
	ctx := context.Background()
	moorland := Prison{PrisonID: "MDI", PrisonName: "Moorland (HMP & YOI)", Active: true}
	leeds := Prison{PrisonID: "LEI", PrisonName: "Leeds (HMP)", Active: true}
	closed := Prison{PrisonID: "XXI", PrisonName: "Closed (HMP)", Active: false}

	s.Run("cache hit returns immediately without an API call", func() {
		s.SetupTest()
		s.cache.prisons = []Prison{moorland, leeds}

		got, ok := s.newService().PrisonName(ctx, "tok", domain.PrisonID("MDI"))

		s.True(ok)
		s.Equal(moorland, got)
		s.Zero(s.api.calls)
		s.Zero(s.cache.setCalls)
	})

	s.Run("cache miss falls through and writes back only active prisons", func() {
		s.SetupTest()
		s.api.prisons = []Prison{moorland, leeds, closed}

		got, ok := s.newService().PrisonName(ctx, "tok", domain.PrisonID("LEI"))

		s.True(ok)
		s.Equal(leeds, got)
		s.Equal(1, s.api.calls)
		s.Equal(1, s.cache.setCalls)
		s.Equal([]Prison{moorland, leeds}, s.cache.lastSet)
		s.Equal(1, s.cache.lastDuration)
	})

	s.Run("cache read failure falls through to the API", func() {
		s.SetupTest()
		s.cache.getErr = errors.New("redis: connection refused")
		s.api.prisons = []Prison{moorland}

		got, ok := s.newService().PrisonName(ctx, "tok", domain.PrisonID("MDI"))

		s.True(ok)
		s.Equal(moorland, got)
		s.Equal(1, s.api.calls)
	})

	s.Run("cache write failure is swallowed", func() {
		s.SetupTest()
		s.cache.setErr = errors.New("redis: OOM")
		s.api.prisons = []Prison{moorland}

		got, ok := s.newService().PrisonName(ctx, "tok", domain.PrisonID("MDI"))

		s.True(ok)
		s.Equal(moorland, got)
	})

	s.Run("inactive prison is not resolved", func() {
		s.SetupTest()
		s.api.prisons = []Prison{moorland, closed}

		_, ok := s.newService().PrisonName(ctx, "tok", domain.PrisonID("XXI"))

		s.False(ok)
	})

	s.Run("unknown prison returns not-found, never an error", func() {
		s.SetupTest()
		s.api.prisons = []Prison{moorland}

		_, ok := s.newService().PrisonName(ctx, "tok", domain.PrisonID("ZZZ"))

		s.False(ok)
	})

	s.Run("API failure degrades to not-found", func() {
		s.SetupTest()
		s.api.err = errors.New("register api down")

		_, ok := s.newService().PrisonName(ctx, "tok", domain.PrisonID("MDI"))

		s.False(ok)
		s.Zero(s.cache.setCalls)
	})

	s.Run("nil cache behaves as a permanent miss", func() {
		s.SetupTest()
		s.api.prisons = []Prison{moorland}
		svc := NewService(nil, s.api, slog.New(slog.DiscardHandler))

		got, ok := svc.PrisonName(ctx, "tok", domain.PrisonID("MDI"))

		s.True(ok)
		s.Equal(moorland, got)
	})
}
