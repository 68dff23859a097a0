package cataloging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	posterdomain "github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/poster/domain"
	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/poster/mocks"
	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
	"github.com/poka-net3/kitchen-dashboard-api/internal/domain"
	"github.com/poka-net3/kitchen-dashboard-api/pkg/outcome"
)

func testConfig() *config.Config {
	return &config.Config{
		Poster: config.Poster{PageSize: 2},
		Cache:  config.Cache{CatalogTTL: time.Hour},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestService_Catalog_ServesCachedSnapshotWithinTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPoster := mocks.NewMockPosterIntegrator(ctrl)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	service := NewService(testConfig(), mockPoster).WithClock(fixedClock(now))

	// First call fetches: one short page per kind.
	mockPoster.EXPECT().HasToken().Return(true)
	mockPoster.EXPECT().
		CatalogPage(gomock.Any(), posterdomain.KindProducts, 1).
		Return([]domain.Product{{ID: 10, CategoryID: 4, UnitCost: 25.0}}, 1, nil)
	mockPoster.EXPECT().
		CatalogPage(gomock.Any(), posterdomain.KindBatchTickets, 1).
		Return([]domain.Product{{ID: 20, CategoryID: 7, UnitCost: 40.0}}, 1, nil)

	first := service.Catalog(context.Background())
	assert.Len(t, first.Products, 2)
	assert.Equal(t, now, first.CapturedAt)

	// Second call within the TTL must not hit upstream at all.
	second := service.Catalog(context.Background())
	assert.Equal(t, first, second)
}

func TestService_Catalog_RefreshesAfterTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPoster := mocks.NewMockPosterIntegrator(ctrl)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	clock := now
	service := NewService(testConfig(), mockPoster).WithClock(func() time.Time { return clock })

	mockPoster.EXPECT().HasToken().Return(true).Times(2)
	mockPoster.EXPECT().
		CatalogPage(gomock.Any(), posterdomain.KindProducts, 1).
		Return([]domain.Product{{ID: 10, CategoryID: 4}}, 1, nil).
		Times(2)
	mockPoster.EXPECT().
		CatalogPage(gomock.Any(), posterdomain.KindBatchTickets, 1).
		Return([]domain.Product{}, 0, nil).
		Times(2)

	service.Catalog(context.Background())

	clock = now.Add(time.Hour + time.Second)
	refreshed := service.Catalog(context.Background())
	assert.Equal(t, clock, refreshed.CapturedAt)
}

func TestService_ForceRefresh_MissingTokenKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPoster := mocks.NewMockPosterIntegrator(ctrl)
	mockPoster.EXPECT().HasToken().Return(false)

	service := NewService(testConfig(), mockPoster)

	snapshot, out := service.ForceRefresh(context.Background())
	assert.True(t, snapshot.Empty())
	assert.Equal(t, outcome.StatusFailed, out.Status)
	assert.ErrorIs(t, out.Err(), ErrMissingToken)
}

func TestService_ForceRefresh_PagesUntilShortPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPoster := mocks.NewMockPosterIntegrator(ctrl)
	service := NewService(testConfig(), mockPoster)

	mockPoster.EXPECT().HasToken().Return(true)

	// Page size is 2: a full first page forces a second fetch.
	mockPoster.EXPECT().
		CatalogPage(gomock.Any(), posterdomain.KindProducts, 1).
		Return([]domain.Product{
			{ID: 10, CategoryID: 4},
			{ID: 11, CategoryID: 7},
		}, 2, nil)
	mockPoster.EXPECT().
		CatalogPage(gomock.Any(), posterdomain.KindProducts, 2).
		Return([]domain.Product{{ID: 12, CategoryID: 9}}, 1, nil)
	mockPoster.EXPECT().
		CatalogPage(gomock.Any(), posterdomain.KindBatchTickets, 1).
		Return([]domain.Product{}, 0, nil)

	snapshot, out := service.ForceRefresh(context.Background())
	assert.True(t, out.IsOK())
	assert.Len(t, snapshot.Products, 3)

	product, known := snapshot.Lookup(12)
	assert.True(t, known)
	assert.Equal(t, 9, product.CategoryID)
}

func TestService_ForceRefresh_SkippedEntryStillCountsTowardPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPoster := mocks.NewMockPosterIntegrator(ctrl)
	service := NewService(testConfig(), mockPoster)

	mockPoster.EXPECT().HasToken().Return(true)

	// Page 1 held a full two raw entries but one was malformed and
	// skipped during parsing. The parsed slice is short of the page
	// size; pagination must continue to page 2 regardless.
	mockPoster.EXPECT().
		CatalogPage(gomock.Any(), posterdomain.KindProducts, 1).
		Return([]domain.Product{{ID: 10, CategoryID: 4}}, 2, nil)
	mockPoster.EXPECT().
		CatalogPage(gomock.Any(), posterdomain.KindProducts, 2).
		Return([]domain.Product{{ID: 12, CategoryID: 9}}, 1, nil)
	mockPoster.EXPECT().
		CatalogPage(gomock.Any(), posterdomain.KindBatchTickets, 1).
		Return([]domain.Product{}, 0, nil)

	snapshot, out := service.ForceRefresh(context.Background())
	assert.True(t, out.IsOK())
	assert.Len(t, snapshot.Products, 2)

	_, known := snapshot.Lookup(12)
	assert.True(t, known)
}

func TestService_ForceRefresh_PartialFailureKeepsParsedEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPoster := mocks.NewMockPosterIntegrator(ctrl)
	service := NewService(testConfig(), mockPoster)

	mockPoster.EXPECT().HasToken().Return(true)
	mockPoster.EXPECT().
		CatalogPage(gomock.Any(), posterdomain.KindProducts, 1).
		Return([]domain.Product{{ID: 10, CategoryID: 4}}, 1, nil)
	mockPoster.EXPECT().
		CatalogPage(gomock.Any(), posterdomain.KindBatchTickets, 1).
		Return(nil, 0, assert.AnError)

	snapshot, out := service.ForceRefresh(context.Background())
	assert.Equal(t, outcome.StatusPartial, out.Status)
	assert.Len(t, snapshot.Products, 1)
}

func TestService_ForceRefresh_TotalFailureKeepsPreviousSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPoster := mocks.NewMockPosterIntegrator(ctrl)
	service := NewService(testConfig(), mockPoster)

	// Seed a good snapshot.
	mockPoster.EXPECT().HasToken().Return(true)
	mockPoster.EXPECT().
		CatalogPage(gomock.Any(), posterdomain.KindProducts, 1).
		Return([]domain.Product{{ID: 10, CategoryID: 4}}, 1, nil)
	mockPoster.EXPECT().
		CatalogPage(gomock.Any(), posterdomain.KindBatchTickets, 1).
		Return([]domain.Product{}, 0, nil)

	seeded, out := service.ForceRefresh(context.Background())
	assert.True(t, out.IsOK())
	assert.Len(t, seeded.Products, 1)

	// Both kinds fail on the next refresh: the old snapshot survives.
	mockPoster.EXPECT().HasToken().Return(true)
	mockPoster.EXPECT().
		CatalogPage(gomock.Any(), posterdomain.KindProducts, 1).
		Return(nil, 0, assert.AnError)
	mockPoster.EXPECT().
		CatalogPage(gomock.Any(), posterdomain.KindBatchTickets, 1).
		Return(nil, 0, assert.AnError)

	snapshot, out := service.ForceRefresh(context.Background())
	assert.Equal(t, outcome.StatusFailed, out.Status)
	assert.Equal(t, seeded, snapshot)
}
