package tables

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/poster/mocks"
	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
	"github.com/poka-net3/kitchen-dashboard-api/internal/domain"
)

type stubBookings struct {
	bookings []domain.Booking
}

func (s stubBookings) TodayBookings(ctx context.Context) []domain.Booking {
	return s.bookings
}

func floorPlanConfig() *config.Config {
	return &config.Config{
		Tables: config.Tables{
			Hall:    []int{1, 2, 3},
			Terrace: []int{7, 10},
		},
	}
}

func TestService_FloorPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPoster := mocks.NewMockPosterIntegrator(ctrl)
	mockPoster.EXPECT().
		OpenTables(gomock.Any(), gomock.Any()).
		Return(map[int]string{
			2: "Олена",
			7: "Андрій",
		}, nil)

	bookings := stubBookings{bookings: []domain.Booking{
		{TableID: "3", CustomerName: "Петренко", GuestCount: 4},
		{TableID: "", CustomerName: "без столу"},
	}}

	service := NewService(floorPlanConfig(), mockPoster, bookings).
		WithClock(func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) })

	plan := service.FloorPlan(context.Background())

	assert.Len(t, plan.Hall, 3)
	assert.Len(t, plan.Terrace, 2)

	free := plan.Hall[0]
	assert.Equal(t, 1, free.ID)
	assert.Equal(t, "Стіл 1", free.Name)
	assert.False(t, free.Occupied)
	assert.Equal(t, "—", free.Waiter)
	assert.Nil(t, free.Reservation)

	occupied := plan.Hall[1]
	assert.True(t, occupied.Occupied)
	assert.Equal(t, "Олена", occupied.Waiter)

	reserved := plan.Hall[2]
	assert.False(t, reserved.Occupied)
	assert.NotNil(t, reserved.Reservation)
	assert.Equal(t, "Петренко", reserved.Reservation.CustomerName)
	assert.Equal(t, 4, reserved.Reservation.GuestCount)

	terrace := plan.Terrace[0]
	assert.True(t, terrace.Occupied)
	assert.Equal(t, "Андрій", terrace.Waiter)
}

func TestService_FloorPlan_OpenTablesFailureServesAllFree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPoster := mocks.NewMockPosterIntegrator(ctrl)
	mockPoster.EXPECT().
		OpenTables(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	service := NewService(floorPlanConfig(), mockPoster, stubBookings{})

	plan := service.FloorPlan(context.Background())

	for _, table := range append(plan.Hall, plan.Terrace...) {
		assert.False(t, table.Occupied)
	}
}
