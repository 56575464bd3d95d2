package app

import (
	"context"
	"errors"
	"testing"

	"github.com/savioruz/kickmatch/config"
	bookingmock "github.com/savioruz/kickmatch/internal/domains/bookings/mock"
	venuemock "github.com/savioruz/kickmatch/internal/domains/venues/mock"
	log "github.com/savioruz/kickmatch/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type schedulerFixture struct {
	bookings *bookingmock.MockBookingService
	venues   *venuemock.MockVenueService
	logger   *log.MockInterface
}

func newSchedulerFixture(t *testing.T) *schedulerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &schedulerFixture{
		bookings: bookingmock.NewMockBookingService(ctrl),
		venues:   venuemock.NewMockVenueService(ctrl),
		logger:   log.NewMockInterface(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	return f
}

func schedule(completion, sweep string) *config.Config {
	return &config.Config{Schedule: config.Schedule{BookingsCompletion: completion, SessionsSweep: sweep}}
}

func TestNewScheduler(t *testing.T) {
	f := newSchedulerFixture(t)

	s, err := NewScheduler(f.bookings, f.venues, schedule("@every 15m", "0 */5 * * * *"), f.logger)
	require.NoError(t, err)
	assert.Len(t, s.cron.Entries(), 2)

	_, err = NewScheduler(f.bookings, f.venues, schedule("every quarter", "@every 5m"), f.logger)
	assert.ErrorContains(t, err, "bookings completion")

	_, err = NewScheduler(f.bookings, f.venues, schedule("@every 15m", "* *"), f.logger)
	assert.ErrorContains(t, err, "sessions sweep")
}

func TestScheduler_Jobs(t *testing.T) {
	t.Run("complete bookings", func(t *testing.T) {
		f := newSchedulerFixture(t)
		s, err := NewScheduler(f.bookings, f.venues, schedule("@every 15m", "@every 5m"), f.logger)
		require.NoError(t, err)

		f.bookings.EXPECT().CompleteElapsed(gomock.Any()).Return(int64(2), nil)
		s.completeBookings()
	})

	t.Run("complete bookings logs failures", func(t *testing.T) {
		f := newSchedulerFixture(t)
		s, err := NewScheduler(f.bookings, f.venues, schedule("@every 15m", "@every 5m"), f.logger)
		require.NoError(t, err)

		f.bookings.EXPECT().CompleteElapsed(gomock.Any()).Return(int64(0), errors.New("connection reset"))
		f.logger.EXPECT().Error(gomock.Any(), gomock.Any()).Times(1)
		s.completeBookings()
	})

	t.Run("sweep sessions", func(t *testing.T) {
		f := newSchedulerFixture(t)
		s, err := NewScheduler(f.bookings, f.venues, schedule("@every 15m", "@every 5m"), f.logger)
		require.NoError(t, err)

		f.venues.EXPECT().SweepSessions(gomock.Any()).DoAndReturn(func(ctx context.Context) int {
			assert.NoError(t, ctx.Err())

			return 1
		})
		s.sweepSessions()
	})
}

func TestScheduler_StartStop(t *testing.T) {
	f := newSchedulerFixture(t)

	s, err := NewScheduler(f.bookings, f.venues, schedule("@every 1h", "@every 1h"), f.logger)
	require.NoError(t, err)

	s.Start()
	s.Stop()
}
