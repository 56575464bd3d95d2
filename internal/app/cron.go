package app

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/savioruz/kickmatch/config"
	bookingService "github.com/savioruz/kickmatch/internal/domains/bookings/service"
	venueService "github.com/savioruz/kickmatch/internal/domains/venues/service"
	"github.com/savioruz/kickmatch/pkg/helper"
	"github.com/savioruz/kickmatch/pkg/logger"
)

// Scheduler runs the periodic maintenance jobs.
type Scheduler struct {
	cron     *cron.Cron
	bookings bookingService.BookingService
	venues   venueService.VenueService
	logger   logger.Interface
}

func NewScheduler(b bookingService.BookingService, v venueService.VenueService, cfg *config.Config, l logger.Interface) (*Scheduler, error) {
	s := &Scheduler{
		bookings: b,
		venues:   v,
		logger:   l,
	}

	s.cron = cron.New(
		cron.WithSeconds(),
		cron.WithLocation(helper.Location()),
		cron.WithLogger(cronLogger{l}),
		cron.WithChain(cron.Recover(cronLogger{l}), cron.SkipIfStillRunning(cronLogger{l})),
	)

	if _, err := s.cron.AddFunc(cfg.Schedule.BookingsCompletion, s.completeBookings); err != nil {
		return nil, fmt.Errorf("cron - bookings completion %q: %w", cfg.Schedule.BookingsCompletion, err)
	}

	if _, err := s.cron.AddFunc(cfg.Schedule.SessionsSweep, s.sweepSessions); err != nil {
		return nil, fmt.Errorf("cron - sessions sweep %q: %w", cfg.Schedule.SessionsSweep, err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) completeBookings() {
	if _, err := s.bookings.CompleteElapsed(context.Background()); err != nil {
		s.logger.Error("cron - complete bookings failed: %v", err)
	}
}

func (s *Scheduler) sweepSessions() {
	s.venues.SweepSessions(context.Background())
}

// cronLogger adapts logger.Interface to cron.Logger.
type cronLogger struct {
	l logger.Interface
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debug("cron - %s %v", msg, keysAndValues)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Error("cron - %s: %v %v", msg, err, keysAndValues)
}
