// Package scheduler runs periodic background jobs. The only job today
// logs aggregate usage counts so operators can watch growth without an
// external metrics stack.
package scheduler

import (
	"github.com/dexterminal/api/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type Scheduler struct {
	cron *cron.Cron
	svc  *service.Service
	log  *logrus.Logger
}

// New creates a scheduler over the given service.
func New(svc *service.Service, log *logrus.Logger) *Scheduler {
	return &Scheduler{cron: cron.New(), svc: svc, log: log}
}

// Start registers the stats job with the given cron spec and starts the
// scheduler.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.reportStats); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the scheduler; running jobs finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) reportStats() {
	stats, err := s.svc.Stats()
	if err != nil {
		s.log.Errorf("Failed to collect usage stats: %v", err)
		return
	}
	s.log.Infof("Usage stats: %d users, %d favorites", stats.TotalUsers, stats.TotalFavorites)
}
