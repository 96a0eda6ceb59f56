package cron

import (
	"Boomer/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine       *cron.Cron
	trendingJob  *job.TrendingJob
	trendingCron string
}

func NewCronManager(trendingJob *job.TrendingJob, trendingCron string) *Manager {
	return &Manager{
		engine:       cron.New(cron.WithSeconds()),
		trendingJob:  trendingJob,
		trendingCron: trendingCron,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.trendingCron, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(s.trendingJob)); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
