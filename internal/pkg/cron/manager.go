package cron

import (
	"Newsroom/internal/config"
	"Newsroom/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine    *cron.Cron
	outboxJob *job.ReviewOutboxJob
	spec      string
}

func NewCronManager(outboxJob *job.ReviewOutboxJob, cfg config.OutboxConfig) *Manager {
	return &Manager{
		engine:    cron.New(cron.WithSeconds()),
		outboxJob: outboxJob,
		spec:      cfg.Cron,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.spec, s.outboxJob); err != nil {
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
	s.engine.Stop()
}
