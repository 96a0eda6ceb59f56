package cron

import log "log/slog"

// InitCron 注册并启动定时任务，热门榜单在启动时先预热一次
func InitCron(mgr *Manager) error {
	log.Info("Cron Jobs starting...", "trending_cron", mgr.trendingCron)
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	go mgr.trendingJob.Run()
	mgr.Start()
	return nil
}
