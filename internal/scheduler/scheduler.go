package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"scrap-collection/backend/config"
	"scrap-collection/backend/internal/repository"
)

// Scheduler 后台定时任务调度器
//
// 目前仅承载一个任务：巡检并停用主体（回收员/班组）已失效的活跃分配，
// 保证停用主体不会继续挂着可用的车辆与回收站绑定。
type Scheduler struct {
	cron   *cron.Cron
	cfg    *config.SweepConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// New 创建调度器实例；cron 表达式含秒字段
func New(cfg *config.SweepConfig, repo *repository.Repository, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		cfg:    cfg,
		repo:   repo,
		logger: logger,
	}
}

// Start 注册并启动定时任务；配置关闭时直接返回
func (s *Scheduler) Start() error {
	if !s.cfg.Enabled {
		s.logger.Info("失效分配巡检已关闭")
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.Cron, s.sweepStaleAssignments); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("失效分配巡检已启动", zap.String("cron", s.cfg.Cron))
	return nil
}

// Stop 停止调度并等待在途任务完成
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("定时任务调度器已停止")
}

func (s *Scheduler) sweepStaleAssignments() {
	affected, err := s.repo.Assignment.DeactivateStale(context.Background())
	if err != nil {
		s.logger.Error("失效分配巡检失败", zap.Error(err))
		return
	}
	if affected > 0 {
		s.logger.Info("失效分配已停用", zap.Int64("count", affected))
	}
}
