package service

import (
	"go.uber.org/zap"

	"scrap-collection/backend/config"
	"scrap-collection/backend/internal/repository"
	"scrap-collection/backend/pkg/jwt"
	"scrap-collection/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth        AuthService
	Collector   CollectorService
	Crew        CrewService
	VehicleName VehicleNameService
	ScrapYard   ScrapYardService
	Assignment  AssignmentService
	Export      ExportService
}

// NewService 创建 Service 聚合
// rdb 允许为 nil（Redis 不可用时相关功能降级）
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Collector:   NewCollectorService(repo, logger),
		Crew:        NewCrewService(repo, logger),
		VehicleName: NewVehicleNameService(repo, rdb, logger),
		ScrapYard:   NewScrapYardService(repo, logger),
		Assignment:  NewAssignmentService(repo, logger),
		Export:      NewExportService(repo, logger),
	}
}
