package handler

import "scrap-collection/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth        *AuthHandler
	Collector   *CollectorHandler
	Crew        *CrewHandler
	VehicleName *VehicleNameHandler
	ScrapYard   *ScrapYardHandler
	Assignment  *AssignmentHandler
	Export      *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		Collector:   NewCollectorHandler(svc.Collector),
		Crew:        NewCrewHandler(svc.Crew),
		VehicleName: NewVehicleNameHandler(svc.VehicleName),
		ScrapYard:   NewScrapYardHandler(svc.ScrapYard),
		Assignment:  NewAssignmentHandler(svc.Assignment),
		Export:      NewExportHandler(svc.Export),
	}
}
