package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"scrap-collection/backend/internal/dto"
	"scrap-collection/backend/internal/service"
	"scrap-collection/backend/pkg/response"
)

// VehicleNameHandler 车辆模块 HTTP 处理器
type VehicleNameHandler struct {
	vehicleSvc service.VehicleNameService
}

// NewVehicleNameHandler 创建 VehicleNameHandler
func NewVehicleNameHandler(vehicleSvc service.VehicleNameService) *VehicleNameHandler {
	return &VehicleNameHandler{vehicleSvc: vehicleSvc}
}

// ListVehicleNames 获取车辆列表
// GET /api/v1/vehicle-names
func (h *VehicleNameHandler) ListVehicleNames(c *gin.Context) {
	var req dto.VehicleNameListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	vehicles, total, err := h.vehicleSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{
		"list":       vehicles,
		"pagination": response.PageMeta(total, req.GetPage(), req.GetLimit()),
	})
}

// GetVehicleName 获取车辆详情
// GET /api/v1/vehicle-names/:id
func (h *VehicleNameHandler) GetVehicleName(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "车辆ID不能为空")
		return
	}

	vehicle, err := h.vehicleSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleVehicleError(c, err)
		return
	}

	response.OK(c, vehicle)
}

// CreateVehicleName 创建车辆
// POST /api/v1/vehicle-names
func (h *VehicleNameHandler) CreateVehicleName(c *gin.Context) {
	var req dto.CreateVehicleNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleVehicleError(c, err)
		return
	}

	response.Created(c, vehicle)
}

// UpdateVehicleName 更新车辆
// PUT /api/v1/vehicle-names/:id
func (h *VehicleNameHandler) UpdateVehicleName(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "车辆ID不能为空")
		return
	}

	var req dto.UpdateVehicleNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleVehicleError(c, err)
		return
	}

	response.OK(c, vehicle)
}

// DeleteVehicleName 删除车辆
// DELETE /api/v1/vehicle-names/:id
func (h *VehicleNameHandler) DeleteVehicleName(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "车辆ID不能为空")
		return
	}

	if err := h.vehicleSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleVehicleError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleVehicleError 统一处理车辆模块业务错误
func (h *VehicleNameHandler) handleVehicleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVehicleNameNotFound):
		response.NotFound(c, 14001, "车辆不存在")
	default:
		response.InternalError(c)
	}
}
