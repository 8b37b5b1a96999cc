package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"scrap-collection/backend/internal/dto"
	"scrap-collection/backend/internal/service"
	"scrap-collection/backend/pkg/response"
)

// CollectorHandler 员工（回收员）模块 HTTP 处理器
type CollectorHandler struct {
	collectorSvc service.CollectorService
}

// NewCollectorHandler 创建 CollectorHandler
func NewCollectorHandler(collectorSvc service.CollectorService) *CollectorHandler {
	return &CollectorHandler{collectorSvc: collectorSvc}
}

// ListEmployees 获取员工列表
// GET /api/v1/employees
func (h *CollectorHandler) ListEmployees(c *gin.Context) {
	var req dto.EmployeeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	employees, total, err := h.collectorSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{
		"list":       employees,
		"pagination": response.PageMeta(total, req.GetPage(), req.GetLimit()),
	})
}

// GetEmployee 获取员工详情
// GET /api/v1/employees/:id
func (h *CollectorHandler) GetEmployee(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "员工ID不能为空")
		return
	}

	emp, err := h.collectorSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleCollectorError(c, err)
		return
	}

	response.OK(c, emp)
}

// CreateEmployee 创建员工
// POST /api/v1/employees
func (h *CollectorHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	emp, err := h.collectorSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleCollectorError(c, err)
		return
	}

	response.Created(c, emp)
}

// UpdateEmployee 更新员工
// PUT /api/v1/employees/:id
func (h *CollectorHandler) UpdateEmployee(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "员工ID不能为空")
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	emp, err := h.collectorSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleCollectorError(c, err)
		return
	}

	response.OK(c, emp)
}

// UpdateEmployeeStatus 切换员工状态
// PATCH /api/v1/employees/:id/status
func (h *CollectorHandler) UpdateEmployeeStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "员工ID不能为空")
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	emp, err := h.collectorSvc.UpdateStatus(c.Request.Context(), id, *req.IsActive, callerID)
	if err != nil {
		h.handleCollectorError(c, err)
		return
	}

	response.OK(c, emp)
}

// DeleteEmployee 删除员工
// DELETE /api/v1/employees/:id
func (h *CollectorHandler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "员工ID不能为空")
		return
	}

	if err := h.collectorSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleCollectorError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleCollectorError 统一处理员工模块业务错误
func (h *CollectorHandler) handleCollectorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "员工不存在")
	case errors.Is(err, service.ErrEmailTaken):
		response.BadRequest(c, 12002, "邮箱已被使用")
	default:
		response.InternalError(c)
	}
}
