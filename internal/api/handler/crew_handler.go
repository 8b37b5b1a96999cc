package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"scrap-collection/backend/internal/dto"
	"scrap-collection/backend/internal/service"
	"scrap-collection/backend/pkg/response"
)

// CrewHandler 班组模块 HTTP 处理器
type CrewHandler struct {
	crewSvc service.CrewService
}

// NewCrewHandler 创建 CrewHandler
func NewCrewHandler(crewSvc service.CrewService) *CrewHandler {
	return &CrewHandler{crewSvc: crewSvc}
}

// ListCrews 获取班组列表
// GET /api/v1/crews
func (h *CrewHandler) ListCrews(c *gin.Context) {
	var req dto.CrewListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	crews, total, err := h.crewSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{
		"list":       crews,
		"pagination": response.PageMeta(total, req.GetPage(), req.GetLimit()),
	})
}

// GetCrew 获取班组详情
// GET /api/v1/crews/:id
func (h *CrewHandler) GetCrew(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "班组ID不能为空")
		return
	}

	crew, err := h.crewSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleCrewError(c, err)
		return
	}

	response.OK(c, crew)
}

// CreateCrew 创建班组
// POST /api/v1/crews
func (h *CrewHandler) CreateCrew(c *gin.Context) {
	var req dto.CreateCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	crew, err := h.crewSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleCrewError(c, err)
		return
	}

	response.Created(c, crew)
}

// UpdateCrew 更新班组
// PUT /api/v1/crews/:id
func (h *CrewHandler) UpdateCrew(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "班组ID不能为空")
		return
	}

	var req dto.UpdateCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	crew, err := h.crewSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleCrewError(c, err)
		return
	}

	response.OK(c, crew)
}

// UpdateCrewStatus 切换班组状态
// PATCH /api/v1/crews/:id/status
func (h *CrewHandler) UpdateCrewStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "班组ID不能为空")
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

	crew, err := h.crewSvc.UpdateStatus(c.Request.Context(), id, *req.IsActive, callerID)
	if err != nil {
		h.handleCrewError(c, err)
		return
	}

	response.OK(c, crew)
}

// DeleteCrew 删除班组
// DELETE /api/v1/crews/:id
func (h *CrewHandler) DeleteCrew(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "班组ID不能为空")
		return
	}

	if err := h.crewSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleCrewError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleCrewError 统一处理班组模块业务错误
func (h *CrewHandler) handleCrewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCrewNotFound):
		response.NotFound(c, 13001, "班组不存在")
	default:
		response.InternalError(c)
	}
}
