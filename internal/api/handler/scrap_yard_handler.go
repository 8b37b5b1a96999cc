package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"scrap-collection/backend/internal/dto"
	"scrap-collection/backend/internal/service"
	"scrap-collection/backend/pkg/response"
)

// ScrapYardHandler 废品站模块 HTTP 处理器
type ScrapYardHandler struct {
	yardSvc service.ScrapYardService
}

// NewScrapYardHandler 创建 ScrapYardHandler
func NewScrapYardHandler(yardSvc service.ScrapYardService) *ScrapYardHandler {
	return &ScrapYardHandler{yardSvc: yardSvc}
}

// ListScrapYards 获取废品站列表
// GET /api/v1/scrap-yards?status=active
func (h *ScrapYardHandler) ListScrapYards(c *gin.Context) {
	var req dto.ScrapYardListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	yards, total, err := h.yardSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{
		"list":       yards,
		"pagination": response.PageMeta(total, req.GetPage(), req.GetLimit()),
	})
}

// GetScrapYard 获取废品站详情
// GET /api/v1/scrap-yards/:id
func (h *ScrapYardHandler) GetScrapYard(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "废品站ID不能为空")
		return
	}

	yard, err := h.yardSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleYardError(c, err)
		return
	}

	response.OK(c, yard)
}

// CreateScrapYard 创建废品站
// POST /api/v1/scrap-yards
func (h *ScrapYardHandler) CreateScrapYard(c *gin.Context) {
	var req dto.CreateScrapYardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	yard, err := h.yardSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleYardError(c, err)
		return
	}

	response.Created(c, yard)
}

// UpdateScrapYard 更新废品站
// PUT /api/v1/scrap-yards/:id
func (h *ScrapYardHandler) UpdateScrapYard(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "废品站ID不能为空")
		return
	}

	var req dto.UpdateScrapYardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	yard, err := h.yardSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleYardError(c, err)
		return
	}

	response.OK(c, yard)
}

// DeleteScrapYard 删除废品站
// DELETE /api/v1/scrap-yards/:id
func (h *ScrapYardHandler) DeleteScrapYard(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "废品站ID不能为空")
		return
	}

	if err := h.yardSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleYardError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleYardError 统一处理废品站模块业务错误
func (h *ScrapYardHandler) handleYardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScrapYardNotFound):
		response.NotFound(c, 15001, "废品站不存在")
	default:
		response.InternalError(c)
	}
}
