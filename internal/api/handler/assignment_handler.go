package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"scrap-collection/backend/internal/dto"
	"scrap-collection/backend/internal/service"
	"scrap-collection/backend/pkg/response"
)

// AssignmentHandler 资源分配模块 HTTP 处理器
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
}

// NewAssignmentHandler 创建 AssignmentHandler
func NewAssignmentHandler(assignmentSvc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc}
}

// ListAssignments 获取分配列表
// GET /api/v1/collector-assignments
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	var req dto.AssignmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	assignments, total, err := h.assignmentSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{
		"list":       assignments,
		"pagination": response.PageMeta(total, req.GetPage(), req.GetLimit()),
	})
}

// GetAssignment 获取分配详情
// GET /api/v1/collector-assignments/:id
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "分配ID不能为空")
		return
	}

	assignment, err := h.assignmentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, assignment)
}

// CreateAssignment 创建分配
// POST /api/v1/collector-assignments
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	assignment, err := h.assignmentSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.Created(c, assignment)
}

// UpdateAssignment 更新分配（仅资源绑定与状态，主体不可变）
// PUT /api/v1/collector-assignments/:id
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "分配ID不能为空")
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	assignment, err := h.assignmentSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, assignment)
}

// SubmitAssignment 分配表单提交（由协调逻辑决定创建或更新）
// POST /api/v1/collector-assignments/submit
func (h *AssignmentHandler) SubmitAssignment(c *gin.Context) {
	var req dto.SubmitAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	assignment, err := h.assignmentSvc.Submit(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, assignment)
}

// UpdateAssignmentStatus 切换分配状态
// PATCH /api/v1/collector-assignments/:id/status
func (h *AssignmentHandler) UpdateAssignmentStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "分配ID不能为空")
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

	assignment, err := h.assignmentSvc.UpdateStatus(c.Request.Context(), id, *req.IsActive, callerID)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, assignment)
}

// DeleteAssignment 删除分配
// DELETE /api/v1/collector-assignments/:id
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "分配ID不能为空")
		return
	}

	if err := h.assignmentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleAssignmentError 统一处理分配模块业务错误
func (h *AssignmentHandler) handleAssignmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, 16001, "分配记录不存在")
	case errors.Is(err, service.ErrCollectorRequired):
		response.BadRequest(c, 16002, "请选择回收员")
	case errors.Is(err, service.ErrCrewRequired):
		response.BadRequest(c, 16003, "请选择班组")
	case errors.Is(err, service.ErrResourceRequired):
		response.BadRequest(c, 16004, "请至少选择一项分配内容")
	case errors.Is(err, service.ErrSubjectMissing):
		response.BadRequest(c, 16005, "缺少回收员或班组信息")
	case errors.Is(err, service.ErrSubjectConflict):
		response.BadRequest(c, 16006, "回收员与班组只能二选一")
	default:
		response.InternalError(c)
	}
}
