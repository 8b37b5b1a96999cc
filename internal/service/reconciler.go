package service

import (
	"errors"

	"scrap-collection/backend/internal/model"
)

// ── 分配表单协调逻辑 ──
//
// 表单一次提交携带的主体选择可能来自三个来源：本次表单输入、调用方预先
// 锁定的上下文主体、以及编辑场景下已持久化的旧值。三者按此优先级合并，
// 其中旧值回退受"另一侧字段未被本次表单占用"的条件约束。
// 该函数为纯函数：校验全部完成后才允许持久层介入。

// 分配主体类型
const (
	SubjectCollector = "collector"
	SubjectCrew      = "crew"
)

// ── 校验错误 ──

var (
	ErrCollectorRequired = errors.New("请选择回收员")
	ErrCrewRequired      = errors.New("请选择班组")
	ErrResourceRequired  = errors.New("请至少选择一项分配内容")
)

// ReconcileAction 协调结果动作
type ReconcileAction int

const (
	ActionCreate ReconcileAction = iota
	ActionUpdate
)

// ReconcileInput 协调输入
// 所有可选字段均已在 DTO 边界完成哨兵值转换：nil 即未选择
type ReconcileInput struct {
	SubjectType        string // 当前激活的主体页签：collector | crew
	FormCollectorID    *string
	FormCrewID         *string
	FormVehicleNameID  *string
	FormScrapYardID    *string
	ContextCollectorID *string // 行内操作预先锁定的主体
	ContextCrewID      *string
	Existing           *model.CollectorAssignment // 编辑时的已有分配
}

// CreatePayload 创建载荷
// CollectorID 与 CrewID 保证二选一；资源字段 nil 表示整键省略
type CreatePayload struct {
	CollectorID   *string
	CrewID        *string
	VehicleNameID *string
	ScrapYardID   *string
}

// UpdatePayload 更新载荷
// 只触及资源绑定；nil 表示显式置空（清除绑定），主体字段从不出现
type UpdatePayload struct {
	VehicleNameID *string
	ScrapYardID   *string
}

// ReconcileDecision 协调决策
type ReconcileDecision struct {
	Action       ReconcileAction
	AssignmentID string         // Action=Update 时为目标分配 ID
	Create       *CreatePayload // Action=Create 时非 nil
	Update       *UpdatePayload // Action=Update 时非 nil
}

// Reconcile 根据表单会话状态计算创建或更新决策
func Reconcile(in ReconcileInput) (*ReconcileDecision, error) {
	collectorID := resolveSubjectID(in.FormCollectorID, in.ContextCollectorID, in.FormCrewID, existingCollectorID(in.Existing))
	crewID := resolveSubjectID(in.FormCrewID, in.ContextCrewID, in.FormCollectorID, existingCrewID(in.Existing))

	// 两侧均未解析出主体 → 按激活页签报错
	if collectorID == nil && crewID == nil {
		if in.SubjectType == SubjectCrew {
			return nil, ErrCrewRequired
		}
		return nil, ErrCollectorRequired
	}

	// 两侧同时解析出主体时由激活页签裁决，保证 XOR 不变量
	if collectorID != nil && crewID != nil {
		if in.SubjectType == SubjectCrew {
			collectorID = nil
		} else {
			crewID = nil
		}
	}

	if in.Existing != nil {
		return &ReconcileDecision{
			Action:       ActionUpdate,
			AssignmentID: in.Existing.AssignmentID,
			Update: &UpdatePayload{
				VehicleNameID: in.FormVehicleNameID,
				ScrapYardID:   in.FormScrapYardID,
			},
		}, nil
	}

	// 创建要求至少绑定一项资源
	if in.FormVehicleNameID == nil && in.FormScrapYardID == nil {
		return nil, ErrResourceRequired
	}

	return &ReconcileDecision{
		Action: ActionCreate,
		Create: &CreatePayload{
			CollectorID:   collectorID,
			CrewID:        crewID,
			VehicleNameID: in.FormVehicleNameID,
			ScrapYardID:   in.FormScrapYardID,
		},
	}, nil
}

// resolveSubjectID 三路合并单侧主体 ID
// 优先级：表单值 > 上下文值 > 旧值；旧值回退仅在本次表单未提供对侧 ID 时生效
func resolveSubjectID(formVal, contextVal, competingFormVal, priorVal *string) *string {
	if formVal != nil {
		return formVal
	}
	if contextVal != nil {
		return contextVal
	}
	if competingFormVal == nil {
		return priorVal
	}
	return nil
}

func existingCollectorID(a *model.CollectorAssignment) *string {
	if a == nil {
		return nil
	}
	return a.CollectorID
}

func existingCrewID(a *model.CollectorAssignment) *string {
	if a == nil {
		return nil
	}
	return a.CrewID
}
