package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"scrap-collection/backend/internal/model"
	"scrap-collection/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoAssignments = errors.New("当前组织暂无资源分配记录")
	ErrExportGenerateFail  = errors.New("生成 Excel 文件失败")
)

// 导出时一次性取回全部记录的上限
const exportBatchLimit = 10000

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出当前组织的资源分配清单为 Excel (.xlsx)
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportAssignments 导出资源分配清单为 Excel
	ExportAssignments(ctx context.Context, organizationID string, isActive *bool) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportAssignments — 导出资源分配清单为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet "资源分配"
//   - 列：序号 | 主体类型 | 主体名称 | 车辆 | 回收站 | 所在城市 | 状态 | 创建时间
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportAssignments(ctx context.Context, organizationID string, isActive *bool) (*bytes.Buffer, string, error) {
	// 1. 查询分配记录
	assignments, _, err := s.repo.Assignment.List(ctx, &repository.AssignmentListFilter{
		OrganizationID: organizationID,
		IsActive:       isActive,
		OrderClause:    "collector_assignments.created_at DESC",
		Offset:         0,
		Limit:          exportBatchLimit,
	})
	if err != nil {
		s.logger.Error("查询分配记录失败", zap.Error(err))
		return nil, "", err
	}
	if len(assignments) == 0 {
		return nil, "", ErrExportNoAssignments
	}

	// 2. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "资源分配"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "B", 10)
	f.SetColWidth(sheetName, "C", "C", 18)
	f.SetColWidth(sheetName, "D", "F", 20)
	f.SetColWidth(sheetName, "G", "G", 8)
	f.SetColWidth(sheetName, "H", "H", 20)

	// 样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", "资源分配清单")
	f.MergeCell(sheetName, "A1", "H1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	headers := []string{"序号", "主体类型", "主体名称", "车辆", "回收站", "所在城市", "状态", "创建时间"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, cell(col, 2), h)
	}

	// 数据行
	row := 3
	for i, a := range assignments {
		f.SetCellValue(sheetName, cell("A", row), i+1)
		f.SetCellValue(sheetName, cell("B", row), subjectKindLabel(a.SubjectKind()))
		f.SetCellValue(sheetName, cell("C", row), subjectName(&a))
		f.SetCellValue(sheetName, cell("D", row), vehicleLabel(&a))
		f.SetCellValue(sheetName, cell("E", row), yardLabel(&a))
		f.SetCellValue(sheetName, cell("F", row), cityLabel(&a))
		f.SetCellValue(sheetName, cell("G", row), statusLabel(a.IsActive))
		f.SetCellValue(sheetName, cell("H", row), a.CreatedAt.Format("2006-01-02 15:04"))
		row++
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("资源分配清单_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ── 辅助函数 ──

func subjectKindLabel(kind string) string {
	switch kind {
	case "collector":
		return "回收员"
	case "crew":
		return "班组"
	default:
		return "-"
	}
}

func subjectName(a *model.CollectorAssignment) string {
	if a.Collector != nil {
		return a.Collector.Name
	}
	if a.Crew != nil {
		return a.Crew.Name
	}
	return "-"
}

func vehicleLabel(a *model.CollectorAssignment) string {
	if a.VehicleName != nil {
		return a.VehicleName.Name
	}
	return "-"
}

func yardLabel(a *model.CollectorAssignment) string {
	if a.ScrapYard != nil {
		return a.ScrapYard.Name
	}
	return "-"
}

func cityLabel(a *model.CollectorAssignment) string {
	if a.ScrapYard != nil && a.ScrapYard.City != nil {
		return a.ScrapYard.City.Name
	}
	return "-"
}

func statusLabel(isActive bool) string {
	if isActive {
		return "启用"
	}
	return "停用"
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
