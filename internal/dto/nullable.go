package dto

import "encoding/json"

// ── UI 哨兵值适配 ──
//
// 管理端下拉组件无法表达"未选择"，约定用保留字面量 "none" 占位。
// 该约定只允许出现在 DTO 边界：进入领域逻辑前一律转换为真正的可选值。

const noneSentinel = "none"

// NormalizeFormValue 将表单字段值转换为可选值
// "" 与 "none" 均视为未选择，返回 nil
func NormalizeFormValue(s string) *string {
	if s == "" || s == noneSentinel {
		return nil
	}
	return &s
}

// ── 三态 JSON 字段 ──

// NullString 区分 JSON 字段"未出现 / 显式 null / 有值"三种状态。
// 更新请求中显式 null 表示清除绑定，字段缺席表示保持不变。
type NullString struct {
	Present bool   // 字段是否出现在请求体中
	Valid   bool   // false 且 Present 时表示显式 null
	Value   string
}

// UnmarshalJSON 实现 json.Unmarshaler
func (n *NullString) UnmarshalJSON(b []byte) error {
	n.Present = true
	if string(b) == "null" {
		n.Valid = false
		n.Value = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n.Valid = true
	n.Value = s
	return nil
}

// MarshalJSON 实现 json.Marshaler
func (n NullString) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr 转换为可选值；未出现或显式 null 均返回 nil
func (n NullString) Ptr() *string {
	if !n.Present || !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
