package errors

import "errors"

// ErrStaleRecord 记录在读取后已被其他操作删除或修改
var ErrStaleRecord = errors.New("记录已被其他操作修改，请刷新后重试")
