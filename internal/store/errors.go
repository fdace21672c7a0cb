package store

import (
	"encoding/json"
	"errors"
)

// ErrNotFound 目标记录不存在（未知的 feed/post 标识）
var ErrNotFound = errors.New("record not found")

// ValidationError 请求缺少必填字段或字段格式非法
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// truthyJSON 按源系统的宽松语义判断一个 JSON 值是否"有内容"：
// 缺失、null、""、0、false、空数组、空对象都视为未提供，部分更新时直接忽略
func truthyJSON(raw []byte) bool {
	if len(raw) == 0 {
		return false
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	}
	return true
}
