package utils

import (
	"strconv"
)

// StringToUint converts string to uint, returns 0 if error
// 路径参数不是数字时返回 0，后续查询命中不了任何记录，效果即 404
func StringToUint(s string) uint {
	i, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(i)
}
