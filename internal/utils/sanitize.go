package utils

import (
	"github.com/microcosm-cc/bluemonday"
)

var contentPolicy = bluemonday.UGCPolicy()

func init() {
	contentPolicy.AddTargetBlankToFullyQualifiedLinks(true)
	contentPolicy.RequireNoReferrerOnLinks(true)
}

// SanitizeContent 过滤帖子正文里的危险 HTML。
// 嵌入组件会把正文原样插入第三方页面，开启 SANITIZE_CONTENT 后在入库前清洗
func SanitizeContent(content string) string {
	return contentPolicy.Sanitize(content)
}
