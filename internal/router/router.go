package router

import (
	"feedwall/internal/handlers"
	"feedwall/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes 组装存储层与处理器并挂载所有路由。
// 数据库句柄从外部传入，测试时可以换成内存库
func RegisterRoutes(r *gin.Engine, gdb *gorm.DB) {
	feedStore := store.NewFeedStore(gdb)
	postStore := store.NewPostStore(gdb)

	feedHandler := handlers.NewFeedHandler(feedStore)
	postHandler := handlers.NewPostHandler(postStore)
	embedHandler := handlers.NewEmbedHandler(feedStore)

	r.GET("/healthz", handlers.Healthz(gdb)) // 存活探针

	// 业务接口 (API Routes)
	api := r.Group("/api")
	{
		api.GET("/feeds", feedHandler.List)          // 用户的 Feed 列表
		api.POST("/feeds", feedHandler.Create)       // 创建 Feed
		api.GET("/feeds/:id", feedHandler.Get)       // Feed 详情
		api.PUT("/feeds/:id", feedHandler.Update)    // 部分更新 Feed
		api.DELETE("/feeds/:id", feedHandler.Delete) // 软删除 Feed

		api.GET("/feeds/:id/posts", postHandler.List)                       // Feed 下可见帖子
		api.POST("/feeds/:id/posts", postHandler.Add)                       // 手动录入帖子
		api.PUT("/feeds/:id/posts/:post_id/moderate", postHandler.Moderate) // 审核帖子

		api.GET("/feeds/:id/embed", embedHandler.Get) // 生成嵌入代码
	}
}
