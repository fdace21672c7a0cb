package handlers

import (
	"net/http"

	"feedwall/internal/services"
	"feedwall/internal/store"
	"feedwall/internal/utils"

	"github.com/gin-gonic/gin"
)

const embedInstructions = "Copy and paste this code into your website where you want the social media feed to appear."

type EmbedHandler struct {
	feeds *store.FeedStore
	embed *services.EmbedService
}

func NewEmbedHandler(feeds *store.FeedStore) *EmbedHandler {
	return &EmbedHandler{
		feeds: feeds,
		embed: services.GetEmbedService(),
	}
}

// Get 生成 Feed 的嵌入代码。片段本身只含 feed id，帖子由页面渲染时实时拉取
func (h *EmbedHandler) Get(c *gin.Context) {
	feedID := utils.StringToUint(c.Param("id"))
	if _, err := h.feeds.GetByID(feedID); err != nil {
		StoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"feed_id":      feedID,
		"embed_code":   h.embed.EmbedCode(feedID),
		"instructions": embedInstructions,
	})
}
