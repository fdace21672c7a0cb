package handlers

import (
	"encoding/json"
	"net/http"

	"feedwall/internal/store"
	"feedwall/internal/utils"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feeds *store.FeedStore
}

func NewFeedHandler(feeds *store.FeedStore) *FeedHandler {
	return &FeedHandler{feeds: feeds}
}

// feedRequest 创建/更新 Feed 的请求体，JSON 结构字段保持原样透传给存储层
type feedRequest struct {
	UserID       uint            `json:"user_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Sources      json.RawMessage `json:"sources"`
	Filters      json.RawMessage `json:"filters"`
	LayoutConfig json.RawMessage `json:"layout_config"`
}

// List 获取用户所有未删除的 Feed
func (h *FeedHandler) List(c *gin.Context) {
	userID := utils.StringToUint(c.Query("user_id"))
	feeds, err := h.feeds.ListByUser(userID)
	if err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, feeds)
}

// Create 创建新 Feed
func (h *FeedHandler) Create(c *gin.Context) {
	var req feedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	feed, err := h.feeds.Create(store.FeedInput{
		UserID:       req.UserID,
		Name:         req.Name,
		Description:  req.Description,
		Sources:      req.Sources,
		Filters:      req.Filters,
		LayoutConfig: req.LayoutConfig,
	})
	if err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feed)
}

// Get 获取单个 Feed，软删除的也能取到
func (h *FeedHandler) Get(c *gin.Context) {
	feed, err := h.feeds.GetByID(utils.StringToUint(c.Param("id")))
	if err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// Update 部分更新 Feed 字段
func (h *FeedHandler) Update(c *gin.Context) {
	var req feedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	feed, err := h.feeds.Update(utils.StringToUint(c.Param("id")), store.FeedInput{
		Name:         req.Name,
		Description:  req.Description,
		Sources:      req.Sources,
		Filters:      req.Filters,
		LayoutConfig: req.LayoutConfig,
	})
	if err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// Delete 软删除 Feed
func (h *FeedHandler) Delete(c *gin.Context) {
	if err := h.feeds.SoftDelete(utils.StringToUint(c.Param("id"))); err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "feed deleted"})
}
