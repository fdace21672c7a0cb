package handlers

import (
	"net/http"
	"os"

	"feedwall/internal/store"
	"feedwall/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	posts *store.PostStore
	// 入库前是否清洗帖子正文（SANITIZE_CONTENT）。
	// 嵌入组件按约定原样插入正文，默认关闭以保持既有行为
	sanitize bool
}

func NewPostHandler(posts *store.PostStore) *PostHandler {
	return &PostHandler{
		posts:    posts,
		sanitize: os.Getenv("SANITIZE_CONTENT") == "true",
	}
}

// addPostRequest 录入帖子的请求体。
// 必填字段用指针区分"没传"和"传了空值"：只有缺失才算校验失败
type addPostRequest struct {
	Platform     *string `json:"platform"`
	PostID       *string `json:"post_id"`
	Content      *string `json:"content"`
	Author       *string `json:"author"`
	AuthorAvatar string  `json:"author_avatar"`
	MediaURL     string  `json:"media_url"`
	MediaType    *string `json:"media_type"`
	PostURL      string  `json:"post_url"`
	PostedAt     *string `json:"posted_at"`
}

// moderateRequest 审核请求体，显式传 false 同样会被应用
type moderateRequest struct {
	IsApproved *bool `json:"is_approved"`
	IsHidden   *bool `json:"is_hidden"`
}

// List 获取 Feed 下所有可见帖子
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.ListForFeed(utils.StringToUint(c.Param("id")))
	if err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Add 向 Feed 手动录入一条帖子
func (h *PostHandler) Add(c *gin.Context) {
	var req addPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if h.sanitize && req.Content != nil {
		cleaned := utils.SanitizeContent(*req.Content)
		req.Content = &cleaned
	}

	post, err := h.posts.Add(utils.StringToUint(c.Param("id")), store.PostInput{
		Platform:     req.Platform,
		PostID:       req.PostID,
		Content:      req.Content,
		Author:       req.Author,
		AuthorAvatar: req.AuthorAvatar,
		MediaURL:     req.MediaURL,
		MediaType:    req.MediaType,
		PostURL:      req.PostURL,
		PostedAt:     req.PostedAt,
	})
	if err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// Moderate 审核帖子（通过/隐藏）
func (h *PostHandler) Moderate(c *gin.Context) {
	var req moderateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.posts.Moderate(
		utils.StringToUint(c.Param("id")),
		utils.StringToUint(c.Param("post_id")),
		req.IsApproved,
		req.IsHidden,
	)
	if err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}
