package handlers

import (
	"errors"
	"net/http"

	"feedwall/internal/store"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// JSONError 统一的错误响应格式
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// StoreError 把存储层错误翻译为 HTTP 状态码：
// ValidationError → 400，ErrNotFound → 404，其余按内部错误处理
func StoreError(c *gin.Context, err error) {
	var ve *store.ValidationError
	switch {
	case errors.As(err, &ve):
		JSONError(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, store.ErrNotFound):
		JSONError(c, http.StatusNotFound, "record not found")
	default:
		log.WithError(err).Error("store operation failed")
		JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
