package store

import (
	"encoding/json"
	"errors"
	"time"

	"feedwall/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FeedStore Feed 记录的读写入口，持有注入的数据库句柄方便测试替换
type FeedStore struct {
	db *gorm.DB
}

func NewFeedStore(db *gorm.DB) *FeedStore {
	return &FeedStore{db: db}
}

// FeedInput 创建/更新 Feed 的字段集合，JSON 字段保持原始报文原样透传
type FeedInput struct {
	UserID       uint
	Name         string
	Description  string
	Sources      json.RawMessage
	Filters      json.RawMessage
	LayoutConfig json.RawMessage
}

// ListByUser 返回用户所有未删除的 Feed（不排序，保持存储顺序）
func (s *FeedStore) ListByUser(userID uint) ([]models.Feed, error) {
	if userID == 0 {
		return nil, &ValidationError{Message: "user_id is required"}
	}
	feeds := make([]models.Feed, 0) // 序列化为 [] 而不是 null
	if err := s.db.Where("user_id = ? AND is_active = ?", userID, true).Find(&feeds).Error; err != nil {
		return nil, err
	}
	return feeds, nil
}

// Create 创建 Feed，name 与 user_id 必填
func (s *FeedStore) Create(in FeedInput) (*models.Feed, error) {
	if in.Name == "" || in.UserID == 0 {
		return nil, &ValidationError{Message: "name and user_id are required"}
	}

	feed := models.Feed{
		UserID:      in.UserID,
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
	}
	if truthyJSON(in.Sources) {
		feed.Sources = datatypes.JSON(in.Sources)
	}
	if truthyJSON(in.Filters) {
		feed.Filters = datatypes.JSON(in.Filters)
	}
	if truthyJSON(in.LayoutConfig) {
		feed.LayoutConfig = datatypes.JSON(in.LayoutConfig)
	}

	if err := s.db.Create(&feed).Error; err != nil {
		return nil, err
	}
	return &feed, nil
}

// GetByID 按主键查找，软删除的 Feed 依然可以直接取到
func (s *FeedStore) GetByID(id uint) (*models.Feed, error) {
	var feed models.Feed
	if err := s.db.First(&feed, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &feed, nil
}

// Update 部分更新：只应用"有内容"的字段，空字符串/空容器会被忽略而不是清空。
// 无论是否有字段实际变化，updated_at 都会刷新
func (s *FeedStore) Update(id uint, in FeedInput) (*models.Feed, error) {
	feed, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		feed.Name = in.Name
	}
	if in.Description != "" {
		feed.Description = in.Description
	}
	if truthyJSON(in.Sources) {
		feed.Sources = datatypes.JSON(in.Sources)
	}
	if truthyJSON(in.Filters) {
		feed.Filters = datatypes.JSON(in.Filters)
	}
	if truthyJSON(in.LayoutConfig) {
		feed.LayoutConfig = datatypes.JSON(in.LayoutConfig)
	}
	feed.UpdatedAt = time.Now().UTC()

	if err := s.db.Save(feed).Error; err != nil {
		return nil, err
	}
	return feed, nil
}

// SoftDelete 逻辑删除：置 is_active=false，重复调用无额外效果
func (s *FeedStore) SoftDelete(id uint) error {
	feed, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.db.Model(feed).Update("is_active", false).Error
}
