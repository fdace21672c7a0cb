package store

import (
	"errors"
	"strings"
	"time"

	"feedwall/internal/models"

	"gorm.io/gorm"
)

// PostStore SocialPost 记录的读写入口，所有操作都先校验父 Feed 存在
type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// PostInput 手动录入一条社交帖子的字段集合。
// 必填字段用指针表达"是否出现在请求里"：显式传空字符串也算提供
type PostInput struct {
	Platform     *string
	PostID       *string
	Content      *string
	Author       *string
	AuthorAvatar string
	MediaURL     string
	MediaType    *string
	PostURL      string
	PostedAt     *string // ISO-8601 字符串，缺省用服务端当前时间
}

// posted_at 支持的时间格式（ISO-8601 的常见写法）
var postedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parsePostedAt(value string) (time.Time, error) {
	for _, layout := range postedAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized timestamp")
}

// ListForFeed 返回 Feed 下所有可见帖子（已审核且未隐藏），按发布时间倒序
func (s *PostStore) ListForFeed(feedID uint) ([]models.SocialPost, error) {
	if err := s.feedExists(feedID); err != nil {
		return nil, err
	}
	posts := make([]models.SocialPost, 0) // 序列化为 [] 而不是 null
	err := s.db.Where("feed_id = ? AND is_approved = ? AND is_hidden = ?", feedID, true, false).
		Order("posted_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Add 向 Feed 录入一条帖子，platform/post_id/content/author 必须出现在请求里
func (s *PostStore) Add(feedID uint, in PostInput) (*models.SocialPost, error) {
	if err := s.feedExists(feedID); err != nil {
		return nil, err
	}

	var missing []string
	if in.Platform == nil {
		missing = append(missing, "platform")
	}
	if in.PostID == nil {
		missing = append(missing, "post_id")
	}
	if in.Content == nil {
		missing = append(missing, "content")
	}
	if in.Author == nil {
		missing = append(missing, "author")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Message: "missing required fields: " + strings.Join(missing, ", ")}
	}

	postedAt := time.Now().UTC()
	if in.PostedAt != nil && *in.PostedAt != "" {
		t, err := parsePostedAt(*in.PostedAt)
		if err != nil {
			return nil, &ValidationError{Message: "invalid posted_at timestamp: " + *in.PostedAt}
		}
		postedAt = t
	}

	// media_type 只在字段完全缺省时回落到 text
	mediaType := "text"
	if in.MediaType != nil {
		mediaType = *in.MediaType
	}

	post := models.SocialPost{
		FeedID:       feedID,
		Platform:     *in.Platform,
		PostID:       *in.PostID,
		Content:      *in.Content,
		Author:       *in.Author,
		AuthorAvatar: in.AuthorAvatar,
		MediaURL:     in.MediaURL,
		MediaType:    mediaType,
		PostURL:      in.PostURL,
		PostedAt:     &postedAt,
		IsApproved:   true,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Moderate 审核帖子：只应用显式出现的布尔字段，显式 false 同样生效。
// (feed_id, post_id) 组合匹配不到记录时返回 ErrNotFound
func (s *PostStore) Moderate(feedID, postID uint, approved, hidden *bool) (*models.SocialPost, error) {
	var post models.SocialPost
	if err := s.db.Where("id = ? AND feed_id = ?", postID, feedID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if approved != nil {
		updates["is_approved"] = *approved
		post.IsApproved = *approved
	}
	if hidden != nil {
		updates["is_hidden"] = *hidden
		post.IsHidden = *hidden
	}
	if len(updates) > 0 {
		if err := s.db.Model(&post).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &post, nil
}

func (s *PostStore) feedExists(feedID uint) error {
	var count int64
	if err := s.db.Model(&models.Feed{}).Where("id = ?", feedID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
