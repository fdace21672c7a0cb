package models

import (
	"time"
)

// SocialPost 挂在某个 Feed 下的单条社交媒体内容
// post_id 为来源平台的帖子标识，不做唯一约束（允许重复抓取）
type SocialPost struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FeedID       uint       `gorm:"not null;index" json:"feed_id"`
	Feed         Feed       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Platform     string     `gorm:"size:50;not null" json:"platform"` // instagram, twitter, facebook 等
	PostID       string     `gorm:"size:100;not null" json:"post_id"`
	Content      string     `gorm:"type:text" json:"content"`
	Author       string     `gorm:"size:100" json:"author"`
	AuthorAvatar string     `gorm:"size:255" json:"author_avatar"`
	MediaURL     string     `gorm:"size:255" json:"media_url"`
	MediaType    string     `gorm:"size:50" json:"media_type"` // image, video, text
	PostURL      string     `gorm:"size:255" json:"post_url"`
	CreatedAt    time.Time  `json:"created_at"`
	PostedAt     *time.Time `json:"posted_at"`                       // 平台原始发布时间
	IsApproved   bool       `gorm:"default:true" json:"is_approved"` // 默认直接可见，除非显式审核
	IsHidden     bool       `gorm:"default:false" json:"is_hidden"`
}
