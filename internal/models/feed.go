package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Feed 用户自定义的社交媒体聚合流
// sources/filters/layout_config 以 JSON 列存储，读取时保证永远是合法 JSON，
// 未设置时分别回落到 [] / {} / {}
type Feed struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Description  string         `gorm:"type:text" json:"description"`
	Sources      datatypes.JSON `json:"sources"`       // 社交媒体来源列表
	Filters      datatypes.JSON `json:"filters"`       // 过滤设置
	LayoutConfig datatypes.JSON `json:"layout_config"` // 展示布局配置
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	IsActive     bool           `gorm:"default:true" json:"is_active"` // 软删除标记，从不物理删除
}

// BeforeCreate 填充 JSON 列默认值
func (f *Feed) BeforeCreate(tx *gorm.DB) error {
	f.normalize()
	return nil
}

// AfterFind 兜底：历史数据列为 NULL 时也返回默认容器
func (f *Feed) AfterFind(tx *gorm.DB) error {
	f.normalize()
	return nil
}

func (f *Feed) normalize() {
	if len(f.Sources) == 0 {
		f.Sources = datatypes.JSON("[]")
	}
	if len(f.Filters) == 0 {
		f.Filters = datatypes.JSON("{}")
	}
	if len(f.LayoutConfig) == 0 {
		f.LayoutConfig = datatypes.JSON("{}")
	}
}
