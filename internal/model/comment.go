package model

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"primaryKey"`
	PostID    uint64    `gorm:"not null;index:idx_post_id" json:"post_id"` // 跨服务引用，只存 ID，不做外键
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	Author    string    `gorm:"type:varchar(64);not null" json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
