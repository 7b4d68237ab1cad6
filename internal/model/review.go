package model

import (
	"time"
)

// Review 审核记录，只追加，同一篇文章可以累积多条
type Review struct {
	ID        uint64    `gorm:"primaryKey"`
	PostID    uint64    `gorm:"not null;index:idx_post_id" json:"post_id"`
	Reviewer  string    `gorm:"type:varchar(64);not null" json:"reviewer"`
	Approved  bool      `gorm:"not null" json:"approved"`
	Comment   string    `gorm:"type:varchar(1000)" json:"comment"` // 拒绝原因，通过时为空
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
