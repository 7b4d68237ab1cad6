package model

import (
	"strings"
	"time"
)

// PostStatus 文章状态，直接以枚举字符串入库，接口契约也用同一组值
type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPending   PostStatus = "PENDING"
	PostStatusPublished PostStatus = "PUBLISHED"
	PostStatusRejected  PostStatus = "REJECTED"
)

// ParsePostStatus 解析状态字符串，大小写不敏感
func ParsePostStatus(s string) (PostStatus, bool) {
	switch PostStatus(strings.ToUpper(s)) {
	case PostStatusDraft:
		return PostStatusDraft, true
	case PostStatusPending:
		return PostStatusPending, true
	case PostStatusPublished:
		return PostStatusPublished, true
	case PostStatusRejected:
		return PostStatusRejected, true
	}
	return "", false
}

type Post struct {
	ID        uint64     `gorm:"primaryKey"`
	Title     string     `gorm:"type:varchar(255);not null" json:"title"`
	Content   string     `gorm:"not null" json:"content"`
	Author    string     `gorm:"type:varchar(64);not null;index:idx_author" json:"author"`
	Status    PostStatus `gorm:"type:varchar(16);not null;index:idx_status" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
