package model

import (
	"time"
)

const (
	OutboxStatePending int8 = 0 // 待投递
	OutboxStateDone    int8 = 1 // 已完成
	OutboxStateFailed  int8 = 2 // 超过最大重试次数
)

// ReviewOutbox 审核决定的出站记录
// 与 Review 在同一事务中写入，由后台任务负责远端状态变更与通知投递
type ReviewOutbox struct {
	ID           uint64     `gorm:"primaryKey"`
	ReviewID     uint64     `gorm:"not null;index:idx_review_id" json:"review_id"`
	PostID       uint64     `gorm:"not null" json:"post_id"`
	TargetStatus PostStatus `gorm:"type:varchar(16);not null" json:"target_status"`
	Message      string     `gorm:"type:varchar(255);not null" json:"message"`
	State        int8       `gorm:"not null;default:0;index:idx_state" json:"state"`
	Attempts     int        `gorm:"not null;default:0" json:"attempts"`
	NextRetryAt  time.Time  `gorm:"not null;index:idx_next_retry" json:"next_retry_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (ReviewOutbox) TableName() string {
	return "review_outbox"
}
