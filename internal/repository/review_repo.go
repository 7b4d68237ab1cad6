package repository

import (
	"Newsroom/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type ReviewRepo interface {
	// CreateReviewWithOutbox 在同一事务中写入审核记录与出站记录
	CreateReviewWithOutbox(ctx context.Context, review *model.Review, outbox *model.ReviewOutbox) error
	GetPendingOutbox(ctx context.Context, now time.Time, limit int) ([]*model.ReviewOutbox, error)
	MarkOutboxDone(ctx context.Context, id uint64) error
	MarkOutboxFailed(ctx context.Context, id uint64, attempts int) error
	RescheduleOutbox(ctx context.Context, id uint64, attempts int, nextRetryAt time.Time) error
}

type ReviewRepoImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepo {
	return &ReviewRepoImpl{db: db}
}

func (s *ReviewRepoImpl) CreateReviewWithOutbox(ctx context.Context, review *model.Review, outbox *model.ReviewOutbox) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		outbox.ReviewID = review.ID
		if err := tx.Create(outbox).Error; err != nil {
			return err
		}
		return nil
	})
}

func (s *ReviewRepoImpl) GetPendingOutbox(ctx context.Context, now time.Time, limit int) ([]*model.ReviewOutbox, error) {
	var rows []*model.ReviewOutbox
	err := s.db.WithContext(ctx).
		Where("state = ? AND next_retry_at <= ?", model.OutboxStatePending, now).
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (s *ReviewRepoImpl) MarkOutboxDone(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.ReviewOutbox{}).
		Where("id = ?", id).
		Update("state", model.OutboxStateDone).Error
}

func (s *ReviewRepoImpl) MarkOutboxFailed(ctx context.Context, id uint64, attempts int) error {
	return s.db.WithContext(ctx).Model(&model.ReviewOutbox{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"state":    model.OutboxStateFailed,
			"attempts": attempts,
		}).Error
}

func (s *ReviewRepoImpl) RescheduleOutbox(ctx context.Context, id uint64, attempts int, nextRetryAt time.Time) error {
	return s.db.WithContext(ctx).Model(&model.ReviewOutbox{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"attempts":      attempts,
			"next_retry_at": nextRetryAt,
		}).Error
}
