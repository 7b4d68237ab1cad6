package service

import (
	"Newsroom/internal/api/dto"
	"Newsroom/internal/client"
	"Newsroom/internal/model"
	"Newsroom/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"
)

type ReviewService interface {
	GetPendingPosts(ctx context.Context) ([]*dto.PostDTO, error)
	ApprovePost(ctx context.Context, postID uint64, reviewer string) error
	RejectPost(ctx context.Context, postID uint64, reviewer string, reason string) error
}

type reviewServiceImpl struct {
	reviewRepo repository.ReviewRepo
	postClient client.PostClient
}

func NewReviewService(reviewRepo repository.ReviewRepo, postClient client.PostClient) ReviewService {
	return &reviewServiceImpl{
		reviewRepo: reviewRepo,
		postClient: postClient,
	}
}

func (s *reviewServiceImpl) GetPendingPosts(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := s.postClient.GetPendingPosts(ctx)
	if err != nil {
		log.ErrorContext(ctx, "fetch pending posts failed", "err", err)
		return nil, ErrPostServiceUnavailable
	}

	result := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		result = append(result, &dto.PostDTO{
			ID:        p.ID,
			Title:     p.Title,
			Content:   p.Content,
			Author:    p.Author,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
		})
	}

	log.InfoContext(ctx, "fetched pending posts", "count", len(result))
	return result, nil
}

// ApprovePost 审核通过
// 本地事务写入审核记录与出站记录，远端状态变更与通知由出站任务投递
func (s *reviewServiceImpl) ApprovePost(ctx context.Context, postID uint64, reviewer string) error {
	review := &model.Review{
		PostID:    postID,
		Reviewer:  reviewer,
		Approved:  true,
		CreatedAt: time.Now(),
	}
	outbox := &model.ReviewOutbox{
		PostID:       postID,
		TargetStatus: model.PostStatusPublished,
		Message:      fmt.Sprintf("Post %d approved by %s", postID, reviewer),
		State:        model.OutboxStatePending,
		NextRetryAt:  time.Now(),
	}

	if err := s.reviewRepo.CreateReviewWithOutbox(ctx, review, outbox); err != nil {
		return err
	}

	log.InfoContext(ctx, "post approved", "post_id", postID, "reviewer", reviewer, "review_id", review.ID)
	return nil
}

// RejectPost 审核拒绝，原因必填并入库
func (s *reviewServiceImpl) RejectPost(ctx context.Context, postID uint64, reviewer string, reason string) error {
	review := &model.Review{
		PostID:    postID,
		Reviewer:  reviewer,
		Approved:  false,
		Comment:   reason,
		CreatedAt: time.Now(),
	}
	outbox := &model.ReviewOutbox{
		PostID:       postID,
		TargetStatus: model.PostStatusRejected,
		Message:      fmt.Sprintf("Post %d rejected by %s", postID, reviewer),
		State:        model.OutboxStatePending,
		NextRetryAt:  time.Now(),
	}

	if err := s.reviewRepo.CreateReviewWithOutbox(ctx, review, outbox); err != nil {
		return err
	}

	log.InfoContext(ctx, "post rejected", "post_id", postID, "reviewer", reviewer, "reason", reason, "review_id", review.ID)
	return nil
}
