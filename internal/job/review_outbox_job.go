package job

import (
	"Newsroom/internal/client"
	"Newsroom/internal/model"
	"Newsroom/internal/pkg/consts"
	"Newsroom/internal/pkg/logger"
	"Newsroom/internal/pkg/redis"
	"Newsroom/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	retryBaseInterval = 5 * time.Second
	retryMaxInterval  = 5 * time.Minute
	lockExpiration    = 30 * time.Second
)

// Publisher 通知发布端
type Publisher interface {
	SendMessage(ctx context.Context, message string) error
}

// ReviewOutboxJob 投递审核出站记录：先更新文章状态，再发通知
// 状态变更是无条件覆盖，可以安全重复执行，整体按至少一次投递
type ReviewOutboxJob struct {
	reviewRepo  repository.ReviewRepo
	postClient  client.PostClient
	publisher   Publisher
	batchSize   int
	maxAttempts int
}

func NewReviewOutboxJob(
	reviewRepo repository.ReviewRepo,
	postClient client.PostClient,
	publisher Publisher,
	batchSize int,
	maxAttempts int,
) *ReviewOutboxJob {
	return &ReviewOutboxJob{
		reviewRepo:  reviewRepo,
		postClient:  postClient,
		publisher:   publisher,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

func (s *ReviewOutboxJob) Run() {
	traceID := "job-outbox-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 多实例部署时同一时刻只允许一个投递者
	lockUUID := uuid.NewString()
	ok, err := redis.TryLock(ctx, consts.ReviewOutboxLock, lockUUID, lockExpiration, 1)
	if err != nil || !ok {
		return
	}
	defer redis.UnLock(ctx, consts.ReviewOutboxLock, lockUUID)

	s.Drain(ctx)
}

// Drain 处理一批到期的出站记录
func (s *ReviewOutboxJob) Drain(ctx context.Context) {
	rows, err := s.reviewRepo.GetPendingOutbox(ctx, time.Now(), s.batchSize)
	if err != nil {
		log.ErrorContext(ctx, "fetch pending outbox failed", "err", err)
		return
	}

	if len(rows) == 0 {
		return
	}

	log.InfoContext(ctx, "draining review outbox", "count", len(rows))

	for _, row := range rows {
		if err = s.dispatch(ctx, row); err == nil {
			continue
		}

		attempts := row.Attempts + 1
		if attempts >= s.maxAttempts {
			log.ErrorContext(ctx, "outbox entry exhausted retries",
				"outbox_id", row.ID, "post_id", row.PostID, "attempts", attempts, "err", err)
			if mErr := s.reviewRepo.MarkOutboxFailed(ctx, row.ID, attempts); mErr != nil {
				log.ErrorContext(ctx, "mark outbox failed error", "outbox_id", row.ID, "err", mErr)
			}
			continue
		}

		next := time.Now().Add(backoff(attempts))
		log.WarnContext(ctx, "outbox dispatch failed, rescheduled",
			"outbox_id", row.ID, "post_id", row.PostID, "attempts", attempts, "next_retry_at", next, "err", err)
		if rErr := s.reviewRepo.RescheduleOutbox(ctx, row.ID, attempts, next); rErr != nil {
			log.ErrorContext(ctx, "reschedule outbox error", "outbox_id", row.ID, "err", rErr)
		}
	}
}

func (s *ReviewOutboxJob) dispatch(ctx context.Context, row *model.ReviewOutbox) error {
	if err := s.postClient.UpdatePostStatus(ctx, row.PostID, string(row.TargetStatus)); err != nil {
		return err
	}

	if err := s.publisher.SendMessage(ctx, row.Message); err != nil {
		return err
	}

	if err := s.reviewRepo.MarkOutboxDone(ctx, row.ID); err != nil {
		return err
	}

	log.InfoContext(ctx, "outbox entry dispatched",
		"outbox_id", row.ID, "post_id", row.PostID, "target_status", row.TargetStatus)
	return nil
}

func backoff(attempts int) time.Duration {
	interval := retryBaseInterval
	for i := 1; i < attempts; i++ {
		interval *= 2
		if interval > retryMaxInterval {
			return retryMaxInterval
		}
	}
	return interval
}
