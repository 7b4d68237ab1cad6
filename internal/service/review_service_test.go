package service

import (
	"Newsroom/internal/client"
	"Newsroom/internal/model"
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	reviews []*model.Review
	outbox  []*model.ReviewOutbox
	nextID  uint64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{nextID: 1}
}

func (f *fakeReviewRepo) CreateReviewWithOutbox(_ context.Context, review *model.Review, outbox *model.ReviewOutbox) error {
	review.ID = f.nextID
	outbox.ID = f.nextID
	outbox.ReviewID = review.ID
	f.nextID++
	f.reviews = append(f.reviews, review)
	f.outbox = append(f.outbox, outbox)
	return nil
}

func (f *fakeReviewRepo) GetPendingOutbox(_ context.Context, now time.Time, limit int) ([]*model.ReviewOutbox, error) {
	var result []*model.ReviewOutbox
	for _, o := range f.outbox {
		if o.State == model.OutboxStatePending && !o.NextRetryAt.After(now) {
			result = append(result, o)
			if len(result) == limit {
				break
			}
		}
	}
	return result, nil
}

func (f *fakeReviewRepo) MarkOutboxDone(_ context.Context, id uint64) error {
	for _, o := range f.outbox {
		if o.ID == id {
			o.State = model.OutboxStateDone
		}
	}
	return nil
}

func (f *fakeReviewRepo) MarkOutboxFailed(_ context.Context, id uint64, attempts int) error {
	for _, o := range f.outbox {
		if o.ID == id {
			o.State = model.OutboxStateFailed
			o.Attempts = attempts
		}
	}
	return nil
}

func (f *fakeReviewRepo) RescheduleOutbox(_ context.Context, id uint64, attempts int, nextRetryAt time.Time) error {
	for _, o := range f.outbox {
		if o.ID == id {
			o.Attempts = attempts
			o.NextRetryAt = nextRetryAt
		}
	}
	return nil
}

func TestApprovePost_WritesReviewAndOutbox(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, &fakePostClient{posts: map[uint64]*client.PostResponse{}})

	err := svc.ApprovePost(context.Background(), 5, "eve")
	require.NoError(t, err)

	require.Len(t, repo.reviews, 1)
	assert.Equal(t, uint64(5), repo.reviews[0].PostID)
	assert.Equal(t, "eve", repo.reviews[0].Reviewer)
	assert.True(t, repo.reviews[0].Approved)

	require.Len(t, repo.outbox, 1)
	assert.Equal(t, model.PostStatusPublished, repo.outbox[0].TargetStatus)
	assert.Equal(t, "Post 5 approved by eve", repo.outbox[0].Message)
	assert.Equal(t, model.OutboxStatePending, repo.outbox[0].State)
}

func TestRejectPost_WritesReasonAndOutbox(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, &fakePostClient{posts: map[uint64]*client.PostResponse{}})

	err := svc.RejectPost(context.Background(), 5, "eve", "too short")
	require.NoError(t, err)

	require.Len(t, repo.reviews, 1)
	assert.False(t, repo.reviews[0].Approved)
	assert.Equal(t, "too short", repo.reviews[0].Comment)

	require.Len(t, repo.outbox, 1)
	assert.Equal(t, model.PostStatusRejected, repo.outbox[0].TargetStatus)
	assert.Equal(t, "Post 5 rejected by eve", repo.outbox[0].Message)
}

func TestReviewHistory_AppendOnly(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, &fakePostClient{posts: map[uint64]*client.PostResponse{}})

	require.NoError(t, svc.ApprovePost(context.Background(), 5, "eve"))
	require.NoError(t, svc.RejectPost(context.Background(), 5, "frank", "changed my mind"))

	// 同一篇文章的多次审核全部保留
	assert.Len(t, repo.reviews, 2)
	assert.Len(t, repo.outbox, 2)
}

func TestGetPendingPosts(t *testing.T) {
	pc := &fakePostClient{posts: map[uint64]*client.PostResponse{
		1: {ID: 1, Title: "a", Status: string(model.PostStatusPending)},
		2: {ID: 2, Title: "b", Status: string(model.PostStatusPublished)},
	}}
	svc := NewReviewService(newFakeReviewRepo(), pc)

	posts, err := svc.GetPendingPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "a", posts[0].Title)

	pc.err = errors.New("connection refused")
	_, err = svc.GetPendingPosts(context.Background())
	assert.ErrorIs(t, err, ErrPostServiceUnavailable)
}
