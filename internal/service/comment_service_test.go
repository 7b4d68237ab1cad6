package service

import (
	"Newsroom/internal/api/dto"
	"Newsroom/internal/client"
	"Newsroom/internal/model"
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCommentRepo struct {
	comments map[uint64]*model.Comment
	nextID   uint64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint64]*model.Comment), nextID: 1}
}

func (f *fakeCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	cp := *comment
	f.comments[comment.ID] = &cp
	return nil
}

func (f *fakeCommentRepo) GetComment(_ context.Context, id uint64) (*model.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCommentRepo) GetAllComments(_ context.Context) ([]*model.Comment, error) {
	var result []*model.Comment
	for i := uint64(1); i < f.nextID; i++ {
		if c, ok := f.comments[i]; ok {
			cp := *c
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (f *fakeCommentRepo) UpdateCommentContent(_ context.Context, id uint64, content string) error {
	if c, ok := f.comments[id]; ok {
		c.Content = content
	}
	return nil
}

func (f *fakeCommentRepo) DeleteComment(_ context.Context, id uint64) error {
	delete(f.comments, id)
	return nil
}

type fakePostClient struct {
	posts map[uint64]*client.PostResponse
	err   error
}

func (f *fakePostClient) GetPostById(_ context.Context, postID uint64) (*client.PostResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.posts[postID]
	if !ok {
		return nil, client.ErrPostNotFound
	}
	return p, nil
}

func (f *fakePostClient) GetPendingPosts(_ context.Context) ([]*client.PostResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*client.PostResponse
	for _, p := range f.posts {
		if p.Status == string(model.PostStatusPending) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePostClient) UpdatePostStatus(_ context.Context, postID uint64, status string) error {
	if f.err != nil {
		return f.err
	}
	if p, ok := f.posts[postID]; ok {
		p.Status = status
	}
	return nil
}

func TestCreateComment(t *testing.T) {
	repo := newFakeCommentRepo()
	pc := &fakePostClient{posts: map[uint64]*client.PostResponse{
		7: {ID: 7, Title: "t", Status: string(model.PostStatusPublished)},
	}}

	svc := NewCommentService(repo, pc)

	c, err := svc.CreateComment(context.Background(), "bob", 7, &dto.CommentCreateDTO{Content: "nice"})
	require.NoError(t, err)
	assert.Equal(t, "nice", c.Content)
	assert.Equal(t, "bob", c.Author)
	assert.Equal(t, uint64(7), c.PostID)
}

func TestCreateComment_PostMissingVsUnavailable(t *testing.T) {
	repo := newFakeCommentRepo()
	pc := &fakePostClient{posts: map[uint64]*client.PostResponse{}}

	svc := NewCommentService(repo, pc)

	_, err := svc.CreateComment(context.Background(), "bob", 7, &dto.CommentCreateDTO{Content: "nice"})
	assert.ErrorIs(t, err, ErrPostNotFound)

	// 传输层失败映射为服务不可用
	pc.err = errors.New("connection refused")
	_, err = svc.CreateComment(context.Background(), "bob", 7, &dto.CommentCreateDTO{Content: "nice"})
	assert.ErrorIs(t, err, ErrPostServiceUnavailable)
}

func TestUpdateComment_AuthorOnly(t *testing.T) {
	repo := newFakeCommentRepo()
	_ = repo.CreateComment(context.Background(), &model.Comment{PostID: 1, Content: "old", Author: "bob"})

	pc := &fakePostClient{posts: map[uint64]*client.PostResponse{}}
	svc := NewCommentService(repo, pc)

	updated, err := svc.UpdateComment(context.Background(), 1, "bob", &dto.CommentUpdateDTO{Content: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Content)

	_, err = svc.UpdateComment(context.Background(), 1, "mallory", &dto.CommentUpdateDTO{Content: "hax"})
	assert.ErrorIs(t, err, ErrNotCommentAuthor)

	_, err = svc.UpdateComment(context.Background(), 42, "bob", &dto.CommentUpdateDTO{Content: "x"})
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDeleteComment_AuthorOnly(t *testing.T) {
	repo := newFakeCommentRepo()
	_ = repo.CreateComment(context.Background(), &model.Comment{PostID: 1, Content: "c", Author: "bob"})

	pc := &fakePostClient{posts: map[uint64]*client.PostResponse{}}
	svc := NewCommentService(repo, pc)

	assert.ErrorIs(t, svc.DeleteComment(context.Background(), 1, "mallory"), ErrNotCommentAuthor)

	require.NoError(t, svc.DeleteComment(context.Background(), 1, "bob"))
	assert.ErrorIs(t, svc.DeleteComment(context.Background(), 1, "bob"), ErrCommentNotFound)
}
