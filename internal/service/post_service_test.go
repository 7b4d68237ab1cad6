package service

import (
	"Newsroom/internal/api/dto"
	"Newsroom/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePostRepo struct {
	posts  map[uint64]*model.Post
	nextID uint64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint64]*model.Post), nextID: 1}
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	post.ID = f.nextID
	f.nextID++
	cp := *post
	f.posts[post.ID] = &cp
	return nil
}

func (f *fakePostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostRepo) GetPostsByStatus(_ context.Context, status model.PostStatus) ([]*model.Post, error) {
	var result []*model.Post
	for i := uint64(1); i < f.nextID; i++ {
		if p, ok := f.posts[i]; ok && p.Status == status {
			cp := *p
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (f *fakePostRepo) GetAllPosts(_ context.Context) ([]*model.Post, error) {
	var result []*model.Post
	for i := uint64(1); i < f.nextID; i++ {
		if p, ok := f.posts[i]; ok {
			cp := *p
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (f *fakePostRepo) UpdatePost(_ context.Context, post *model.Post) error {
	cp := *post
	f.posts[post.ID] = &cp
	return nil
}

func (f *fakePostRepo) UpdatePostStatus(_ context.Context, id uint64, status model.PostStatus) error {
	if p, ok := f.posts[id]; ok {
		p.Status = status
	}
	return nil
}

func TestCreatePost_StatusByDraftFlag(t *testing.T) {
	svc := NewPostService(newFakePostRepo())
	ctx := context.Background()

	published, err := svc.CreatePost(ctx, "alice", &dto.PostCreateDTO{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, string(model.PostStatusPending), published.Status)
	assert.Equal(t, "alice", published.Author)

	draft, err := svc.CreatePost(ctx, "alice", &dto.PostCreateDTO{Title: "t", Content: "c", IsDraft: true})
	require.NoError(t, err)
	assert.Equal(t, string(model.PostStatusDraft), draft.Status)
}

func TestGetPublishedPosts_FiltersAreExactMatch(t *testing.T) {
	repo := newFakePostRepo()
	now := time.Now()
	_ = repo.CreatePost(context.Background(), &model.Post{Title: "a", Content: "hello", Author: "alice", Status: model.PostStatusPublished, CreatedAt: now})
	_ = repo.CreatePost(context.Background(), &model.Post{Title: "b", Content: "world", Author: "bob", Status: model.PostStatusPublished, CreatedAt: now})
	_ = repo.CreatePost(context.Background(), &model.Post{Title: "c", Content: "hello", Author: "alice", Status: model.PostStatusPending, CreatedAt: now})

	svc := NewPostService(repo)

	all, err := svc.GetPublishedPosts(context.Background(), &dto.PostListDTO{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byAuthor, err := svc.GetPublishedPosts(context.Background(), &dto.PostListDTO{Author: "alice"})
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "a", byAuthor[0].Title)

	// 部分匹配不命中
	partial, err := svc.GetPublishedPosts(context.Background(), &dto.PostListDTO{Content: "hell"})
	require.NoError(t, err)
	assert.Empty(t, partial)

	byDate, err := svc.GetPublishedPosts(context.Background(), &dto.PostListDTO{Date: now.Format(time.RFC3339)})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)
}

func TestGetPostsForEditor(t *testing.T) {
	repo := newFakePostRepo()
	_ = repo.CreatePost(context.Background(), &model.Post{Title: "a", Status: model.PostStatusPending})
	_ = repo.CreatePost(context.Background(), &model.Post{Title: "b", Status: model.PostStatusDraft})

	svc := NewPostService(repo)

	all, err := svc.GetPostsForEditor(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := svc.GetPostsForEditor(context.Background(), "pending")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "a", pending[0].Title)

	_, err = svc.GetPostsForEditor(context.Background(), "nonsense")
	assert.ErrorIs(t, err, ErrStatusInvalid)
}

func TestEditPost_PartialUpdate(t *testing.T) {
	repo := newFakePostRepo()
	_ = repo.CreatePost(context.Background(), &model.Post{Title: "old title", Content: "old content", Author: "alice", Status: model.PostStatusPending})

	svc := NewPostService(repo)

	// 空白字段不覆盖，is_draft 缺省时状态不变
	err := svc.EditPost(context.Background(), 1, &dto.PostEditDTO{Title: "new title", Content: "   "})
	require.NoError(t, err)

	p, _ := repo.GetPost(context.Background(), 1)
	assert.Equal(t, "new title", p.Title)
	assert.Equal(t, "old content", p.Content)
	assert.Equal(t, model.PostStatusPending, p.Status)

	// is_draft=true 回到草稿
	draft := true
	err = svc.EditPost(context.Background(), 1, &dto.PostEditDTO{IsDraft: &draft})
	require.NoError(t, err)
	p, _ = repo.GetPost(context.Background(), 1)
	assert.Equal(t, model.PostStatusDraft, p.Status)

	err = svc.EditPost(context.Background(), 99, &dto.PostEditDTO{Title: "x"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpdatePostStatus(t *testing.T) {
	repo := newFakePostRepo()
	_ = repo.CreatePost(context.Background(), &model.Post{Title: "a", Status: model.PostStatusPending})

	svc := NewPostService(repo)

	err := svc.UpdatePostStatus(context.Background(), 1, "PUBLISHED")
	require.NoError(t, err)
	p, _ := repo.GetPost(context.Background(), 1)
	assert.Equal(t, model.PostStatusPublished, p.Status)

	assert.ErrorIs(t, svc.UpdatePostStatus(context.Background(), 1, "bogus"), ErrStatusInvalid)
	assert.ErrorIs(t, svc.UpdatePostStatus(context.Background(), 99, "PUBLISHED"), ErrPostNotFound)
}

func TestGetPostById(t *testing.T) {
	repo := newFakePostRepo()
	_ = repo.CreatePost(context.Background(), &model.Post{Title: "a", Status: model.PostStatusPublished, CreatedAt: time.Now()})

	svc := NewPostService(repo)

	p, err := svc.GetPostById(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "a", p.Title)

	_, err = svc.GetPostById(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
