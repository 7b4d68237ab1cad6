package service

import (
	"Newsroom/internal/api/dto"
	"Newsroom/internal/model"
	"Newsroom/internal/pkg/consts"
	"Newsroom/internal/pkg/redis"
	"Newsroom/internal/pkg/util"
	"Newsroom/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

const postDetailExpiration = 30 * time.Minute

type PostService interface {
	GetPublishedPosts(ctx context.Context, filter *dto.PostListDTO) ([]*dto.PostDTO, error)
	GetPostsForEditor(ctx context.Context, status string) ([]*dto.PostDTO, error)
	CreatePost(ctx context.Context, author string, req *dto.PostCreateDTO) (*dto.PostDTO, error)
	EditPost(ctx context.Context, postID uint64, req *dto.PostEditDTO) error
	UpdatePostStatus(ctx context.Context, postID uint64, status string) error
	GetPostById(ctx context.Context, postID uint64) (*dto.PostDTO, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
}

func NewPostService(postRepo repository.PostRepo) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
	}
}

// GetPublishedPosts 已发布文章列表，过滤条件全部为精确匹配
// date 过滤与创建时间的 RFC3339 字符串比较
func (s *postServiceImpl) GetPublishedPosts(ctx context.Context, filter *dto.PostListDTO) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetPostsByStatus(ctx, model.PostStatusPublished)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		if filter.Content != "" && p.Content != filter.Content {
			continue
		}
		if filter.Author != "" && p.Author != filter.Author {
			continue
		}
		if filter.Date != "" && p.CreatedAt.Format(time.RFC3339) != filter.Date {
			continue
		}
		result = append(result, toPostDTO(p))
	}
	return result, nil
}

// GetPostsForEditor 编辑视角的文章列表
// 状态过滤无法解析时返回校验错误，而不是静默空列表
func (s *postServiceImpl) GetPostsForEditor(ctx context.Context, status string) ([]*dto.PostDTO, error) {
	var posts []*model.Post
	var err error

	if strings.TrimSpace(status) != "" {
		parsed, ok := model.ParsePostStatus(status)
		if !ok {
			return nil, ErrStatusInvalid
		}
		posts, err = s.postRepo.GetPostsByStatus(ctx, parsed)
	} else {
		posts, err = s.postRepo.GetAllPosts(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		result = append(result, toPostDTO(p))
	}
	return result, nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, author string, req *dto.PostCreateDTO) (*dto.PostDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		log.WarnContext(ctx, "create post dto invalid", "err", err)
		return nil, ErrParamInvalid
	}

	status := model.PostStatusPending
	if req.IsDraft {
		status = model.PostStatusDraft
	}

	post := &model.Post{
		Title:     req.Title,
		Content:   req.Content,
		Author:    author,
		Status:    status,
		CreatedAt: time.Now(),
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "post created", "post_id", post.ID, "author", author, "status", post.Status)
	return toPostDTO(post), nil
}

// EditPost 局部修改，空白文本字段不变更
// is_draft 缺省时状态保持原样，true/false 映射 DRAFT/PENDING
func (s *postServiceImpl) EditPost(ctx context.Context, postID uint64, req *dto.PostEditDTO) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if strings.TrimSpace(req.Title) != "" {
		post.Title = req.Title
	}
	if strings.TrimSpace(req.Content) != "" {
		post.Content = req.Content
	}
	if strings.TrimSpace(req.Author) != "" {
		post.Author = req.Author
	}
	if req.IsDraft != nil {
		if *req.IsDraft {
			post.Status = model.PostStatusDraft
		} else {
			post.Status = model.PostStatusPending
		}
	}

	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		return err
	}

	s.evictPostDetail(ctx, postID)
	return nil
}

func (s *postServiceImpl) UpdatePostStatus(ctx context.Context, postID uint64, status string) error {
	parsed, ok := model.ParsePostStatus(status)
	if !ok {
		return ErrStatusInvalid
	}

	if _, err := s.postRepo.GetPost(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if err := s.postRepo.UpdatePostStatus(ctx, postID, parsed); err != nil {
		return err
	}

	s.evictPostDetail(ctx, postID)
	log.InfoContext(ctx, "post status updated", "post_id", postID, "status", parsed)
	return nil
}

func (s *postServiceImpl) GetPostById(ctx context.Context, postID uint64) (*dto.PostDTO, error) {
	key := consts.PostDetailKey + strconv.FormatUint(postID, 10)

	cached, err := redis.GetValue(ctx, key)
	if err == nil && cached != "" {
		var d dto.PostDTO
		if err = json.Unmarshal([]byte(cached), &d); err == nil {
			return &d, nil
		}
	}

	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	d := toPostDTO(post)
	if b, err := json.Marshal(d); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(b), postDetailExpiration)
	}
	return d, nil
}

func (s *postServiceImpl) evictPostDetail(ctx context.Context, postID uint64) {
	key := consts.PostDetailKey + strconv.FormatUint(postID, 10)
	if err := redis.DeleteKey(ctx, key); err != nil {
		log.WarnContext(ctx, "evict post detail cache failed", "post_id", postID, "err", err)
	}
}

func toPostDTO(p *model.Post) *dto.PostDTO {
	d := &dto.PostDTO{}
	_ = copier.Copy(d, p)
	d.Status = string(p.Status)
	d.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	return d
}
