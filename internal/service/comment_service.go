package service

import (
	"Newsroom/internal/api/dto"
	"Newsroom/internal/client"
	"Newsroom/internal/model"
	"Newsroom/internal/pkg/util"
	"Newsroom/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(ctx context.Context, author string, postID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	GetAllComments(ctx context.Context) ([]*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, commentID uint64, author string, req *dto.CommentUpdateDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, commentID uint64, author string) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postClient  client.PostClient
}

func NewCommentService(commentRepo repository.CommentRepo, postClient client.PostClient) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postClient:  postClient,
	}
}

// CreateComment 先远程确认文章存在，再落库
// 远端 404 与其它失败必须区分：前者是 NotFound，后者是服务不可用
func (s *commentServiceImpl) CreateComment(ctx context.Context, author string, postID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		log.WarnContext(ctx, "create comment dto invalid", "err", err)
		return nil, ErrParamInvalid
	}

	if _, err := s.postClient.GetPostById(ctx, postID); err != nil {
		if errors.Is(err, client.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		log.ErrorContext(ctx, "post service lookup failed", "post_id", postID, "err", err)
		return nil, ErrPostServiceUnavailable
	}

	comment := &model.Comment{
		PostID:    postID,
		Content:   req.Content,
		Author:    author,
		CreatedAt: time.Now(),
	}

	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "comment created", "comment_id", comment.ID, "post_id", postID, "author", author)
	return toCommentDTO(comment), nil
}

func (s *commentServiceImpl) GetAllComments(ctx context.Context) ([]*dto.CommentDTO, error) {
	comments, err := s.commentRepo.GetAllComments(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		result = append(result, toCommentDTO(c))
	}
	return result, nil
}

// UpdateComment 只有作者本人可以修改
func (s *commentServiceImpl) UpdateComment(ctx context.Context, commentID uint64, author string, req *dto.CommentUpdateDTO) (*dto.CommentDTO, error) {
	comment, err := s.getOwnedComment(ctx, commentID, author)
	if err != nil {
		return nil, err
	}

	if err = s.commentRepo.UpdateCommentContent(ctx, commentID, req.Content); err != nil {
		return nil, err
	}

	comment.Content = req.Content
	log.InfoContext(ctx, "comment updated", "comment_id", commentID)
	return toCommentDTO(comment), nil
}

// DeleteComment 只有作者本人可以删除，物理删除
func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID uint64, author string) error {
	if _, err := s.getOwnedComment(ctx, commentID, author); err != nil {
		return err
	}

	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		return err
	}

	log.InfoContext(ctx, "comment deleted", "comment_id", commentID)
	return nil
}

func (s *commentServiceImpl) getOwnedComment(ctx context.Context, commentID uint64, author string) (*model.Comment, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if comment.Author != author {
		return nil, ErrNotCommentAuthor
	}
	return comment, nil
}

func toCommentDTO(c *model.Comment) *dto.CommentDTO {
	d := &dto.CommentDTO{}
	_ = copier.Copy(d, c)
	d.CreatedAt = c.CreatedAt.Format(time.RFC3339)
	return d
}
