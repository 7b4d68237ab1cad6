package handler

import (
	"Newsroom/internal/api/dto"
	"Newsroom/internal/pkg/consts"
	"Newsroom/internal/pkg/response"
	"Newsroom/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	author := c.GetString(consts.CtxUserKey)

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), author, postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedSuccess(c, comment)
}

func (s *CommentHandler) GetAllComments(c *gin.Context) {
	comments, err := s.commentSvc.GetAllComments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *CommentHandler) UpdateComment(c *gin.Context) {
	author := c.GetString(consts.CtxUserKey)

	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CommentUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.UpdateComment(c.Request.Context(), commentID, author, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	author := c.GetString(consts.CtxUserKey)

	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.commentSvc.DeleteComment(c.Request.Context(), commentID, author); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
