package handler

import (
	"Newsroom/internal/api/dto"
	"Newsroom/internal/pkg/consts"
	"Newsroom/internal/pkg/response"
	"Newsroom/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewSvc: reviewSvc,
	}
}

// GetPendingPosts 待审核文章列表，来自文章服务
func (s *ReviewHandler) GetPendingPosts(c *gin.Context) {
	posts, err := s.reviewSvc.GetPendingPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *ReviewHandler) ApprovePost(c *gin.Context) {
	reviewer := c.GetString(consts.CtxUserKey)

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.reviewSvc.ApprovePost(c.Request.Context(), postID, reviewer); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ReviewHandler) RejectPost(c *gin.Context) {
	reviewer := c.GetString(consts.CtxUserKey)

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.RejectDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.reviewSvc.RejectPost(c.Request.Context(), postID, reviewer, req.Reason); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
