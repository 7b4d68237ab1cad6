package handler

import (
	"Newsroom/internal/api/dto"
	"Newsroom/internal/pkg/consts"
	"Newsroom/internal/pkg/response"
	"Newsroom/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// GetPublishedPosts 公开列表，仅返回已发布文章，支持精确过滤
func (s *PostHandler) GetPublishedPosts(c *gin.Context) {
	var filter dto.PostListDTO
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postSvc.GetPublishedPosts(c.Request.Context(), &filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GetPostsForEditor 编辑视角列表，可按任意状态过滤
func (s *PostHandler) GetPostsForEditor(c *gin.Context) {
	status := c.Query("status")

	posts, err := s.postSvc.GetPostsForEditor(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.postSvc.GetPostById(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	author := c.GetString(consts.CtxUserKey)

	var req dto.PostCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), author, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedSuccess(c, post)
}

func (s *PostHandler) EditPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.PostEditDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.postSvc.EditPost(c.Request.Context(), postID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) UpdatePostStatus(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.PostStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.postSvc.UpdatePostStatus(c.Request.Context(), postID, req.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
