package api

import (
	"Newsroom/internal/api/handler"
	"Newsroom/internal/api/middleware"
	"Newsroom/internal/pkg/consts"
	"Newsroom/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func newEngine() *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger
	r.Use(middleware.TraceMiddleware())
	logger.SetupGin(r)

	return r
}

// SetupPostRouter 文章服务路由
func SetupPostRouter(postHandler *handler.PostHandler) *gin.Engine {
	r := newEngine()

	postGroup := r.Group("/posts")
	{
		// 公开接口
		postGroup.GET("", postHandler.GetPublishedPosts)
		postGroup.GET("/:post_id", postHandler.GetPost)

		editorGroup := postGroup.Group("")
		editorGroup.Use(middleware.IdentityMiddleware(), middleware.CheckRoles(consts.RoleEditor))
		{
			editorGroup.GET("/editor", postHandler.GetPostsForEditor)
			editorGroup.POST("", postHandler.CreatePost)
			editorGroup.PUT("/:post_id", postHandler.EditPost)
			editorGroup.PUT("/:post_id/status", postHandler.UpdatePostStatus)
		}
	}

	return r
}

// SetupCommentRouter 评论服务路由
func SetupCommentRouter(commentHandler *handler.CommentHandler) *gin.Engine {
	r := newEngine()

	commentGroup := r.Group("/comments")
	{
		commentGroup.GET("", commentHandler.GetAllComments)

		authGroup := commentGroup.Group("")
		authGroup.Use(middleware.IdentityMiddleware())
		{
			authGroup.POST("/:post_id", commentHandler.CreateComment)
			authGroup.PUT("/:comment_id", commentHandler.UpdateComment)
			authGroup.DELETE("/:comment_id", commentHandler.DeleteComment)
		}
	}

	return r
}

// SetupReviewRouter 审核服务路由，全部接口仅编辑可用
func SetupReviewRouter(reviewHandler *handler.ReviewHandler) *gin.Engine {
	r := newEngine()

	reviewGroup := r.Group("/review")
	reviewGroup.Use(middleware.IdentityMiddleware(), middleware.CheckRoles(consts.RoleEditor))
	{
		reviewGroup.GET("/pending", reviewHandler.GetPendingPosts)
		reviewGroup.POST("/:post_id/approve", reviewHandler.ApprovePost)
		reviewGroup.POST("/:post_id/reject", reviewHandler.RejectPost)
	}

	return r
}
