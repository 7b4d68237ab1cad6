package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
	ServiceUnavailable  = 503
)

var (
	ErrParamInvalid           = errors.New("参数错误")
	ErrStatusInvalid          = errors.New("文章状态无效")
	ErrPostNotFound           = errors.New("文章不存在")
	ErrCommentNotFound        = errors.New("评论不存在")
	ErrNotCommentAuthor       = errors.New("不是评论的作者")
	ErrPostServiceUnavailable = errors.New("文章服务暂不可用")
	UnauthorizedError         = errors.New("权限不足")
	UnExpectedError           = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:           BadRequest,
	ErrStatusInvalid:          BadRequest,
	ErrPostNotFound:           NotFound,
	ErrCommentNotFound:        NotFound,
	ErrNotCommentAuthor:       Forbidden,
	ErrPostServiceUnavailable: ServiceUnavailable,
	UnauthorizedError:         Unauthorized,
	UnExpectedError:           InternalServerError,
}
