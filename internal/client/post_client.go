package client

import (
	"Newsroom/internal/config"
	"Newsroom/internal/pkg/consts"
	"Newsroom/internal/pkg/logger"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// ErrPostNotFound 远端明确返回 404，与其它失败类别区分开
var ErrPostNotFound = errors.New("post not found")

// PostResponse 文章服务返回的文章数据
type PostResponse struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type PostClient interface {
	GetPostById(ctx context.Context, postID uint64) (*PostResponse, error)
	GetPendingPosts(ctx context.Context) ([]*PostResponse, error)
	UpdatePostStatus(ctx context.Context, postID uint64, status string) error
}

type postEnvelope struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Data    *PostResponse `json:"data"`
}

type postListEnvelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    []*PostResponse `json:"data"`
}

type PostClientImpl struct {
	http *resty.Client
}

// NewPostClient 创建文章服务客户端，超时必须显式设置
// 超时视为服务不可用，调用方据此与 404 区分
func NewPostClient(cfg config.PostAPIConfig) PostClient {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second)

	return &PostClientImpl{http: c}
}

func (s *PostClientImpl) request(ctx context.Context) *resty.Request {
	r := s.http.R().SetContext(ctx)
	if traceID, ok := ctx.Value(logger.TraceIDKey).(string); ok {
		r.SetHeader(consts.HeaderTrace, traceID)
	}
	return r
}

func (s *PostClientImpl) GetPostById(ctx context.Context, postID uint64) (*PostResponse, error) {
	var out postEnvelope
	res, err := s.request(ctx).
		SetResult(&out).
		Get("/posts/" + strconv.FormatUint(postID, 10))
	if err != nil {
		return nil, errors.Wrap(err, "post service unreachable")
	}

	if res.StatusCode() == http.StatusNotFound {
		return nil, ErrPostNotFound
	}
	if res.IsError() {
		return nil, errors.Errorf("post service GetPostById: status=%d", res.StatusCode())
	}
	return out.Data, nil
}

func (s *PostClientImpl) GetPendingPosts(ctx context.Context) ([]*PostResponse, error) {
	var out postListEnvelope
	res, err := s.request(ctx).
		SetHeader(consts.HeaderUser, "review-service").
		SetHeader(consts.HeaderRole, consts.RoleEditor).
		SetQueryParam("status", "PENDING").
		SetResult(&out).
		Get("/posts/editor")
	if err != nil {
		return nil, errors.Wrap(err, "post service unreachable")
	}
	if res.IsError() {
		return nil, errors.Errorf("post service GetPendingPosts: status=%d", res.StatusCode())
	}
	return out.Data, nil
}

func (s *PostClientImpl) UpdatePostStatus(ctx context.Context, postID uint64, status string) error {
	res, err := s.request(ctx).
		SetHeader(consts.HeaderUser, "review-service").
		SetHeader(consts.HeaderRole, consts.RoleEditor).
		SetBody(map[string]string{"status": status}).
		Put("/posts/" + strconv.FormatUint(postID, 10) + "/status")
	if err != nil {
		return errors.Wrap(err, "post service unreachable")
	}
	if res.StatusCode() == http.StatusNotFound {
		return ErrPostNotFound
	}
	if res.IsError() {
		return errors.Errorf("post service UpdatePostStatus: status=%d", res.StatusCode())
	}
	return nil
}
