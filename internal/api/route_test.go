package api_test

import (
	"Newsroom/internal/api"
	"Newsroom/internal/api/dto"
	"Newsroom/internal/api/handler"
	"Newsroom/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostService struct {
	posts map[uint64]*dto.PostDTO
}

func (f *fakePostService) GetPublishedPosts(_ context.Context, _ *dto.PostListDTO) ([]*dto.PostDTO, error) {
	var result []*dto.PostDTO
	for _, p := range f.posts {
		if p.Status == "PUBLISHED" {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePostService) GetPostsForEditor(_ context.Context, status string) ([]*dto.PostDTO, error) {
	if status != "" {
		if _, ok := map[string]bool{"DRAFT": true, "PENDING": true, "PUBLISHED": true, "REJECTED": true}[strings.ToUpper(status)]; !ok {
			return nil, service.ErrStatusInvalid
		}
	}
	var result []*dto.PostDTO
	for _, p := range f.posts {
		result = append(result, p)
	}
	return result, nil
}

func (f *fakePostService) CreatePost(_ context.Context, author string, req *dto.PostCreateDTO) (*dto.PostDTO, error) {
	p := &dto.PostDTO{ID: uint64(len(f.posts) + 1), Title: req.Title, Content: req.Content, Author: author, Status: "PENDING"}
	f.posts[p.ID] = p
	return p, nil
}

func (f *fakePostService) EditPost(_ context.Context, postID uint64, _ *dto.PostEditDTO) error {
	if _, ok := f.posts[postID]; !ok {
		return service.ErrPostNotFound
	}
	return nil
}

func (f *fakePostService) UpdatePostStatus(_ context.Context, postID uint64, _ string) error {
	if _, ok := f.posts[postID]; !ok {
		return service.ErrPostNotFound
	}
	return nil
}

func (f *fakePostService) GetPostById(_ context.Context, postID uint64) (*dto.PostDTO, error) {
	p, ok := f.posts[postID]
	if !ok {
		return nil, service.ErrPostNotFound
	}
	return p, nil
}

func newPostRouter() (*gin.Engine, *fakePostService) {
	gin.SetMode(gin.TestMode)
	svc := &fakePostService{posts: map[uint64]*dto.PostDTO{
		1: {ID: 1, Title: "published", Status: "PUBLISHED"},
		2: {ID: 2, Title: "pending", Status: "PENDING"},
	}}
	return api.SetupPostRouter(handler.NewPostHandler(svc)), svc
}

func doRequest(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPublicListNeedsNoIdentity(t *testing.T) {
	r, _ := newPostRouter()

	w := doRequest(r, http.MethodGet, "/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int            `json:"code"`
		Data []*dto.PostDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "published", resp.Data[0].Title)
}

func TestEditorEndpointsRequireIdentityAndRole(t *testing.T) {
	r, _ := newPostRouter()

	// X-User 缺失
	w := doRequest(r, http.MethodPost, "/posts", `{"title":"t","content":"c"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 角色不符
	w = doRequest(r, http.MethodPost, "/posts", `{"title":"t","content":"c"}`,
		map[string]string{"X-User": "bob", "X-Role": "reader"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 角色比较不区分大小写
	w = doRequest(r, http.MethodPost, "/posts", `{"title":"t","content":"c"}`,
		map[string]string{"X-User": "alice", "X-Role": "EDITOR"})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Code int          `json:"code"`
		Data *dto.PostDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Data.Author)
}

func TestGetPostStatusCodes(t *testing.T) {
	r, _ := newPostRouter()

	w := doRequest(r, http.MethodGet, "/posts/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/posts/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodGet, "/posts/not-a-number", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditorListInvalidStatusFilter(t *testing.T) {
	r, _ := newPostRouter()

	headers := map[string]string{"X-User": "alice", "X-Role": "editor"}

	w := doRequest(r, http.MethodGet, "/posts/editor?status=bogus", "", headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodGet, "/posts/editor", "", headers)
	assert.Equal(t, http.StatusOK, w.Code)
}
