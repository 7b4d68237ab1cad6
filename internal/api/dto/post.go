package dto

// PostDTO 文章
type PostDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// PostCreateDTO 文章 - 新增
type PostCreateDTO struct {
	Title   string `json:"title" binding:"required" validate:"min=1,max=255"`
	Content string `json:"content" binding:"required" validate:"min=1"`
	IsDraft bool   `json:"is_draft"`
}

// PostEditDTO 文章 - 局部修改，空白字段不变更
// is_draft 缺省时不触碰状态
type PostEditDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
	IsDraft *bool  `json:"is_draft"`
}

// PostStatusDTO 文章 - 状态变更
type PostStatusDTO struct {
	Status string `json:"status" binding:"required"`
}

// PostListDTO 已发布文章查询过滤条件，全部为精确匹配
type PostListDTO struct {
	Content string `form:"content"`
	Author  string `form:"author"`
	Date    string `form:"date"`
}
