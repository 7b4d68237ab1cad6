package dto

// CommentDTO 评论
type CommentDTO struct {
	ID        uint64 `json:"id"`
	PostID    uint64 `json:"post_id"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

// CommentCreateDTO 评论 - 新增
type CommentCreateDTO struct {
	Content string `json:"content" binding:"required" validate:"min=1,max=1000"`
}

// CommentUpdateDTO 评论 - 修改
type CommentUpdateDTO struct {
	Content string `json:"content" binding:"required" validate:"min=1,max=1000"`
}
