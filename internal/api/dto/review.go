package dto

// RejectDTO 审核拒绝请求，原因必填
type RejectDTO struct {
	Reason string `json:"reason" binding:"required" validate:"min=1,max=1000"`
}
