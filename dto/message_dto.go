package dto

type SendMessageDTO struct {
	Content string `json:"content" binding:"required"`
}
