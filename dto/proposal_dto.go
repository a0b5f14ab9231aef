package dto

type ProposeStudentsDTO struct {
	StudentIDs []uint `json:"student_ids" binding:"required,min=1"`
}

type AcceptanceDTO struct {
	Accepted *bool `json:"accepted" binding:"required"`
}
