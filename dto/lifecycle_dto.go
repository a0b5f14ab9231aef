package dto

type OpenSelectionDTO struct {
	StudentIDs []uint `json:"student_ids" binding:"required,min=1"`
}

type SelectStudentDTO struct {
	StudentID uint `json:"student_id" binding:"required"`
}
