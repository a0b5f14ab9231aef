package dto

type RegisterDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name"`
	Role     string `json:"role" binding:"required,oneof=entrepreneur student"`

	// entrepreneur profile
	Company *string `json:"company,omitempty"`
	Sector  *string `json:"sector,omitempty"`

	// student profile
	School *string `json:"school,omitempty"`
	Major  *string `json:"major,omitempty"`
	Skills *string `json:"skills,omitempty"`
}

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserDTO struct {
	Email       *string `json:"email,omitempty"`
	FullName    *string `json:"full_name,omitempty"`
	Password    *string `json:"password,omitempty"`
	OldPassword *string `json:"old_password,omitempty"`
}
