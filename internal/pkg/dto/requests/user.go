package requests

type CreateUser struct {
	Username string `json:"username" validate:"required,min=4,max=30,alphanum"`
	Password string `json:"password" validate:"required,min=8,password"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Role     string `json:"role" validate:"required,oneof=admin petugas"`
}

type UpdateUser struct {
	Password string `json:"password" validate:"omitempty,min=8,password"`
	FullName string `json:"full_name" validate:"omitempty,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=admin petugas"`
}
