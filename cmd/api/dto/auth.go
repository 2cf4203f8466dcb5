package dto

// SignupRequestDTO는 /auth/signup 요청 바디이다.
type SignupRequestDTO struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
	Name     string `json:"name" binding:"required" example:"Jordan Kim"`
}

// LoginRequestDTO는 /auth/login 요청 바디이다.
type LoginRequestDTO struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// AuthUserDTO는 토큰과 함께 내려주는 최소 사용자 정보이다.
type AuthUserDTO struct {
	ID    string `json:"id" example:"665f1c2ab1e4a2d3c4e5f601"`
	Email string `json:"email" example:"user@example.com"`
	Name  string `json:"name" example:"Jordan Kim"`
	Role  string `json:"role" example:"user"`
}

// AuthResponseDTO는 signup/login 성공 응답이다.
type AuthResponseDTO struct {
	Token string      `json:"token"`
	User  AuthUserDTO `json:"user"`
}

// UserProfileDTO는 /users/profile 응답 스키마를 나타낸다.
type UserProfileDTO struct {
	ID        string `json:"id" example:"665f1c2ab1e4a2d3c4e5f601"`
	Email     string `json:"email" example:"user@example.com"`
	Name      string `json:"name" example:"Jordan Kim"`
	Role      string `json:"role" example:"user"`
	CreatedAt string `json:"created_at" example:"2025-01-01T12:00:00Z"`
	UpdatedAt string `json:"updated_at" example:"2025-01-01T12:00:00Z"`
}
