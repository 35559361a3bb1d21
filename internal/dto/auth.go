package dto

type RegisterRequestDTO struct {
	Email        string `json:"email" validate:"required,email" example:"investor@example.com"`
	Password     string `json:"password" validate:"required,min=8" example:"s3cretpass"`
	ReferralCode string `json:"referral_code,omitempty" validate:"omitempty,luhn" example:"7992739871"`
}

type RegisterResponseDTO struct {
	Message      string `json:"message"`
	UserID       string `json:"user_id" example:"4b8f2c1e-9a7d-4f7e-8c11-2f6d3e5b7a90"`
	ReferralCode string `json:"referral_code" example:"1234567897"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"investor@example.com"`
	Password string `json:"password" validate:"required" example:"s3cretpass"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
