package dto

type VendorSignupRequestDTO struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
}

type VendorSignupResponseDTO struct {
	VendorID int64  `json:"vendor_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

type VendorLoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VendorLoginResponseDTO struct {
	VendorID int64  `json:"vendor_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}
