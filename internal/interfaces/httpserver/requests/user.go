package requests

// UpdateProfileRequest overrides the profile fields taken from the token.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"omitempty,max=255" example:"Ada"`
	Email       string `json:"email" validate:"omitempty,email,max=255" example:"ada@example.com"`
}
