package dto

// UpdateProfileRequest represents profile update data. Grade and avatar are
// assigned as sent, a missing field clears the stored value just like an
// explicit null. The password is only changed when a non-empty value is
// supplied.
type UpdateProfileRequest struct {
	Grade    *string `json:"grade"`
	Password string  `json:"password"`
	Avatar   *string `json:"avatar"`
}

// UpdateProfileResponse echoes the fields after the update
type UpdateProfileResponse struct {
	Message  string  `json:"message"`
	Grade    *string `json:"grade"`
	Username string  `json:"username"`
	Avatar   *string `json:"avatar"`
}
