package dto

// ChangePasswordReq is the body of POST /api/password. The token travels in
// the Authorization header.
type ChangePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// MessageRes carries a success message.
type MessageRes struct {
	Message string `json:"message"`
}
