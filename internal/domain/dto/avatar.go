package dto

// AvatarUploadResponse is the body of a successful POST /users/me/avatar.
type AvatarUploadResponse struct {
	Message   string `json:"message"`
	AvatarURL string `json:"avatar_url"`
	UserID    string `json:"user_id"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
