package entity

// UploadResult describes a committed avatar upload.
type UploadResult struct {
	UserID    string `json:"user_id"`
	FileName  string `json:"file_name"`
	AvatarURL string `json:"avatar_url"`
	Size      int64  `json:"size"`
}
