package presentation

const (
	AuthKey      = "Authorization"
	BearerPrefix = "Bearer "
	KeyUser      = "user"
	UserIDParam  = "user_id"
	FileField    = "file"
	ReasonTag    = "X-Reason"
)
