package model

// User is a profile record in the user directory. The directory is
// pre-provisioned; AvatarFileName is the only mutable field and is written
// exclusively after a successful blob store.
type User struct {
	ID             string  `bson:"_id"              json:"id"`
	Username       string  `bson:"username"         json:"username"`
	AvatarFileName *string `bson:"avatar_file_name" json:"avatar_filename,omitempty"`
}
