package entity

// ValidatedImage is an upload payload that passed the media-type and size policy.
// Only its content is ever persisted, under a generated blob name.
type ValidatedImage struct {
	Content   []byte
	MediaType string
	Extension string
}
