package entity

// BlobRef identifies a stored avatar blob by its generated file name.
type BlobRef struct {
	FileName string `json:"file_name"`
	Size     int64  `json:"size"`
}
