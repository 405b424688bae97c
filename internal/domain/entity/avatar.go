package entity

import "io"

// Avatar is a retrievable avatar: the blob stream plus what the transport needs
// to present it (media type inferred from the stored extension, and the blob
// name for the inline content disposition).
type Avatar struct {
	Body      io.ReadCloser
	Size      int64
	MediaType string
	FileName  string
}
