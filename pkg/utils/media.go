package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// The two tables below are the complete media-type policy of the system.
// Anything outside them is rejected at validation time; retrieval never guesses.
var extensionToMediaType = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

var mediaTypeToExtension = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

// MediaTypeByExtension returns the media type for an accepted avatar extension.
func MediaTypeByExtension(ext string) (string, bool) {
	mediaType, ok := extensionToMediaType[strings.ToLower(ext)]

	return mediaType, ok
}

// ExtensionByMediaType returns the canonical extension for an accepted media type.
func ExtensionByMediaType(mediaType string) (string, bool) {
	ext, ok := mediaTypeToExtension[mediaType]

	return ext, ok
}

// NormalizeMediaType strips any parameters (e.g. "; charset=...") and lowercases
// the declared media type.
func NormalizeMediaType(mediaType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mediaType, ";")[0]))
}

// NormalizeExtension picks the stored extension for an upload: the original file
// name's extension when it is one of the accepted image extensions, otherwise the
// canonical extension of the declared media type.
func NormalizeExtension(fileName, mediaType string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := extensionToMediaType[ext]; ok {
		return ext
	}

	ext, ok := mediaTypeToExtension[mediaType]
	if !ok {
		return ""
	}

	return ext
}

// NewBlobName generates a fresh blob name scoped by the owning user.
// The uniqueifying token comes from a version 4 UUID, so collisions across users
// and across successive uploads are cryptographically negligible.
func NewBlobName(userID, ext string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")

	return fmt.Sprintf("%s_%s%s", userID, token, ext)
}
