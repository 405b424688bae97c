package usecase

import (
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"

	"pfp3/internal/domain/entity"
	"pfp3/pkg/logger"
	"pfp3/pkg/utils"
)

// Validator enforces the upload policy: a declared-media-type allow-list and a
// payload size ceiling. The type check runs before any bytes are read, so a
// disallowed type is rejected regardless of size.
type Validator struct {
	allowed map[string]struct{}
	maxSize int64
}

func NewValidator(allowedMediaTypes []string, maxSize int64) *Validator {
	allowed := make(map[string]struct{}, len(allowedMediaTypes))
	for _, mediaType := range allowedMediaTypes {
		allowed[utils.NormalizeMediaType(mediaType)] = struct{}{}
	}

	return &Validator{
		allowed: allowed,
		maxSize: maxSize,
	}
}

// Validate checks the declared media type, reads the payload in full, checks
// the size ceiling, and resolves the normalized extension. No persistent state
// is touched; a rejected payload leaves storage unchanged.
func (v *Validator) Validate(body io.Reader, fileName, mediaType string) (entity.ValidatedImage, error) {
	declared := utils.NormalizeMediaType(mediaType)
	if _, ok := v.allowed[declared]; !ok {
		return entity.ValidatedImage{}, entity.ErrInvalidMediaType
	}

	content, err := io.ReadAll(body)
	if err != nil {
		return entity.ValidatedImage{}, fmt.Errorf("read payload: %w", err)
	}

	if int64(len(content)) > v.maxSize {
		return entity.ValidatedImage{}, entity.ErrPayloadTooLarge
	}

	// The declared type is authoritative for the policy; content sniffing is
	// advisory only and never fails the upload.
	if detected := mimetype.Detect(content); !detected.Is(declared) {
		logger.Warn("declared media type differs from detected content",
			"file", fileName, "declared", declared, "detected", detected.String())
	}

	return entity.ValidatedImage{
		Content:   content,
		MediaType: declared,
		Extension: utils.NormalizeExtension(fileName, declared),
	}, nil
}
