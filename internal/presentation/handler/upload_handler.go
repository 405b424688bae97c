package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pfp3/internal/application/usecase/abstraction"
	"pfp3/internal/domain/dto"
	"pfp3/internal/domain/entity"
	"pfp3/internal/domain/model"
	"pfp3/internal/presentation"
	"pfp3/pkg/logger"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Handle handles POST /users/me/avatar requests.
func (h *UploadHandler) Handle(c echo.Context) error {
	user, ok := c.Get(presentation.KeyUser).(*model.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized,
			dto.ErrorResponse{Detail: "Invalid authentication token."})
	}

	fileHeader, err := c.FormFile(presentation.FileField)
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			dto.ErrorResponse{Detail: "A file field named 'file' is required."})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			dto.ErrorResponse{Detail: "Could not read uploaded file."})
	}
	defer src.Close()

	result, err := h.uploader.Upload(c.Request().Context(), user, src,
		fileHeader.Filename, fileHeader.Header.Get(echo.HeaderContentType))
	if err != nil {
		return uploadErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, dto.AvatarUploadResponse{
		Message:   "Avatar uploaded successfully.",
		AvatarURL: result.AvatarURL,
		UserID:    result.UserID,
	})
}

func uploadErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, entity.ErrInvalidMediaType):
		return c.JSON(http.StatusBadRequest,
			dto.ErrorResponse{Detail: "Only PNG and JPEG images are allowed."})
	case errors.Is(err, entity.ErrPayloadTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge,
			dto.ErrorResponse{Detail: "Avatar image is too large."})
	default:
		logger.Error("avatar upload failed", "err", err)

		return c.JSON(http.StatusInternalServerError,
			dto.ErrorResponse{Detail: "Failed to upload avatar. Please try again later."})
	}
}
