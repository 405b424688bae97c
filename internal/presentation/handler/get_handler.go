package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"pfp3/internal/application/usecase/abstraction"
	"pfp3/internal/domain/dto"
	"pfp3/internal/domain/entity"
	"pfp3/internal/presentation"
	"pfp3/pkg/logger"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{getter: getter}
}

// Handle handles GET /users/:user_id/avatar requests. No credential required.
func (h *GetHandler) Handle(c echo.Context) error {
	userID := c.Param(presentation.UserIDParam)
	if userID == "" {
		return c.JSON(http.StatusBadRequest,
			dto.ErrorResponse{Detail: "Missing user id."})
	}

	avatar, err := h.getter.Get(c.Request().Context(), userID)
	if err != nil {
		return getErrorResponse(c, err)
	}
	defer avatar.Body.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("inline; filename=%s", avatar.FileName))
	c.Response().Header().Set(echo.HeaderContentLength, fmt.Sprintf("%d", avatar.Size))

	return c.Stream(http.StatusOK, avatar.MediaType, avatar.Body)
}

func getErrorResponse(c echo.Context, err error) error {
	c.Response().Header().Set(presentation.ReasonTag, err.Error())

	switch {
	case errors.Is(err, entity.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "User not found."})
	case errors.Is(err, entity.ErrNoAvatarSet):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "User has no avatar."})
	case errors.Is(err, entity.ErrBlobMissing):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Avatar file not found."})
	default:
		logger.Error("avatar retrieval failed", "err", err)

		return c.JSON(http.StatusInternalServerError,
			dto.ErrorResponse{Detail: "Failed to retrieve avatar. Please try again later."})
	}
}
