package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/socialhax/socialhax/internal/models"
	"github.com/socialhax/socialhax/internal/services"
	"github.com/socialhax/socialhax/internal/storage"
)

// ProfileHandler обрабатывает запросы профиля цели и прайса.
type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile обрабатывает GET /api/profile/:platform/:username.
// Показатели передаются в строке запроса и разбираются по возможности.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	stats := services.ProfileStats{
		Followers: c.QueryParam("followers"),
		Following: c.QueryParam("following"),
		Posts:     c.QueryParam("posts"),
	}

	profile := h.profileService.Profile(
		c.Request().Context(),
		c.Param("platform"),
		c.Param("username"),
		stats,
	)

	return c.JSON(http.StatusOK, profile)
}

// GetQuote обрабатывает GET /api/quote/:platform.
// Параметры instant и partial переопределяют цены по умолчанию.
func (h *ProfileHandler) GetQuote(c echo.Context) error {
	quote := h.profileService.Quote(
		c.Param("platform"),
		c.QueryParam("instant"),
		c.QueryParam("partial"),
	)

	return c.JSON(http.StatusOK, quote)
}

// UploadPicture обрабатывает POST /api/profile/picture.
func (h *ProfileHandler) UploadPicture(c echo.Context) error {
	var req models.ProfilePicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.DataURI) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "data_uri is required")
	}

	h.profileService.StorePicture(c.Request().Context(), req.DataURI)
	return c.NoContent(http.StatusNoContent)
}

// TakePicture обрабатывает GET /api/profile/picture.
// Слот одноразовый: успешный ответ удаляет сохранённый аватар.
func (h *ProfileHandler) TakePicture(c echo.Context) error {
	dataURI, err := h.profileService.TakePicture(c.Request().Context())
	if err != nil {
		if errors.Is(err, storage.ErrNoProfilePic) {
			return echo.NewHTTPError(http.StatusNotFound, "no profile picture stored")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, models.ProfilePicResponse{DataURI: dataURI})
}
