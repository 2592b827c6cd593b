package v1

import (
	"net/http"

	"go-career-mentor-backend/internal/delivery/http/middleware"
	"go-career-mentor-backend/internal/delivery/http/response"
	"go-career-mentor-backend/internal/domain"
	"go-career-mentor-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	prefsUC   domain.PreferencesUsecase
	validate  *validator.Validate
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase, prefsUC domain.PreferencesUsecase, validate *validator.Validate) {
	handler := &ProfileHandler{profileUC: profileUC, prefsUC: prefsUC, validate: validate}

	profile := protected.Group("/profile")
	{
		profile.GET("", handler.Get)
		profile.PUT("", handler.Update)
		profile.GET("/preferences", handler.GetPreferences)
		profile.PUT("/preferences", handler.UpdatePreferences)
	}
}

// Get godoc
// @Summary      Get Career Profile
// @Description  Returns the user's career profile, or null when not yet created
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	profile, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", profile)
}

// Update godoc
// @Summary      Update Career Profile
// @Description  Creates or replaces the user's career profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.UserProfile  true  "Profile"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.validate.Struct(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile.UserID = userID
	if err := h.profileUC.UpdateProfile(c.Request.Context(), &profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// GetPreferences godoc
// @Summary      Get Job Preferences
// @Description  Returns the user's job search preferences, or null when not set
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profile/preferences [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetPreferences(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	prefs, err := h.prefsUC.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", prefs)
}

// UpdatePreferences godoc
// @Summary      Update Job Preferences
// @Description  Creates or replaces the user's job search preferences
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        preferences  body      domain.UserJobPreferences  true  "Preferences"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile/preferences [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var prefs domain.UserJobPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.validate.Struct(&prefs); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	prefs.UserID = userID
	if err := h.prefsUC.UpdatePreferences(c.Request.Context(), &prefs); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Preferences updated", prefs)
}
