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

type AlertHandler struct {
	alertUC  domain.AlertUsecase
	validate *validator.Validate
}

func NewAlertHandler(protected *gin.RouterGroup, alertUC domain.AlertUsecase, validate *validator.Validate) {
	handler := &AlertHandler{alertUC: alertUC, validate: validate}

	alerts := protected.Group("/alerts")
	{
		alerts.GET("", handler.List)
		alerts.POST("", handler.Create)
		alerts.PUT("/:id", handler.Update)
		alerts.DELETE("/:id", handler.Delete)
		alerts.POST("/run", handler.Run)
	}
}

// List godoc
// @Summary      List Job Alerts
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /alerts [get]
// @Security     BearerAuth
func (h *AlertHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	alerts, err := h.alertUC.ListAlerts(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", alerts)
}

// Create godoc
// @Summary      Create Job Alert
// @Description  Stores a search that is periodically re-run; new matches are emailed
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Param        alert  body      domain.JobAlert  true  "Alert"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /alerts [post]
// @Security     BearerAuth
func (h *AlertHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var alert domain.JobAlert
	if err := c.ShouldBindJSON(&alert); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if alert.Frequency == "" {
		alert.Frequency = "daily"
	}
	if err := h.validate.Struct(&alert); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	alert.UserID = userID
	alert.IsEnabled = true
	if err := h.alertUC.CreateAlert(c.Request.Context(), &alert); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Alert created", alert)
}

// Update godoc
// @Summary      Update Job Alert
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Param        id     path  int              true  "Alert ID"
// @Param        alert  body  domain.JobAlert  true  "Alert"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /alerts/{id} [put]
// @Security     BearerAuth
func (h *AlertHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var alert domain.JobAlert
	if err := c.ShouldBindJSON(&alert); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.validate.Struct(&alert); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	alert.ID = id
	alert.UserID = userID
	if err := h.alertUC.UpdateAlert(c.Request.Context(), &alert); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Alert updated", alert)
}

// Delete godoc
// @Summary      Delete Job Alert
// @Tags         alerts
// @Produce      json
// @Param        id   path  int  true  "Alert ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /alerts/{id} [delete]
// @Security     BearerAuth
func (h *AlertHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.alertUC.DeleteAlert(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Alert deleted", nil)
}

// Run godoc
// @Summary      Run Due Alerts
// @Description  Re-runs every due alert and emails digests. Intended for a scheduler.
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /alerts/run [post]
// @Security     BearerAuth
func (h *AlertHandler) Run(c *gin.Context) {
	sent, err := h.alertUC.RunDueAlerts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Alerts processed", gin.H{"digests_sent": sent})
}
