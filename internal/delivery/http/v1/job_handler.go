package v1

import (
	"net/http"
	"strconv"

	"go-career-mentor-backend/internal/delivery/http/middleware"
	"go-career-mentor-backend/internal/delivery/http/response"
	"go-career-mentor-backend/internal/domain"
	"go-career-mentor-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC   domain.JobUsecase
	matchUC domain.MatchUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase, matchUC domain.MatchUsecase) {
	handler := &JobHandler{jobUC: jobUC, matchUC: matchUC}

	jobs := protected.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/search", handler.Search)
		jobs.GET("/matches", handler.Matches)
		jobs.GET("/saved", handler.ListSaved)
		jobs.POST("/refresh", handler.Refresh)
		jobs.GET("/:id", handler.GetDetails)
		jobs.POST("/:id/save", handler.Save)
		jobs.DELETE("/:id/save", handler.Unsave)
	}
}

type jobListPayload struct {
	Jobs  []domain.JobPosting `json:"jobs"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
}

// List godoc
// @Summary      List Jobs
// @Description  Lists active job postings, newest first
// @Tags         jobs
// @Produce      json
// @Param        page       query  int  false  "Page number"      default(1)
// @Param        page_size  query  int  false  "Results per page" default(20)
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", 20)

	jobs, total, err := h.jobUC.ListActiveJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", jobListPayload{Jobs: jobs, Total: total, Page: page})
}

// Search godoc
// @Summary      Search Jobs
// @Description  Full-text search over active postings by keyword and location
// @Tags         jobs
// @Produce      json
// @Param        q          query  string  false  "Keyword"
// @Param        location   query  string  false  "Location"
// @Param        page       query  int     false  "Page number"
// @Param        page_size  query  int     false  "Results per page"
// @Success      200  {object}  response.Response
// @Router       /jobs/search [get]
// @Security     BearerAuth
func (h *JobHandler) Search(c *gin.Context) {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", 20)

	jobs, total, err := h.jobUC.SearchJobs(c.Request.Context(), c.Query("q"), c.Query("location"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", jobListPayload{Jobs: jobs, Total: total, Page: page})
}

// Matches godoc
// @Summary      Ranked Job Matches
// @Description  Scores every active posting against the user's profile and preferences and returns the best matches
// @Tags         jobs
// @Produce      json
// @Param        limit      query  int     false  "Maximum results"    default(20)
// @Param        min_score  query  number  false  "Minimum match score" default(50)
// @Success      200  {object}  response.Response
// @Router       /jobs/matches [get]
// @Security     BearerAuth
func (h *JobHandler) Matches(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	limit := queryInt(c, "limit", 0)
	minScore := -1.0
	if raw := c.Query("min_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 100 {
			c.Error(apperror.BadRequest("min_score must be a number between 0 and 100"))
			return
		}
		minScore = v
	}

	matches, err := h.matchUC.FindMatches(c.Request.Context(), userID, limit, minScore)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", matches)
}

// GetDetails godoc
// @Summary      Get Job
// @Tags         jobs
// @Produce      json
// @Param        id   path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", job)
}

// Refresh godoc
// @Summary      Refresh Job Catalog
// @Description  Pulls fresh postings from the external job board into the catalog
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /jobs/refresh [post]
// @Security     BearerAuth
func (h *JobHandler) Refresh(c *gin.Context) {
	var req struct {
		Query    string `json:"query" binding:"required"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	stored, err := h.jobUC.RefreshCatalog(c.Request.Context(), req.Query, req.Location)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Catalog refreshed", gin.H{"stored": stored})
}

// Save godoc
// @Summary      Save Job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path  int  true  "Job ID"
// @Success      201  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/save [post]
// @Security     BearerAuth
func (h *JobHandler) Save(c *gin.Context) {
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

	var req struct {
		Notes string `json:"notes" binding:"max=1000"`
	}
	// Body is optional for saves without notes
	_ = c.ShouldBindJSON(&req)

	if err := h.jobUC.SaveJob(c.Request.Context(), userID, id, req.Notes); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job saved", nil)
}

// Unsave godoc
// @Summary      Unsave Job
// @Tags         jobs
// @Produce      json
// @Param        id   path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/save [delete]
// @Security     BearerAuth
func (h *JobHandler) Unsave(c *gin.Context) {
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

	if err := h.jobUC.UnsaveJob(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job unsaved", nil)
}

// ListSaved godoc
// @Summary      List Saved Jobs
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs/saved [get]
// @Security     BearerAuth
func (h *JobHandler) ListSaved(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	saved, err := h.jobUC.ListSavedJobs(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", saved)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.BadRequest("Invalid ID")
	}
	return id, nil
}
