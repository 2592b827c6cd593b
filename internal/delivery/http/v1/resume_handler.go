package v1

import (
	"io"
	"net/http"

	"go-career-mentor-backend/internal/delivery/http/middleware"
	"go-career-mentor-backend/internal/delivery/http/response"
	"go-career-mentor-backend/internal/domain"
	"go-career-mentor-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC    domain.ResumeUsecase
	assistantUC domain.AssistantUsecase
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase, assistantUC domain.AssistantUsecase, uploadLimit, aiLimit gin.HandlerFunc) {
	handler := &ResumeHandler{resumeUC: resumeUC, assistantUC: assistantUC}

	resume := protected.Group("/resume")
	{
		resume.POST("/upload", uploadLimit, handler.Upload)
		resume.GET("/analyses", handler.ListAnalyses)
		resume.POST("/optimize", aiLimit, handler.Optimize)
	}

	protected.POST("/jobs/:id/cover-letter", aiLimit, handler.CoverLetter)
}

// Upload godoc
// @Summary      Upload and Analyze Resume
// @Description  Accepts a PDF, DOCX or TXT resume, extracts contacts and skills, runs an AI review and merges found skills into the profile
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume file"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /resume/upload [post]
// @Security     BearerAuth
func (h *ResumeHandler) Upload(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("A file upload named 'file' is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(err)
		return
	}

	analysis, err := h.resumeUC.AnalyzeUpload(c.Request.Context(), userID, fileHeader.Filename, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume analyzed", analysis)
}

// ListAnalyses godoc
// @Summary      List Resume Analyses
// @Tags         resume
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /resume/analyses [get]
// @Security     BearerAuth
func (h *ResumeHandler) ListAnalyses(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	analyses, err := h.resumeUC.ListAnalyses(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", analyses)
}

type OptimizeRequest struct {
	ResumeText string `json:"resume_text" binding:"required,max=30000"`
	TargetRole string `json:"target_role" binding:"max=150"`
}

// Optimize godoc
// @Summary      Optimize Resume Text
// @Description  Rewrites resume text for a target role using the AI mentor
// @Tags         resume
// @Accept       json
// @Produce      json
// @Param        optimize  body      OptimizeRequest  true  "Resume text"
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /resume/optimize [post]
// @Security     BearerAuth
func (h *ResumeHandler) Optimize(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	optimized, err := h.assistantUC.OptimizeResume(c.Request.Context(), userID, req.ResumeText, req.TargetRole)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", gin.H{"optimized": optimized})
}

type CoverLetterRequest struct {
	Tone string `json:"tone" binding:"omitempty,oneof=professional friendly enthusiastic formal"`
}

// CoverLetter godoc
// @Summary      Generate Cover Letter
// @Description  Drafts a cover letter for a posting from the user's profile
// @Tags         resume
// @Accept       json
// @Produce      json
// @Param        id     path  int                 true   "Job ID"
// @Param        letter body  CoverLetterRequest  false  "Options"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /jobs/{id}/cover-letter [post]
// @Security     BearerAuth
func (h *ResumeHandler) CoverLetter(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	jobID, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req CoverLetterRequest
	// Body is optional
	_ = c.ShouldBindJSON(&req)

	letter, err := h.assistantUC.GenerateCoverLetter(c.Request.Context(), userID, jobID, req.Tone)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", gin.H{"cover_letter": letter})
}
