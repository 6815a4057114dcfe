package v1

import (
	"net/http"

	"go-resume-backend/internal/delivery/http/middleware"
	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(r *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	applicantOnly := middleware.RequireRoles(domain.RoleApplicant)

	resumes := r.Group("/resume")
	{
		resumes.POST("", applicantOnly, handler.CreateResume)
		resumes.GET("", handler.ListResumes)
		resumes.GET("/:id", handler.GetResume)
		resumes.PATCH("/:id", applicantOnly, handler.UpdateResume)
		resumes.DELETE("/:id", applicantOnly, handler.DeleteResume)
	}
}

type CreateResumeRequest struct {
	Title   string `json:"title" example:"Backend Engineer"`
	Content string `json:"content"`
}

// UpdateResumeRequest carries optional fields; omitted fields stay unchanged
type UpdateResumeRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// CreateResume godoc
// @Summary      Create resume
// @Description  Create a resume in APPLY status for the logged-in applicant
// @Tags         resume
// @Accept       json
// @Produce      json
// @Param        request  body      CreateResumeRequest  true  "Resume"
// @Success      201  {object}  response.Response{data=domain.ResumeSummary}
// @Failure      400  {object}  response.Response{data=response.ValidationData}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /resume [post]
// @Security     BearerAuth
func (h *ResumeHandler) CreateResume(c *gin.Context) {
	var req CreateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	summary, err := h.resumeUC.CreateResume(c.Request.Context(), callerFrom(c), req.Title, req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume created", summary)
}

// ListResumes godoc
// @Summary      List resumes
// @Description  Applicants see their own resumes, recruiters see all
// @Tags         resume
// @Produce      json
// @Param        sort    query  string  false  "asc or desc by creation time (default desc)"
// @Param        status  query  string  false  "Status filter, comma separated"
// @Success      200  {object}  response.Response{data=[]domain.Resume}
// @Failure      400  {object}  response.Response{data=response.ValidationData}
// @Failure      401  {object}  response.Response
// @Router       /resume [get]
// @Security     BearerAuth
func (h *ResumeHandler) ListResumes(c *gin.Context) {
	resumes, err := h.resumeUC.ListResumes(c.Request.Context(), callerFrom(c), c.Query("sort"), c.Query("status"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resumes retrieved", resumes)
}

// GetResume godoc
// @Summary      Get resume
// @Tags         resume
// @Produce      json
// @Param        id   path      int  true  "Resume ID"
// @Success      200  {object}  response.Response{data=domain.Resume}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resume/{id} [get]
// @Security     BearerAuth
func (h *ResumeHandler) GetResume(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.Error(err)
		return
	}

	resume, err := h.resumeUC.GetResume(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume retrieved", resume)
}

// UpdateResume godoc
// @Summary      Update resume
// @Description  Edit the title and/or content of an owned resume
// @Tags         resume
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Resume ID"
// @Param        request  body      UpdateResumeRequest  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Resume}
// @Failure      400  {object}  response.Response{data=response.ValidationData}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resume/{id} [patch]
// @Security     BearerAuth
func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	resume, err := h.resumeUC.UpdateResume(c.Request.Context(), callerFrom(c), id, domain.ResumePatch{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume updated", resume)
}

// DeleteResume godoc
// @Summary      Delete resume
// @Tags         resume
// @Produce      json
// @Param        id   path      int  true  "Resume ID"
// @Success      200  {object}  response.Response{data=domain.DeleteResult}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resume/{id} [delete]
// @Security     BearerAuth
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.resumeUC.DeleteResume(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume deleted", result)
}
