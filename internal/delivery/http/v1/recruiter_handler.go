package v1

import (
	"net/http"

	"go-resume-backend/internal/delivery/http/middleware"
	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RecruiterHandler struct {
	recruiterUC domain.RecruiterUsecase
}

func NewRecruiterHandler(r *gin.RouterGroup, recruiterUC domain.RecruiterUsecase) {
	handler := &RecruiterHandler{recruiterUC: recruiterUC}

	recruiter := r.Group("/resume/recruiter")
	recruiter.Use(middleware.RequireRoles(domain.RoleRecruiter))
	{
		recruiter.PATCH("/:id", handler.ChangeStatus)
		recruiter.GET("/:id", handler.ListStatusLogs)
		recruiter.GET("/:id/export", handler.ExportStatusLogs)
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" example:"INTERVIEW1"`
	Reason string `json:"reason" example:"Strong portfolio"`
}

// ChangeStatus godoc
// @Summary      Change resume status
// @Description  Move a resume to a new status and record the transition with a reason
// @Tags         recruiter
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Resume ID"
// @Param        request  body      ChangeStatusRequest  true  "New status"
// @Success      200  {object}  response.Response{data=domain.ResumeStatusLog}
// @Failure      400  {object}  response.Response{data=response.ValidationData}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resume/recruiter/{id} [patch]
// @Security     BearerAuth
func (h *RecruiterHandler) ChangeStatus(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	entry, err := h.recruiterUC.ChangeStatus(c.Request.Context(), callerFrom(c), id, req.Status, req.Reason)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume status changed", entry)
}

// ListStatusLogs godoc
// @Summary      List status logs
// @Description  Status transition history of a resume, newest first
// @Tags         recruiter
// @Produce      json
// @Param        id   path      int  true  "Resume ID"
// @Success      200  {object}  response.Response{data=[]domain.ResumeStatusLog}
// @Failure      403  {object}  response.Response
// @Router       /resume/recruiter/{id} [get]
// @Security     BearerAuth
func (h *RecruiterHandler) ListStatusLogs(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.Error(err)
		return
	}

	logs, err := h.recruiterUC.ListStatusLogs(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Status logs retrieved", logs)
}

// ExportStatusLogs godoc
// @Summary      Export status logs
// @Description  Download the status history as xlsx or csv
// @Tags         recruiter
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Param        id      path   int     true   "Resume ID"
// @Param        format  query  string  false  "xlsx (default) or csv"
// @Success      200  {file}    binary
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /resume/recruiter/{id}/export [get]
// @Security     BearerAuth
func (h *RecruiterHandler) ExportStatusLogs(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.Error(err)
		return
	}

	file, err := h.recruiterUC.ExportStatusLogs(c.Request.Context(), callerFrom(c), id, c.DefaultQuery("format", domain.ExportFormatXLSX))
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+file.Filename)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
