package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vetcareer-backend/internal/delivery/http/response"
	"vetcareer-backend/internal/domain"
	"vetcareer-backend/pkg/apperror"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
	authUC   domain.AuthUsecase
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase, authUC domain.AuthUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC, authUC: authUC}

	resumes := protected.Group("/resumes")
	{
		resumes.POST("", handler.Generate)
	}
}

type GenerateResumeRequest struct {
	ResumeName         string `json:"resume_name"`
	Description        string `json:"description"`
	Skills             string `json:"skills"`
	WorkExperience     string `json:"work_experience"`
	Education          string `json:"education"`
	TrainingExperience string `json:"training_experience"`
	Awards             string `json:"awards"`
}

// Generate godoc
// @Summary      Generate a resume PDF
// @Description  Lay the submitted draft out and return it as a downloadable PDF
// @Tags         resumes
// @Accept       json
// @Produce      application/pdf
// @Param        draft  body  GenerateResumeRequest  true  "Resume draft JSON"
// @Success      200
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /resumes [post]
// @Security     BearerAuth
func (h *ResumeHandler) Generate(c *gin.Context) {
	var req GenerateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	identity, err := h.authUC.RestoreSession(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if identity == nil {
		response.Error(c, http.StatusUnauthorized, "Session has ended. Please sign in again.", nil)
		return
	}

	draft := domain.ResumeDraft{
		ResumeName:         req.ResumeName,
		Description:        req.Description,
		Skills:             req.Skills,
		WorkExperience:     req.WorkExperience,
		Education:          req.Education,
		TrainingExperience: req.TrainingExperience,
		Awards:             req.Awards,
	}

	doc, err := h.resumeUC.GenerateResume(c.Request.Context(), draft, identity)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.PDF)
}
