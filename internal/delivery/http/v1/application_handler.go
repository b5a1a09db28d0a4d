package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetcareer-backend/internal/delivery/http/response"
	"vetcareer-backend/internal/domain"
	"vetcareer-backend/pkg/apperror"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := protected.Group("/applications")
	{
		applications.POST("", handler.Apply)
		applications.GET("", handler.ListMine)
	}
}

type ApplyRequest struct {
	JobID     string           `json:"job_id" binding:"required"`
	Applicant domain.Applicant `json:"applicant" binding:"required"`
}

// Apply godoc
// @Summary      Apply for a job
// @Description  Apply for a job and book the interview slot. Each account may hold at most five applications.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      ApplyRequest  true  "Application JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), req.JobID, req.Applicant)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Successfully booked an interview with "+app.Company, app)
}

// ListMine godoc
// @Summary      List my applications
// @Description  List the signed-in account's applications in apply order
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.applicationUC.ListMyApplications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application list", gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}
