package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetcareer-backend/internal/delivery/http/response"
	"vetcareer-backend/internal/domain"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := public.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.GetDetails)
	}
}

// List godoc
// @Summary      List job postings
// @Description  List job postings matching the given criteria. All criteria are optional and combine conjunctively.
// @Tags         jobs
// @Produce      json
// @Param        search            query  string  false  "Free text over title, company and description"
// @Param        location          query  string  false  "Location substring"
// @Param        industry          query  string  false  "Industry (exact)"
// @Param        job_type          query  string  false  "Job type (exact)"
// @Param        experience_level  query  string  false  "Experience level (exact)"
// @Param        sort              query  string  false  "Set to 'match' to order by match score"
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{
		Search:          c.Query("search"),
		Location:        c.Query("location"),
		Industry:        c.Query("industry"),
		JobType:         c.Query("job_type"),
		ExperienceLevel: c.Query("experience_level"),
	}
	sortByMatch := c.Query("sort") == "match"

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), filter, sortByMatch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// GetDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJobDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}
