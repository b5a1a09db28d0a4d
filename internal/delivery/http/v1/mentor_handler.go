package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetcareer-backend/internal/delivery/http/response"
	"vetcareer-backend/internal/domain"
)

type MentorHandler struct {
	mentorUC domain.MentorUsecase
}

func NewMentorHandler(public *gin.RouterGroup, mentorUC domain.MentorUsecase) {
	handler := &MentorHandler{mentorUC: mentorUC}

	mentors := public.Group("/mentors")
	{
		mentors.GET("", handler.List)
		mentors.GET("/:id", handler.GetDetails)
	}
}

// List godoc
// @Summary      List mentors
// @Description  List mentor profiles matching the given criteria. Free text also searches each mentor's skills.
// @Tags         mentors
// @Produce      json
// @Param        search        query  string  false  "Free text over name, role, company and skills"
// @Param        industry      query  string  false  "Industry (exact)"
// @Param        experience    query  string  false  "Experience bucket (exact)"
// @Param        availability  query  string  false  "Availability (exact)"
// @Success      200  {object}  response.Response
// @Router       /mentors [get]
func (h *MentorHandler) List(c *gin.Context) {
	filter := domain.MentorFilter{
		Search:       c.Query("search"),
		Industry:     c.Query("industry"),
		Experience:   c.Query("experience"),
		Availability: c.Query("availability"),
	}

	mentors, err := h.mentorUC.ListMentors(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Mentor list", gin.H{
		"mentors": mentors,
		"total":   len(mentors),
	})
}

// GetDetails godoc
// @Summary      Get mentor details
// @Tags         mentors
// @Produce      json
// @Param        id   path      string  true  "Mentor ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /mentors/{id} [get]
func (h *MentorHandler) GetDetails(c *gin.Context) {
	mentor, err := h.mentorUC.GetMentorDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Mentor details", mentor)
}
