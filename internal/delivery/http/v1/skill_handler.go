package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetcareer-backend/internal/delivery/http/response"
	"vetcareer-backend/internal/domain"
	"vetcareer-backend/pkg/apperror"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(public *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	skills := public.Group("/skills")
	{
		skills.POST("/translate", handler.Translate)
	}
}

type TranslateRequest struct {
	Skill string `json:"skill" binding:"required"`
}

// Translate godoc
// @Summary      Translate a military skill
// @Description  Map a military skill keyword to civilian roles with salary estimates
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        skill  body      TranslateRequest  true  "Skill JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /skills/translate [post]
func (h *SkillHandler) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.skillUC.Translate(c.Request.Context(), req.Skill)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill translated", result)
}
