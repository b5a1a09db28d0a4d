package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetcareer-backend/internal/delivery/http/response"
	"vetcareer-backend/internal/domain"
)

type ResourceHandler struct {
	resourceUC domain.ResourceUsecase
}

func NewResourceHandler(public *gin.RouterGroup, resourceUC domain.ResourceUsecase) {
	handler := &ResourceHandler{resourceUC: resourceUC}

	resources := public.Group("/resources")
	{
		resources.GET("", handler.List)
		resources.GET("/featured", handler.Featured)
		resources.GET("/popular", handler.Popular)
		resources.GET("/categories", handler.Categories)
	}
}

// List godoc
// @Summary      List resources
// @Description  List career-transition resources. A category of "all" (or none) spans every category.
// @Tags         resources
// @Produce      json
// @Param        search    query  string  false  "Free text over title and description"
// @Param        category  query  string  false  "Category ID"
// @Success      200  {object}  response.Response
// @Router       /resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	filter := domain.ResourceFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}

	resources, err := h.resourceUC.ListResources(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resource list", gin.H{
		"resources": resources,
		"total":     len(resources),
	})
}

// Featured godoc
// @Summary      Featured resources
// @Tags         resources
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /resources/featured [get]
func (h *ResourceHandler) Featured(c *gin.Context) {
	resources, err := h.resourceUC.FeaturedResources(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Featured resources", resources)
}

// Popular godoc
// @Summary      Popular resources
// @Tags         resources
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /resources/popular [get]
func (h *ResourceHandler) Popular(c *gin.Context) {
	resources, err := h.resourceUC.PopularResources(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Popular resources", resources)
}

// Categories godoc
// @Summary      List resource categories
// @Tags         resources
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /resources/categories [get]
func (h *ResourceHandler) Categories(c *gin.Context) {
	categories, err := h.resourceUC.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resource categories", categories)
}
