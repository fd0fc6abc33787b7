package controllers

import (
	"math"
	"net/http"

	"github.com/EltonDagodog/VoteRoyale/api/models"
	"github.com/EltonDagodog/VoteRoyale/api/transport"
	"github.com/EltonDagodog/VoteRoyale/logging"
	"github.com/EltonDagodog/VoteRoyale/storage"
	"github.com/EltonDagodog/VoteRoyale/upstream"
	"github.com/gin-gonic/gin"
)

type CategoriesController struct {
	upstream *upstream.Client
	sessions storage.SessionStorage
}

func NewCategoriesController(client *upstream.Client, sessions storage.SessionStorage) *CategoriesController {
	return &CategoriesController{upstream: client, sessions: sessions}
}

func (c *CategoriesController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/events/:eventId/categories", transport.SessionAuthMiddleware(c.sessions))

	group.GET("", c.list)
	group.GET("/:categoryId", c.get)

	coordinator := group.Group("", transport.RequireRole(storage.RoleCoordinator))
	coordinator.POST("", c.create)
	coordinator.PUT("/:categoryId", c.update)
	coordinator.DELETE("/:categoryId", c.delete)
}

// list godoc
// @Summary List an event's award categories
// @Tags categories
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {array} models.CategoryResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/events/{eventId}/categories [get]
func (c *CategoriesController) list(g *gin.Context) {
	session := transport.SessionFrom(g)
	categories, err := c.upstream.Categories(g.Request.Context(), session.AccessToken, upstream.ID(g.Param("eventId")))
	if err != nil {
		respondUpstreamError(g, err)
		return
	}

	responses := make([]models.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		cat := cat
		responses = append(responses, models.TransformCategoryFromUpstream(&cat))
	}
	g.JSON(http.StatusOK, responses)
}

// get godoc
// @Summary Get one award category
// @Tags categories
// @Produce json
// @Param eventId path string true "Event ID"
// @Param categoryId path string true "Category ID"
// @Success 200 {object} models.CategoryResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/events/{eventId}/categories/{categoryId} [get]
func (c *CategoriesController) get(g *gin.Context) {
	session := transport.SessionFrom(g)
	category, err := c.upstream.Category(g.Request.Context(), session.AccessToken,
		upstream.ID(g.Param("eventId")), upstream.ID(g.Param("categoryId")))
	if err != nil {
		respondUpstreamError(g, err)
		return
	}
	g.JSON(http.StatusOK, models.TransformCategoryFromUpstream(category))
}

// create godoc
// @Summary Create an award category
// @Description Criteria percentages must sum to exactly 100.
// @Tags categories
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param category body models.CategoryCreateRequest true "Category with criteria"
// @Success 200 {object} models.CategoryResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/events/{eventId}/categories [post]
func (c *CategoriesController) create(g *gin.Context) {
	var req models.CategoryCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name, max score, weight and at least one criterion are required"})
		return
	}
	if total := req.TotalCriteriaPercentage(); math.Abs(total-100) > 1e-9 {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "criteria percentages must equal exactly 100%"})
		return
	}

	session := transport.SessionFrom(g)
	category, err := c.upstream.CreateCategory(g.Request.Context(), session.AccessToken,
		upstream.ID(g.Param("eventId")), req.ToUpstream())
	if err != nil {
		respondUpstreamError(g, err)
		return
	}
	logging.Log.Infof("CATEGORIES: created category %s with %d criteria", category.Name, len(category.Criteria))
	g.JSON(http.StatusOK, models.TransformCategoryFromUpstream(category))
}

// update godoc
// @Summary Update an award category
// @Tags categories
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param categoryId path string true "Category ID"
// @Param category body models.CategoryCreateRequest true "Category with criteria"
// @Success 200 {object} models.CategoryResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/events/{eventId}/categories/{categoryId} [put]
func (c *CategoriesController) update(g *gin.Context) {
	var req models.CategoryCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request"})
		return
	}
	if total := req.TotalCriteriaPercentage(); math.Abs(total-100) > 1e-9 {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "criteria percentages must equal exactly 100%"})
		return
	}

	session := transport.SessionFrom(g)
	category, err := c.upstream.UpdateCategory(g.Request.Context(), session.AccessToken,
		upstream.ID(g.Param("eventId")), upstream.ID(g.Param("categoryId")), req.ToUpstream())
	if err != nil {
		respondUpstreamError(g, err)
		return
	}
	g.JSON(http.StatusOK, models.TransformCategoryFromUpstream(category))
}

// delete godoc
// @Summary Delete an award category
// @Tags categories
// @Produce json
// @Param eventId path string true "Event ID"
// @Param categoryId path string true "Category ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/events/{eventId}/categories/{categoryId} [delete]
func (c *CategoriesController) delete(g *gin.Context) {
	session := transport.SessionFrom(g)
	err := c.upstream.DeleteCategory(g.Request.Context(), session.AccessToken,
		upstream.ID(g.Param("eventId")), upstream.ID(g.Param("categoryId")))
	if err != nil {
		respondUpstreamError(g, err)
		return
	}
	logging.Log.Infof("CATEGORIES: deleted category %s", g.Param("categoryId"))
	g.JSON(http.StatusOK, models.MessageResponse{Message: "category deleted"})
}
