package portfolio

import (
	"errors"
	"net/http"
	"strconv"

	"interiorstudio/internal/database"
	"interiorstudio/internal/pkg/response"
	"interiorstudio/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/portfolios", h.ListPublished)
	rg.GET("/portfolios/:id", h.GetByID)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/portfolios", h.ListAll)
	rg.GET("/portfolios/:id", h.GetByID)
	rg.POST("/portfolios", h.Create)
	rg.PUT("/portfolios/:id", h.Update)
	rg.DELETE("/portfolios/:id", h.Delete)
}

// ListPublished handles GET /api/v1/portfolios
// @Summary List published portfolios
// @Tags Portfolios
// @Produce json
// @Param category query string false "Filter by category name"
// @Success 200 {object} map[string]interface{}
// @Router /portfolios [get]
func (h *Handler) ListPublished(c *gin.Context) {
	items, err := h.service.GetPublished(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListAll handles GET /api/v1/admin/portfolios
// @Summary List all portfolios including drafts
// @Tags Portfolios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/portfolios [get]
func (h *Handler) ListAll(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, items)
}

// GetByID handles GET /api/v1/portfolios/:id
// @Summary Get one portfolio
// @Tags Portfolios
// @Produce json
// @Param id path int true "Portfolio ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /portfolios/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid portfolio ID")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPortfolioNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Portfolio not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, p)
}

// Create handles POST /api/v1/admin/portfolios
// @Summary Create a portfolio
// @Tags Portfolios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePortfolioRequest true "Portfolio data"
// @Success 201 {object} map[string]interface{}
// @Failure 400,422,503 {object} map[string]interface{}
// @Router /admin/portfolios [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, database.ErrNotConfigured) {
			response.Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, p)
}

// Update handles PUT /api/v1/admin/portfolios/:id
// @Summary Update a portfolio
// @Tags Portfolios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Portfolio ID"
// @Param request body UpdatePortfolioRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,503 {object} map[string]interface{}
// @Router /admin/portfolios/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid portfolio ID")
		return
	}

	var req UpdatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPortfolioNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Portfolio not found")
		case errors.Is(err, database.ErrNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, p)
}

// Delete handles DELETE /api/v1/admin/portfolios/:id
// @Summary Delete a portfolio
// @Tags Portfolios
// @Produce json
// @Security BearerAuth
// @Param id path int true "Portfolio ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,503 {object} map[string]interface{}
// @Router /admin/portfolios/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid portfolio ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrPortfolioNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Portfolio not found")
		case errors.Is(err, database.ErrNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Portfolio deleted"})
}
