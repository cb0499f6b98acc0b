package heroslide

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
	rg.GET("/hero-slides", h.ListActive)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/hero-slides", h.ListAll)
	rg.POST("/hero-slides", h.Create)
	rg.PUT("/hero-slides/:id", h.Update)
	rg.DELETE("/hero-slides/:id", h.Delete)
}

// ListActive handles GET /api/v1/hero-slides
// @Summary List active hero slides in display order
// @Tags HeroSlides
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /hero-slides [get]
func (h *Handler) ListActive(c *gin.Context) {
	slides, err := h.service.GetActive(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, slides)
}

// ListAll handles GET /api/v1/admin/hero-slides
// @Summary List all hero slides
// @Tags HeroSlides
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/hero-slides [get]
func (h *Handler) ListAll(c *gin.Context) {
	slides, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, slides)
}

// Create handles POST /api/v1/admin/hero-slides
// @Summary Create a hero slide
// @Tags HeroSlides
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSlideRequest true "Slide data"
// @Success 201 {object} map[string]interface{}
// @Failure 400,422,503 {object} map[string]interface{}
// @Router /admin/hero-slides [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	slide, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, database.ErrNotConfigured) {
			response.Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, slide)
}

// Update handles PUT /api/v1/admin/hero-slides/:id
// @Summary Update a hero slide
// @Tags HeroSlides
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slide ID"
// @Param request body UpdateSlideRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,503 {object} map[string]interface{}
// @Router /admin/hero-slides/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid slide ID")
		return
	}

	var req UpdateSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	slide, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlideNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hero slide not found")
		case errors.Is(err, database.ErrNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, slide)
}

// Delete handles DELETE /api/v1/admin/hero-slides/:id
// @Summary Delete a hero slide
// @Tags HeroSlides
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slide ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,503 {object} map[string]interface{}
// @Router /admin/hero-slides/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid slide ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrSlideNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hero slide not found")
		case errors.Is(err, database.ErrNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Hero slide deleted"})
}
