package about

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
	rg.GET("/about", h.List)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/about", h.List)
	rg.POST("/about", h.Create)
	rg.PUT("/about/:id", h.Update)
	rg.DELETE("/about/:id", h.Delete)
}

// List handles GET /api/v1/about with an optional ?section= filter.
func (h *Handler) List(c *gin.Context) {
	if section := c.Query("section"); section != "" {
		items, err := h.service.GetBySection(c.Request.Context(), section)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
			return
		}
		response.Success(c, http.StatusOK, items)
		return
	}

	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, database.ErrNotConfigured) {
			response.Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid content ID")
		return
	}

	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrContentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "About content not found")
		case errors.Is(err, database.ErrNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid content ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrContentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "About content not found")
		case errors.Is(err, database.ErrNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "About content deleted"})
}
