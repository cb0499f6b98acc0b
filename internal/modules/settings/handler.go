package settings

import (
	"errors"
	"net/http"

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
	rg.GET("/settings", h.List)
	rg.GET("/settings/:key", h.Get)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.List)
	rg.PUT("/settings/:key", h.Upsert)
}

// List godoc
// @Summary Get all site settings
// @Tags settings
// @Produce json
// @Success 200 {object} response.Response
// @Router /settings [get]
func (h *Handler) List(c *gin.Context) {
	m, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, m)
}

func (h *Handler) Get(c *gin.Context) {
	key := c.Param("key")

	value, err := h.service.GetByKey(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Setting not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"key": key, "value": value})
}

// Upsert godoc
// @Summary Create or update a site setting
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} response.Response
// @Router /admin/settings/{key} [put]
func (h *Handler) Upsert(c *gin.Context) {
	key := c.Param("key")

	var req UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	setting, err := h.service.Upsert(c.Request.Context(), key, req.Value)
	if err != nil {
		if errors.Is(err, database.ErrNotConfigured) {
			response.Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, setting)
}
