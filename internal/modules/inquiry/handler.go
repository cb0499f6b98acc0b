package inquiry

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
	rg.POST("/inquiries", h.Create)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/inquiries", h.List)
	rg.GET("/inquiries/:id", h.Get)
	rg.PATCH("/inquiries/:id/read", h.MarkAsRead)
	rg.DELETE("/inquiries/:id", h.Delete)
}

// Create godoc
// @Summary Submit a contact inquiry
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body CreateInquiryRequest true "Inquiry"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /inquiries [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	i, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, database.ErrNotConfigured) {
			response.Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, i)
}

func (h *Handler) List(c *gin.Context) {
	inquiries, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, inquiries)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid inquiry ID")
		return
	}

	i, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrInquiryNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Inquiry not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, i)
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid inquiry ID")
		return
	}

	i, err := h.service.MarkAsRead(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrInquiryNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Inquiry not found")
		case errors.Is(err, database.ErrNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, i)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid inquiry ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrInquiryNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Inquiry not found")
		case errors.Is(err, database.ErrNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Inquiry deleted"})
}
