package upload

import (
	"net/http"

	"interiorstudio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.Upload)
}

// Upload handles POST /api/v1/admin/uploads
// @Summary Upload an image
// @Description Stores an image in the object store and returns its public URL
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image to upload"
// @Param folder formData string false "Target folder" default(portfolio)
// @Success 201 {object} map[string]interface{}
// @Failure 400,413,500 {object} map[string]interface{}
// @Router /admin/uploads [post]
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "no file provided")
		return
	}

	folder := c.PostForm("folder")

	url, err := h.service.UploadImage(c.Request.Context(), fileHeader, folder)
	if err != nil {
		switch err {
		case ErrEmptyFile, ErrInvalidMimeType:
			response.Error(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
		case ErrFileTooLarge:
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		case ErrStoreUnavailable:
			response.Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "upload failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"url": url})
}
