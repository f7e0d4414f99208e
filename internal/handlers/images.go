package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"youact-backend/internal/models"
	"youact-backend/internal/services"
)

type ImagesHandler struct {
	images *services.ImageService
}

func NewImagesHandler(images *services.ImageService) *ImagesHandler {
	return &ImagesHandler{images: images}
}

// UploadImage godoc
// @Summary     Upload an image for an annotation
// @Description Stores an image under the project. Use the returned url as the content of an annotation with contentType "image".
// @Tags        images
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       image formData file true "JPEG, PNG, GIF or WebP image"
// @Success     201 {object} models.ImageUploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /projects/{project_id}/images [post]
func (h *ImagesHandler) UploadImage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "project_id", "project")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no image uploaded",
			Message: "please provide the file in the \"image\" form field",
		})
		return
	}
	if fileHeader.Size > h.images.MaxBytes() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("image must be %d bytes or smaller", h.images.MaxBytes()),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read image", Message: err.Error()})
		return
	}
	defer file.Close()

	// Read one byte past the limit so oversize bodies are still detected.
	data, err := io.ReadAll(io.LimitReader(file, h.images.MaxBytes()+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read image", Message: err.Error()})
		return
	}

	storagePath, url, err := h.images.Upload(c.Request.Context(), userID, projectID, data)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.ImageUploadResponse{StoragePath: storagePath, URL: url})
}
