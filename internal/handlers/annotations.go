package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"youact-backend/internal/models"
	"youact-backend/internal/services"
)

type AnnotationsHandler struct {
	annotations *services.AnnotationService
}

func NewAnnotationsHandler(annotations *services.AnnotationService) *AnnotationsHandler {
	return &AnnotationsHandler{annotations: annotations}
}

// ListAnnotations godoc
// @Summary     List a project's annotations
// @Description Full timeline ordered by timestamp, then creation order
// @Tags        annotations
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Success     200 {object} models.AnnotationListResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id}/annotations [get]
func (h *AnnotationsHandler) ListAnnotations(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "project_id", "project")
	if !ok {
		return
	}

	annotations, err := h.annotations.ListByProject(c.Request.Context(), userID, projectID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AnnotationListResponse{
		Count:       len(annotations),
		Annotations: annotationResponses(annotations),
	})
}

// GetTimeline godoc
// @Summary     Annotations at a playback position
// @Description Returns the annotations reached at t (newest first) and the full overview with active flags.
// @Tags        annotations
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       t query number false "Current playback time in seconds (floored)"
// @Success     200 {object} models.TimelineResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id}/timeline [get]
func (h *AnnotationsHandler) GetTimeline(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "project_id", "project")
	if !ok {
		return
	}

	currentTime, err := parseSeconds(c.DefaultQuery("t", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid current time", Message: err.Error()})
		return
	}

	view, err := h.annotations.Timeline(c.Request.Context(), userID, projectID, currentTime)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, timelineResponse(view))
}

// CreateAnnotation godoc
// @Summary     Create an annotation
// @Tags        annotations
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateAnnotationRequest true "Annotation"
// @Success     201 {object} models.AnnotationResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /annotations [post]
func (h *AnnotationsHandler) CreateAnnotation(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CreateAnnotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	annotation, err := h.annotations.Create(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, annotationResponse(annotation))
}

// UpdateAnnotation godoc
// @Summary     Update an annotation
// @Description Partial update by the annotation's owner. Omitted fields are kept; a null title clears it.
// @Tags        annotations
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Annotation ID (UUID)"
// @Param       request body models.UpdateAnnotationRequest true "Fields to change"
// @Success     200 {object} models.AnnotationResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /annotations/{id} [put]
func (h *AnnotationsHandler) UpdateAnnotation(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	annotationID, ok := pathID(c, "id", "annotation")
	if !ok {
		return
	}

	var req models.UpdateAnnotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	annotation, err := h.annotations.Update(c.Request.Context(), userID, annotationID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, annotationResponse(annotation))
}

// DeleteAnnotation godoc
// @Summary     Delete an annotation
// @Tags        annotations
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Annotation ID (UUID)"
// @Success     200 {object} models.MessageResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /annotations/{id} [delete]
func (h *AnnotationsHandler) DeleteAnnotation(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	annotationID, ok := pathID(c, "id", "annotation")
	if !ok {
		return
	}

	if err := h.annotations.Delete(c.Request.Context(), userID, annotationID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "annotation deleted successfully"})
}

// parseSeconds accepts fractional player times and floors them.
func parseSeconds(raw string) (int, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, strconv.ErrRange
	}
	return int(math.Floor(f)), nil
}
