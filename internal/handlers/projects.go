package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"youact-backend/internal/models"
	"youact-backend/internal/services"
)

type ProjectsHandler struct {
	projects *services.ProjectService
}

func NewProjectsHandler(projects *services.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{projects: projects}
}

// CreateProject godoc
// @Summary     Create a project
// @Description Creates a project bound to a YouTube video. The video id and thumbnail are derived from the link; an unrecognised link still creates the project with an empty video id.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateProjectRequest true "Project"
// @Success     201 {object} models.ProjectResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /projects [post]
func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	project, err := h.projects.Create(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, projectResponse(project))
}

// ListProjects godoc
// @Summary     List projects
// @Description Returns the caller's projects, newest first
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ProjectListResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /projects [get]
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	projects, err := h.projects.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	responses := make([]models.ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = projectResponse(&projects[i])
	}

	c.JSON(http.StatusOK, models.ProjectListResponse{Count: len(responses), Projects: responses})
}

// GetProject godoc
// @Summary     Get a project
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Success     200 {object} models.ProjectResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id} [get]
func (h *ProjectsHandler) GetProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "project_id", "project")
	if !ok {
		return
	}

	project, err := h.projects.Get(c.Request.Context(), userID, projectID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, projectResponse(project))
}

// UpdateProject godoc
// @Summary     Update a project
// @Description Partial update: omitted fields are kept, a null description clears it. Changing the link re-derives the video id and thumbnail.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       request body models.UpdateProjectRequest true "Fields to change"
// @Success     200 {object} models.ProjectResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id} [put]
func (h *ProjectsHandler) UpdateProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "project_id", "project")
	if !ok {
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	project, err := h.projects.Update(c.Request.Context(), userID, projectID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, projectResponse(project))
}

// DeleteProject godoc
// @Summary     Delete a project
// @Description Deletes every annotation of the project, then the project itself.
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Success     200 {object} models.MessageResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects/{project_id} [delete]
func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "project_id", "project")
	if !ok {
		return
	}

	if err := h.projects.Delete(c.Request.Context(), userID, projectID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "project and all annotations deleted successfully"})
}
