package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/internal/domain/project"
	"github.com/agily-hq/agily/pkg/response"
	"github.com/agily-hq/agily/pkg/utils"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// CreateProject godoc
// @Summary Create project
// @Tags projects
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param input body project.CreateProjectDTO true "Project info"
// @Success 201 {object} project.Project
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Project name already taken"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input project.CreateProjectDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	input.WID = currentWorkspace(c).WID

	p, err := h.svc.CreateProject(c, input)
	if err != nil {
		if errors.Is(err, application.ErrProjectNameTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListProjects godoc
// @Summary List projects in the current workspace
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Success 200 {array} project.Project
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	list, err := h.svc.ListProjectsByWorkspace(currentWorkspace(c).WID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetProject godoc
// @Summary Get project by ID
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param project_id path int true "Project ID"
// @Success 200 {object} project.Project
// @Failure 400 {object} response.ErrorResponse "Invalid project id"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /w/{workspace}/projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "project_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	p, err := h.svc.GetProject(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProject godoc
// @Summary Update project
// @Tags projects
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param project_id path int true "Project ID"
// @Param input body project.UpdateProjectDTO true "Fields to update"
// @Success 200 {object} project.Project
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Failure 409 {object} response.ErrorResponse "Project name already taken"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/projects/{project_id} [patch]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "project_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	var input project.UpdateProjectDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	p, err := h.svc.UpdateProject(c, id, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Project not found"})
		case errors.Is(err, application.ErrProjectNameTaken):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProject godoc
// @Summary Delete project
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param project_id path int true "Project ID"
// @Success 200 {object} response.MessageResponse "Project deleted"
// @Failure 400 {object} response.ErrorResponse "Invalid project id"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "project_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	if err := h.svc.DeleteProject(c, id); err != nil {
		if errors.Is(err, application.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Project deleted"})
}
