package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/internal/domain/sprint"
	"github.com/agily-hq/agily/pkg/response"
	"github.com/agily-hq/agily/pkg/utils"
)

type SprintHandler struct {
	svc *application.SprintService
}

func NewSprintHandler(svc *application.SprintService) *SprintHandler {
	return &SprintHandler{svc: svc}
}

// CreateSprint godoc
// @Summary Create sprint
// @Description The sprint state is derived from its dates, not supplied by the caller.
// @Tags sprints
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param input body sprint.CreateSprintDTO true "Sprint info"
// @Success 201 {object} sprint.Sprint
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/sprints [post]
func (h *SprintHandler) CreateSprint(c *gin.Context) {
	var input sprint.CreateSprintDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	sp, err := h.svc.CreateSprint(c, input)
	if err != nil {
		if errors.Is(err, application.ErrSprintDates) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, sp)
}

// ListSprints godoc
// @Summary List sprints of a project
// @Tags sprints
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param p_id query int true "Project ID"
// @Success 200 {array} sprint.Sprint
// @Failure 400 {object} response.ErrorResponse "Invalid project id"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/sprints [get]
func (h *SprintHandler) ListSprints(c *gin.Context) {
	pid := utils.ParseUintQuery(c, "p_id")
	if pid == nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	sprints, err := h.svc.ListSprintsByProject(*pid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, sprints)
}

// GetSprint godoc
// @Summary Get sprint by ID
// @Tags sprints
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Sprint ID"
// @Success 200 {object} sprint.Sprint
// @Failure 400 {object} response.ErrorResponse "Invalid sprint id"
// @Failure 404 {object} response.ErrorResponse "Sprint not found"
// @Router /w/{workspace}/sprints/{id} [get]
func (h *SprintHandler) GetSprint(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid sprint id"})
		return
	}

	sp, err := h.svc.GetSprint(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Sprint not found"})
		return
	}
	c.JSON(http.StatusOK, sp)
}

// UpdateSprint godoc
// @Summary Update sprint
// @Description Changing the dates recomputes the sprint state immediately.
// @Tags sprints
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Sprint ID"
// @Param input body sprint.UpdateSprintDTO true "Fields to update"
// @Success 200 {object} sprint.Sprint
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Sprint not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/sprints/{id} [patch]
func (h *SprintHandler) UpdateSprint(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid sprint id"})
		return
	}

	var input sprint.UpdateSprintDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	sp, err := h.svc.UpdateSprint(c, id, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrSprintNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Sprint not found"})
		case errors.Is(err, application.ErrSprintDates):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, sp)
}

// DeleteSprint godoc
// @Summary Delete sprint
// @Tags sprints
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Sprint ID"
// @Success 200 {object} response.MessageResponse "Sprint deleted"
// @Failure 400 {object} response.ErrorResponse "Invalid sprint id"
// @Failure 404 {object} response.ErrorResponse "Sprint not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/sprints/{id} [delete]
func (h *SprintHandler) DeleteSprint(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid sprint id"})
		return
	}

	if err := h.svc.DeleteSprint(c, id); err != nil {
		if errors.Is(err, application.ErrSprintNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Sprint not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Sprint deleted"})
}
