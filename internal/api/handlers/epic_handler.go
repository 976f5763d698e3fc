package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/internal/domain/epic"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/pkg/response"
	"github.com/agily-hq/agily/pkg/utils"
)

type EpicHandler struct {
	svc *application.EpicService
}

func NewEpicHandler(svc *application.EpicService) *EpicHandler {
	return &EpicHandler{svc: svc}
}

// CreateEpic godoc
// @Summary Create epic
// @Tags epics
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param input body epic.CreateEpicDTO true "Epic info"
// @Success 201 {object} epic.Epic
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Unknown state"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/epics [post]
func (h *EpicHandler) CreateEpic(c *gin.Context) {
	var input epic.CreateEpicDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	e, err := h.svc.CreateEpic(c, currentWorkspace(c).WID, input)
	if err != nil {
		if errors.Is(err, application.ErrStateNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, e)
}

// ListEpics godoc
// @Summary List epics in the current workspace
// @Tags epics
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param owner_id query int false "Filter by owner"
// @Param state_id query int false "Filter by state"
// @Param tag query string false "Filter by tag"
// @Param title query string false "Filter by title substring"
// @Param q query string false "Token filter, e.g. q=owner:alice state:doing checkout"
// @Success 200 {array} epic.Epic
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/epics [get]
func (h *EpicHandler) ListEpics(c *gin.Context) {
	f := repository.EpicFilter{
		WID:     currentWorkspace(c).WID,
		OwnerID: utils.ParseUintQuery(c, "owner_id"),
		StateID: utils.ParseUintQuery(c, "state_id"),
		Tag:     c.Query("tag"),
		Title:   c.Query("title"),
	}
	if q := c.Query("q"); q != "" {
		h.svc.ApplyQuery(&f, q)
	}

	epics, err := h.svc.ListEpics(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, epics)
}

// ListEpicStates godoc
// @Summary List epic states
// @Tags epics
// @Security BearerAuth
// @Produce json
// @Success 200 {array} epic.EpicState
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /epic-states [get]
func (h *EpicHandler) ListEpicStates(c *gin.Context) {
	states, err := h.svc.ListStates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, states)
}

// GetEpic godoc
// @Summary Get epic by ID
// @Tags epics
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Epic ID"
// @Success 200 {object} epic.Epic
// @Failure 400 {object} response.ErrorResponse "Invalid epic id"
// @Failure 404 {object} response.ErrorResponse "Epic not found"
// @Router /w/{workspace}/epics/{id} [get]
func (h *EpicHandler) GetEpic(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid epic id"})
		return
	}

	e, err := h.svc.GetEpic(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Epic not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

// UpdateEpic godoc
// @Summary Update epic
// @Description Moving the epic into a done state stamps its completion time.
// @Tags epics
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Epic ID"
// @Param input body epic.UpdateEpicDTO true "Fields to update"
// @Success 200 {object} epic.Epic
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Epic not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/epics/{id} [patch]
func (h *EpicHandler) UpdateEpic(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid epic id"})
		return
	}

	var input epic.UpdateEpicDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	e, err := h.svc.UpdateEpic(c, id, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEpicNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Epic not found"})
		case errors.Is(err, application.ErrStateNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, e)
}

// DeleteEpic godoc
// @Summary Delete epic
// @Description Stories under the epic are kept and detached.
// @Tags epics
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Epic ID"
// @Success 200 {object} response.MessageResponse "Epic deleted"
// @Failure 400 {object} response.ErrorResponse "Invalid epic id"
// @Failure 404 {object} response.ErrorResponse "Epic not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/epics/{id} [delete]
func (h *EpicHandler) DeleteEpic(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid epic id"})
		return
	}

	if err := h.svc.DeleteEpic(c, id); err != nil {
		if errors.Is(err, application.ErrEpicNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Epic not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Epic deleted"})
}
