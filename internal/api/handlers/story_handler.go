package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/internal/domain/story"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/pkg/response"
	"github.com/agily-hq/agily/pkg/utils"
)

type StoryHandler struct {
	svc *application.StoryService
}

func NewStoryHandler(svc *application.StoryService) *StoryHandler {
	return &StoryHandler{svc: svc}
}

// CreateStory godoc
// @Summary Create story
// @Tags stories
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param input body story.CreateStoryDTO true "Story info"
// @Success 201 {object} story.Story
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Unknown state"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/stories [post]
func (h *StoryHandler) CreateStory(c *gin.Context) {
	var input story.CreateStoryDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	st, err := h.svc.CreateStory(c, input, uid)
	if err != nil {
		if errors.Is(err, application.ErrStateNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, st)
}

// ListStories godoc
// @Summary List stories, optionally grouped
// @Description Pass group_by=sprint|state|requester|assignee to receive labelled buckets
// @Description instead of a flat list. Buckets with rows come before the catch-all bucket.
// @Tags stories
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param p_id query int true "Project ID"
// @Param epic_id query int false "Filter by epic"
// @Param sprint_id query int false "Filter by sprint"
// @Param assignee_id query int false "Filter by assignee"
// @Param requester_id query int false "Filter by requester"
// @Param state_id query int false "Filter by state"
// @Param tag query string false "Filter by tag"
// @Param title query string false "Filter by title substring"
// @Param q query string false "Token filter, e.g. q=assignee:bob state:doing login page"
// @Param group_by query string false "Grouping key (none, sprint, state, requester, assignee)"
// @Success 200 {array} story.Story
// @Failure 400 {object} response.ErrorResponse "Invalid project id"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/stories [get]
func (h *StoryHandler) ListStories(c *gin.Context) {
	pid := utils.ParseUintQuery(c, "p_id")
	if pid == nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	f := repository.StoryFilter{
		PID:         *pid,
		EpicID:      utils.ParseUintQuery(c, "epic_id"),
		SprintID:    utils.ParseUintQuery(c, "sprint_id"),
		AssigneeID:  utils.ParseUintQuery(c, "assignee_id"),
		RequesterID: utils.ParseUintQuery(c, "requester_id"),
		StateID:     utils.ParseUintQuery(c, "state_id"),
		Tag:         c.Query("tag"),
		Title:       c.Query("title"),
	}
	if q := c.Query("q"); q != "" {
		h.svc.ApplyQuery(&f, q)
	}

	stories, err := h.svc.ListStories(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	groupBy := c.DefaultQuery("group_by", application.GroupByNone)
	if groupBy == application.GroupByNone {
		c.JSON(http.StatusOK, stories)
		return
	}

	buckets, err := h.svc.GroupStories(stories, groupBy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, buckets)
}

// ListStoryStates godoc
// @Summary List story states
// @Tags stories
// @Security BearerAuth
// @Produce json
// @Success 200 {array} story.StoryState
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /story-states [get]
func (h *StoryHandler) ListStoryStates(c *gin.Context) {
	states, err := h.svc.ListStates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, states)
}

// GetStory godoc
// @Summary Get story by ID
// @Tags stories
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Story ID"
// @Success 200 {object} story.Story
// @Failure 400 {object} response.ErrorResponse "Invalid story id"
// @Failure 404 {object} response.ErrorResponse "Story not found"
// @Router /w/{workspace}/stories/{id} [get]
func (h *StoryHandler) GetStory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid story id"})
		return
	}

	st, err := h.svc.GetStory(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Story not found"})
		return
	}
	c.JSON(http.StatusOK, st)
}

// UpdateStory godoc
// @Summary Update story
// @Description Epic and sprint progress are recalculated after the move.
// @Tags stories
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Story ID"
// @Param input body story.UpdateStoryDTO true "Fields to update"
// @Success 200 {object} story.Story
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Story not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/stories/{id} [patch]
func (h *StoryHandler) UpdateStory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid story id"})
		return
	}

	var input story.UpdateStoryDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	st, err := h.svc.UpdateStory(c, id, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrStoryNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Story not found"})
		case errors.Is(err, application.ErrStateNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, st)
}

// DuplicateStory godoc
// @Summary Duplicate story
// @Description Creates a copy titled "<title> (copy)" outside any sprint.
// @Tags stories
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Story ID"
// @Success 201 {object} story.Story
// @Failure 400 {object} response.ErrorResponse "Invalid story id"
// @Failure 404 {object} response.ErrorResponse "Story not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/stories/{id}/duplicate [post]
func (h *StoryHandler) DuplicateStory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid story id"})
		return
	}

	st, err := h.svc.DuplicateStory(id)
	if err != nil {
		if errors.Is(err, application.ErrStoryNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Story not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, st)
}

// DeleteStory godoc
// @Summary Delete story
// @Tags stories
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Story ID"
// @Success 200 {object} response.MessageResponse "Story deleted"
// @Failure 400 {object} response.ErrorResponse "Invalid story id"
// @Failure 404 {object} response.ErrorResponse "Story not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/stories/{id} [delete]
func (h *StoryHandler) DeleteStory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid story id"})
		return
	}

	if err := h.svc.DeleteStory(c, id); err != nil {
		if errors.Is(err, application.ErrStoryNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Story not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Story deleted"})
}
