package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/internal/config"
	"github.com/agily-hq/agily/internal/domain/issue"
	"github.com/agily-hq/agily/pkg/response"
	"github.com/agily-hq/agily/pkg/utils"
)

type IssueHandler struct {
	svc *application.IssueService
}

func NewIssueHandler(svc *application.IssueService) *IssueHandler {
	return &IssueHandler{svc: svc}
}

// CreateIssue godoc
// @Summary Report an issue
// @Description The caller becomes the issue's requester. Watchers are mailed before the
// @Description response is written; a delivery failure fails the request even though the
// @Description issue row is kept.
// @Tags issues
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param input body issue.CreateIssueDTO true "Issue info"
// @Success 201 {object} issue.Issue
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/issues [post]
func (h *IssueHandler) CreateIssue(c *gin.Context) {
	var input issue.CreateIssueDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	i, err := h.svc.CreateIssue(c, input, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, i)
}

// ListIssues godoc
// @Summary List issues, most urgent first
// @Description Orders by severity (critical, high, medium, low) then newest first.
// @Tags issues
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param p_id query int false "Filter by project"
// @Param assignee_id query int false "Filter by assignee"
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Items per page (default: 12, max: 100)"
// @Success 200 {object} response.PageResponse
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/issues [get]
func (h *IssueHandler) ListIssues(c *gin.Context) {
	wid := currentWorkspace(c).WID
	f := issue.ListFilter{
		WID:        &wid,
		PID:        utils.ParseUintQuery(c, "p_id"),
		AssigneeID: utils.ParseUintQuery(c, "assignee_id"),
	}
	page, pageSize := utils.Pagination(c, config.DefaultPageSize)

	issues, total, err := h.svc.ListIssuesPaging(f, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.PageResponse{
		Items:    issues,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetIssue godoc
// @Summary Get issue by ID
// @Tags issues
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Issue ID"
// @Success 200 {object} issue.Issue
// @Failure 400 {object} response.ErrorResponse "Invalid issue id"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Router /w/{workspace}/issues/{id} [get]
func (h *IssueHandler) GetIssue(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid issue id"})
		return
	}

	i, err := h.svc.GetIssue(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Issue not found"})
		return
	}
	c.JSON(http.StatusOK, i)
}

// UpdateIssue godoc
// @Summary Update issue
// @Description Watchers are notified when title, description, status, severity, assignee or solution change.
// @Tags issues
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Issue ID"
// @Param input body issue.UpdateIssueDTO true "Fields to update"
// @Success 200 {object} issue.Issue
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Issue assigned to another developer"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/issues/{id} [patch]
func (h *IssueHandler) UpdateIssue(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid issue id"})
		return
	}

	var input issue.UpdateIssueDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	i, err := h.svc.UpdateIssue(c, id, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrIssueNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Issue not found"})
		case errors.Is(err, application.ErrIssueEditForbidden):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, i)
}

// DeleteIssue godoc
// @Summary Delete issue
// @Description Removes the issue together with its stored attachments.
// @Tags issues
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Issue ID"
// @Success 200 {object} response.MessageResponse "Issue deleted"
// @Failure 400 {object} response.ErrorResponse "Invalid issue id"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/issues/{id} [delete]
func (h *IssueHandler) DeleteIssue(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid issue id"})
		return
	}

	if err := h.svc.DeleteIssue(c, id); err != nil {
		if errors.Is(err, application.ErrIssueNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Issue deleted"})
}
