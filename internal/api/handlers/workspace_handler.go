package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/internal/domain/workspace"
	"github.com/agily-hq/agily/pkg/response"
	"github.com/agily-hq/agily/pkg/utils"
)

type WorkspaceHandler struct {
	svc *application.WorkspaceService
}

func NewWorkspaceHandler(svc *application.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{svc: svc}
}

func currentWorkspace(c *gin.Context) *workspace.Workspace {
	return c.MustGet("workspace").(*workspace.Workspace)
}

// CreateWorkspace godoc
// @Summary Create workspace
// @Description Creates a workspace and enrolls the caller as project_admin.
// @Tags workspaces
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param input body workspace.CreateWorkspaceDTO true "Workspace info"
// @Success 201 {object} workspace.Workspace
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Slug already taken"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /workspaces [post]
func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	var input workspace.CreateWorkspaceDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	ws, err := h.svc.CreateWorkspace(c, input, uid)
	if err != nil {
		if errors.Is(err, application.ErrSlugTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, ws)
}

// ListWorkspaces godoc
// @Summary List workspaces visible to the caller
// @Description Superusers see every workspace, others only the ones they belong to.
// @Tags workspaces
// @Security BearerAuth
// @Produce json
// @Success 200 {array} workspace.Workspace
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /workspaces [get]
func (h *WorkspaceHandler) ListWorkspaces(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	list, err := h.svc.ListWorkspacesForUser(uid, utils.IsSuperuserFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetWorkspace godoc
// @Summary Get current workspace
// @Tags workspaces
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Success 200 {object} workspace.Workspace
// @Failure 404 {object} response.ErrorResponse "Workspace not found"
// @Router /w/{workspace} [get]
func (h *WorkspaceHandler) GetWorkspace(c *gin.Context) {
	c.JSON(http.StatusOK, currentWorkspace(c))
}

// UpdateWorkspace godoc
// @Summary Update workspace
// @Tags workspaces
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param input body workspace.UpdateWorkspaceDTO true "Fields to update"
// @Success 200 {object} workspace.Workspace
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace} [patch]
func (h *WorkspaceHandler) UpdateWorkspace(c *gin.Context) {
	var input workspace.UpdateWorkspaceDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	ws, err := h.svc.UpdateWorkspace(c, currentWorkspace(c).WID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, ws)
}

// DeleteWorkspace godoc
// @Summary Delete workspace
// @Tags workspaces
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Success 200 {object} response.MessageResponse "Workspace deleted"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace} [delete]
func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	if err := h.svc.DeleteWorkspace(c, currentWorkspace(c).WID); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Workspace deleted"})
}

// ListMembers godoc
// @Summary List workspace members
// @Tags members
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Success 200 {array} repository.MemberView
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/members [get]
func (h *WorkspaceHandler) ListMembers(c *gin.Context) {
	members, err := h.svc.ListMembers(currentWorkspace(c).WID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, members)
}

// AddMember godoc
// @Summary Add workspace member
// @Tags members
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param input body workspace.MemberInputDTO true "Member info"
// @Success 201 {object} response.MessageResponse "Member added"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/members [post]
func (h *WorkspaceHandler) AddMember(c *gin.Context) {
	var input workspace.MemberInputDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	if err := h.svc.AddMember(c, currentWorkspace(c).WID, input); err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "Member added"})
}

// UpdateMember godoc
// @Summary Change a member's role
// @Tags members
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param input body workspace.MemberInputDTO true "Member info"
// @Success 200 {object} response.MessageResponse "Member updated"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Member not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/members [patch]
func (h *WorkspaceHandler) UpdateMember(c *gin.Context) {
	var input workspace.MemberInputDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	if err := h.svc.UpdateMember(c, currentWorkspace(c).WID, input); err != nil {
		if errors.Is(err, application.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Member not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Member updated"})
}

// RemoveMember godoc
// @Summary Remove workspace member
// @Tags members
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "User ID"
// @Success 200 {object} response.MessageResponse "Member removed"
// @Failure 400 {object} response.ErrorResponse "Invalid user id"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/members/{id} [delete]
func (h *WorkspaceHandler) RemoveMember(c *gin.Context) {
	uid, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user id"})
		return
	}

	if err := h.svc.RemoveMember(c, currentWorkspace(c).WID, uid); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Member removed"})
}
