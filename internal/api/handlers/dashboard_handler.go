package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/internal/domain/workspace"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/pkg/response"
	"github.com/agily-hq/agily/pkg/utils"
)

type DashboardHandler struct {
	svc   *application.DashboardService
	repos *repository.Repos
}

func NewDashboardHandler(svc *application.DashboardService, repos *repository.Repos) *DashboardHandler {
	return &DashboardHandler{svc: svc, repos: repos}
}

// GetDashboard godoc
// @Summary Role-specific dashboard
// @Description Superusers get platform-wide counts, project admins their projects'
// @Description issue status breakdown, developers their open assignments ordered by
// @Description severity, testers their recently reported issues.
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Success 200 {object} map[string]any
// @Failure 403 {object} response.ErrorResponse "Not a workspace member"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	now := time.Now()

	if utils.IsSuperuserFromContext(c) {
		d, err := h.svc.ForSuperuser(now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": "superuser", "dashboard": d})
		return
	}

	role, err := h.repos.Workspace.GetMemberRole(currentWorkspace(c).WID, uid)
	if err != nil {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "not a workspace member"})
		return
	}

	var payload any
	switch role {
	case workspace.RoleProjectAdmin:
		payload, err = h.svc.ForProjectAdmin(uid, now)
	case workspace.RoleTester:
		payload, err = h.svc.ForTester(uid, now)
	default:
		payload, err = h.svc.ForDeveloper(uid)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role, "dashboard": payload})
}
