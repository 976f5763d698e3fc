package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/internal/domain/workspace"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/pkg/response"
	"github.com/agily-hq/agily/pkg/types"
	"github.com/agily-hq/agily/pkg/utils"
)

// Auth handles authorization middleware
type Auth struct {
	repos *repository.Repos
}

// NewAuth creates a new Auth middleware instance
func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// --- Extractors ---

// WIDExtractor extracts a workspace ID from the request context
type WIDExtractor func(c *gin.Context, repos *repository.Repos) (uint, error)

// FromIDParam creates an extractor that resolves the workspace ID from the
// `id` URL parameter via the given lookup, so a row in another workspace
// cannot be reached through a workspace the caller does control.
func FromIDParam(lookup func(uint) (uint, error)) WIDExtractor {
	return func(c *gin.Context, repos *repository.Repos) (uint, error) {
		id, err := utils.ParseIDParam(c, "id")
		if err != nil {
			return 0, err
		}
		return lookup(id)
	}
}

// FromProjectIDInParam creates an extractor that resolves the workspace via project_id
func FromProjectIDInParam() WIDExtractor {
	return func(c *gin.Context, repos *repository.Repos) (uint, error) {
		raw := c.Param("project_id")
		pid, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return 0, errors.New("invalid project_id parameter")
		}
		return repos.Project.GetWorkspaceIDByProjectID(uint(pid))
	}
}

// FromWorkspaceContext creates an extractor reading the workspace resolved by
// the slug middleware.
func FromWorkspaceContext() WIDExtractor {
	return func(c *gin.Context, repos *repository.Repos) (uint, error) {
		ws, ok := c.MustGet("workspace").(*workspace.Workspace)
		if !ok {
			return 0, errors.New("workspace not resolved")
		}
		return ws.WID, nil
	}
}

// --- Middleware Methods ---

// Superuser restricts the route to superusers
func (a *Auth) Superuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		if !claims.IsSuperuser {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "superuser only"})
			return
		}
		c.Next()
	}
}

// UserOrSuperuser checks if user is the target user or a superuser
func (a *Auth) UserOrSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		idParam := c.Param("id")
		if idParam == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing user id"})
			return
		}
		targetUID64, err := strconv.ParseUint(idParam, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}

		if claims.UserID == uint(targetUID64) || claims.IsSuperuser {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}

// Member checks that the user belongs to the workspace. Superusers pass.
func (a *Auth) Member(extractor WIDExtractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.IsSuperuserFromContext(c) {
			c.Next()
			return
		}

		wid, err := extractor(c, a.repos)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
			c.Abort()
			return
		}
		if wid == 0 {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Workspace ID cannot be zero"})
			c.Abort()
			return
		}

		uid, err := utils.GetUserIDFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			c.Abort()
			return
		}

		if _, err := a.repos.Workspace.GetMemberRole(wid, uid); err != nil {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Not a member of this workspace"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Role checks that the user holds one of the given workspace roles.
// Superusers pass.
func (a *Auth) Role(extractor WIDExtractor, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.IsSuperuserFromContext(c) {
			c.Next()
			return
		}

		wid, err := extractor(c, a.repos)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
			c.Abort()
			return
		}
		if wid == 0 {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Workspace ID cannot be zero"})
			c.Abort()
			return
		}

		uid, err := utils.GetUserIDFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			c.Abort()
			return
		}

		role, err := a.repos.Workspace.GetMemberRole(wid, uid)
		if err != nil {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Not a member of this workspace"})
			c.Abort()
			return
		}
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Permission denied for this workspace"})
		c.Abort()
	}
}
