package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/pkg/response"
)

// ResolveWorkspace maps the :workspace slug parameter to a workspace row and
// stores it in the context. Unknown slugs yield 404.
func ResolveWorkspace(repos *repository.Repos) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("workspace")
		if slug == "" {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "workspace not found"})
			c.Abort()
			return
		}

		ws, err := repos.Workspace.GetWorkspaceBySlug(slug)
		if err != nil {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "workspace not found"})
			c.Abort()
			return
		}

		c.Set("workspace", &ws)
		c.Next()
	}
}
