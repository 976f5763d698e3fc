//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agily-hq/agily/internal/config/db"
	"github.com/agily-hq/agily/internal/domain/workspace"
	"github.com/agily-hq/agily/internal/repository"
)

func TestWorkspaceHandler_Integration(t *testing.T) {
	ctx := GetTestContext()

	t.Run("GetWorkspace - Success as Member", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.DeveloperToken)
		resp, err := client.GET("/w/acme")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var ws workspace.Workspace
		require.NoError(t, resp.DecodeJSON(&ws))
		assert.Equal(t, "acme", ws.Slug)
	})

	t.Run("GetWorkspace - Forbidden for Non-Member", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.OutsiderToken)
		resp, err := client.GET("/w/acme")

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("GetWorkspace - Unknown Slug", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.AdminToken)
		resp, err := client.GET("/w/nope")

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("GetWorkspace - Unauthorized without Token", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, "")
		resp, err := client.GET("/w/acme")

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("CreateWorkspace - Success", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.AdminToken)
		resp, err := client.POST("/workspaces", map[string]interface{}{
			"slug": "beta-corp",
			"name": "Beta Corp",
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var ws workspace.Workspace
		require.NoError(t, resp.DecodeJSON(&ws))
		assert.NotZero(t, ws.WID)

		// the creator becomes project_admin of the new workspace
		role, err := repository.NewWorkspaceRepo(db.DB).GetMemberRole(ws.WID, ctx.TestAdmin.UID)
		require.NoError(t, err)
		assert.Equal(t, workspace.RoleProjectAdmin, role)
	})

	t.Run("CreateWorkspace - Duplicate Slug", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.AdminToken)
		resp, err := client.POST("/workspaces", map[string]interface{}{
			"slug": "acme",
			"name": "Acme Again",
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("ListWorkspaces - Member sees own workspaces", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.DeveloperToken)
		resp, err := client.GET("/workspaces")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var list []workspace.Workspace
		require.NoError(t, resp.DecodeJSON(&list))
		require.Len(t, list, 1)
		assert.Equal(t, "acme", list[0].Slug)
	})

	t.Run("AddMember - Forbidden for Developer", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.DeveloperToken)
		resp, err := client.POST("/w/acme/members", map[string]interface{}{
			"uid":  ctx.TestOutsider.UID,
			"role": "developer",
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("AddMember then RemoveMember as Admin", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.AdminToken)
		resp, err := client.POST("/w/acme/members", map[string]interface{}{
			"uid":  ctx.TestOutsider.UID,
			"role": "tester",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, err = client.DELETE(fmt.Sprintf("/w/acme/members/%d", ctx.TestOutsider.UID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("AddMember - Invalid Role", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.AdminToken)
		resp, err := client.POST("/w/acme/members", map[string]interface{}{
			"uid":  ctx.TestOutsider.UID,
			"role": "owner",
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
