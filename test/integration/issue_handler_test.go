//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agily-hq/agily/internal/domain/issue"
)

func TestIssueHandler_Integration(t *testing.T) {
	ctx := GetTestContext()

	var createdID uint

	t.Run("CreateIssue - Success as Tester", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.TesterToken)
		resp, err := client.POST("/w/acme/issues", map[string]interface{}{
			"pid":      ctx.TestProject.PID,
			"title":    "login page crashes",
			"severity": "high",
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var i issue.Issue
		require.NoError(t, resp.DecodeJSON(&i))
		assert.NotZero(t, i.ID)
		assert.Equal(t, "open", i.Status)
		require.NotNil(t, i.RequesterID)
		assert.Equal(t, ctx.TestTester.UID, *i.RequesterID)
		createdID = i.ID
	})

	t.Run("CreateIssue - Forbidden for Developer", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.DeveloperToken)
		resp, err := client.POST("/w/acme/issues", map[string]interface{}{
			"pid":   ctx.TestProject.PID,
			"title": "developers cannot report",
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("CreateIssue - Missing Title", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.TesterToken)
		resp, err := client.POST("/w/acme/issues", map[string]interface{}{
			"pid": ctx.TestProject.PID,
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ListIssues - Paged", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.DeveloperToken)
		resp, err := client.GET(fmt.Sprintf("/w/acme/issues?p_id=%d", ctx.TestProject.PID))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var page struct {
			Items    []issue.Issue `json:"items"`
			Total    int64         `json:"total"`
			Page     int           `json:"page"`
			PageSize int           `json:"page_size"`
		}
		require.NoError(t, resp.DecodeJSON(&page))
		assert.GreaterOrEqual(t, page.Total, int64(1))
		assert.Equal(t, 1, page.Page)
	})

	t.Run("UpdateIssue - Assign and Resolve", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.DeveloperToken)
		resp, err := client.PATCH(fmt.Sprintf("/w/acme/issues/%d", createdID), map[string]interface{}{
			"assignee_id": ctx.TestDeveloper.UID,
			"status":      "resolved",
			"solution":    "bumped the session timeout",
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var i issue.Issue
		require.NoError(t, resp.DecodeJSON(&i))
		assert.Equal(t, "resolved", i.Status)
		require.NotNil(t, i.AssigneeID)
		assert.Equal(t, ctx.TestDeveloper.UID, *i.AssigneeID)
	})

	t.Run("UpdateIssue - Forbidden When Assigned Elsewhere", func(t *testing.T) {
		admin := NewHTTPClient(ctx.Router, ctx.AdminToken)
		resp, err := admin.PATCH(fmt.Sprintf("/w/acme/issues/%d", createdID), map[string]interface{}{
			"assignee_id": ctx.TestAdmin.UID,
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		dev := NewHTTPClient(ctx.Router, ctx.DeveloperToken)
		resp, err = dev.PATCH(fmt.Sprintf("/w/acme/issues/%d", createdID), map[string]interface{}{
			"status": "closed",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("UpdateIssue - Invalid Status", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.DeveloperToken)
		resp, err := client.PATCH(fmt.Sprintf("/w/acme/issues/%d", createdID), map[string]interface{}{
			"status": "wontfix",
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("DeleteIssue - Forbidden for Developer", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.DeveloperToken)
		resp, err := client.DELETE(fmt.Sprintf("/w/acme/issues/%d", createdID))

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("DeleteIssue - Success as Admin", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.AdminToken)
		resp, err := client.DELETE(fmt.Sprintf("/w/acme/issues/%d", createdID))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = client.GET(fmt.Sprintf("/w/acme/issues/%d", createdID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
