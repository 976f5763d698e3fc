//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agily-hq/agily/internal/config/db"
	"github.com/agily-hq/agily/internal/domain/job"
	"github.com/agily-hq/agily/internal/domain/story"
)

func TestBulkHandler_Integration(t *testing.T) {
	ctx := GetTestContext()

	// rows to act on
	stories := make([]story.Story, 2)
	for i := range stories {
		stories[i] = story.Story{
			PID:   ctx.TestProject.PID,
			Title: fmt.Sprintf("bulk target %d", i+1),
		}
		require.NoError(t, db.DB.Create(&stories[i]).Error)
	}

	t.Run("SubmitBulkAction - Queues Jobs", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.AdminToken)

		form := url.Values{}
		form.Set(fmt.Sprintf("story-%d", stories[0].ID), "on")
		form.Set(fmt.Sprintf("story-%d", stories[1].ID), "on")
		form.Set("assignee", fmt.Sprintf("%d", ctx.TestDeveloper.UID))

		resp, err := client.POSTForm("/w/acme/bulk", form)
		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)

		var out struct {
			JobIDs      []uint `json:"job_ids"`
			RedirectURL string `json:"redirect_url"`
		}
		require.NoError(t, resp.DecodeJSON(&out))
		require.Len(t, out.JobIDs, 1)

		var j job.BulkJob
		require.NoError(t, db.DB.First(&j, out.JobIDs[0]).Error)
		assert.Equal(t, string(job.ActionSetAssignee), j.Action)
		assert.Equal(t, string(job.TargetStory), j.TargetKind)
		assert.Equal(t, string(job.StatusQueued), j.Status)
	})

	t.Run("SubmitBulkAction - Idempotent Resubmit", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.AdminToken)

		form := url.Values{}
		form.Set(fmt.Sprintf("story-%d", stories[0].ID), "on")
		form.Set("remove", "on")

		submit := func() []uint {
			resp, err := client.POSTForm("/w/acme/bulk", form, map[string]string{
				"Idempotency-Key": "it-bulk-1",
			})
			require.NoError(t, err)
			assert.Equal(t, http.StatusAccepted, resp.StatusCode)

			var out struct {
				JobIDs []uint `json:"job_ids"`
			}
			require.NoError(t, resp.DecodeJSON(&out))
			return out.JobIDs
		}

		first := submit()
		second := submit()
		assert.Equal(t, first, second, "resubmitting the same key must not enqueue twice")
	})

	t.Run("SubmitBulkAction - No Rows Selected", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.AdminToken)

		form := url.Values{}
		form.Set("assignee", "1")

		resp, err := client.POSTForm("/w/acme/bulk", form)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("SubmitBulkAction - Forbidden for Developer", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.DeveloperToken)

		form := url.Values{}
		form.Set(fmt.Sprintf("story-%d", stories[0].ID), "on")
		form.Set("remove", "on")

		resp, err := client.POSTForm("/w/acme/bulk", form)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("GetJob - Not Found", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.AdminToken)
		resp, err := client.GET("/jobs/999999")

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
