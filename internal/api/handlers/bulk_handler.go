package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/pkg/response"
	"github.com/agily-hq/agily/pkg/utils"
)

type BulkHandler struct {
	svc *application.BulkService
}

func NewBulkHandler(svc *application.BulkService) *BulkHandler {
	return &BulkHandler{svc: svc}
}

// SubmitBulkAction godoc
// @Summary Queue a bulk action
// @Description Checked rows arrive as form keys like story-12 or epic-7. One action is
// @Description applied per submission: remove wins over duplicate, which wins over field
// @Description assignments. Jobs run asynchronously; poll /jobs/{id} or subscribe on
// @Description /ws/jobs for completion. Resubmitting the same Idempotency-Key returns the
// @Description jobs queued the first time.
// @Tags bulk
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param Idempotency-Key header string false "Client-chosen dedupe key"
// @Param next query string false "Listing URL to return to"
// @Success 202 {object} response.BulkResponse
// @Failure 400 {object} response.ErrorResponse "Empty selection"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/bulk [post]
func (h *BulkHandler) SubmitBulkAction(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	form := make(map[string]string, len(c.Request.PostForm))
	for key := range c.Request.PostForm {
		form[key] = c.Request.PostForm.Get(key)
	}

	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	sel := application.ParseSelection(form)
	jobIDs, err := h.svc.Dispatch(sel, c.GetHeader("Idempotency-Key"), uid)
	if err != nil {
		if errors.Is(err, application.ErrEmptySelection) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusAccepted, response.BulkResponse{
		Message:     "Bulk action queued",
		JobIDs:      jobIDs,
		RedirectURL: utils.CleanNextURL(c.Query("next"), utils.RefererURL(c, "/")),
	})
}

// GetJob godoc
// @Summary Get bulk job status
// @Tags bulk
// @Security BearerAuth
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} job.BulkJob
// @Failure 400 {object} response.ErrorResponse "Invalid job id"
// @Failure 404 {object} response.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (h *BulkHandler) GetJob(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid job id"})
		return
	}

	j, err := h.svc.GetJob(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Job not found"})
		return
	}
	c.JSON(http.StatusOK, j)
}
