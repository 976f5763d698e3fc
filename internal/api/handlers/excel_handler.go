package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/pkg/response"
	"github.com/agily-hq/agily/pkg/utils"
)

type ExcelHandler struct {
	svc *application.ExcelService
}

func NewExcelHandler(svc *application.ExcelService) *ExcelHandler {
	return &ExcelHandler{svc: svc}
}

// ExportIssues godoc
// @Summary Export project issues as an Excel workbook
// @Description Rows are ordered by issue ID. An empty project yields a header-only sheet.
// @Tags excel
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param workspace path string true "Workspace slug"
// @Param project_id path int true "Project ID"
// @Param assignee_id query int false "Filter by assignee"
// @Success 200 {file} binary
// @Failure 400 {object} response.ErrorResponse "Invalid project id"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/projects/{project_id}/issues/export [get]
func (h *ExcelHandler) ExportIssues(c *gin.Context) {
	pid, err := utils.ParseIDParam(c, "project_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	wid := currentWorkspace(c).WID
	h.writeWorkbook(c, repository.ExportFilter{
		WID:        &wid,
		PID:        &pid,
		AssigneeID: utils.ParseUintQuery(c, "assignee_id"),
	}, fmt.Sprintf("issues-%d.xlsx", pid))
}

// ExportWorkspaceIssues godoc
// @Summary Export workspace issues as an Excel workbook
// @Description Covers every project in the workspace unless narrowed by p_id.
// @Tags excel
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param workspace path string true "Workspace slug"
// @Param p_id query int false "Filter by project"
// @Param assignee_id query int false "Filter by assignee"
// @Success 200 {file} binary
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/issues/export [get]
func (h *ExcelHandler) ExportWorkspaceIssues(c *gin.Context) {
	ws := currentWorkspace(c)
	h.writeWorkbook(c, repository.ExportFilter{
		WID:        &ws.WID,
		PID:        utils.ParseUintQuery(c, "p_id"),
		AssigneeID: utils.ParseUintQuery(c, "assignee_id"),
	}, fmt.Sprintf("issues-%s.xlsx", ws.Slug))
}

func (h *ExcelHandler) writeWorkbook(c *gin.Context, filter repository.ExportFilter, filename string) {
	f, err := h.svc.ExportIssues(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Cache-Control", "no-store")
	if err := f.Write(c.Writer); err != nil {
		// Headers already sent, nothing left to report to the client.
		return
	}
}

// ImportIssues godoc
// @Summary Import issues from an Excel workbook
// @Description A header missing any of title/description/status/severity/requester aborts
// @Description before any row is created. Rows with a blank title are skipped. An unknown requester aborts the
// @Description import citing the offending issue title; an unknown assignee produces a
// @Description warning and the issue is created unassigned.
// @Tags excel
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param project_id path int true "Project ID"
// @Param file formData file true "Workbook (.xlsx)"
// @Success 200 {object} response.ImportResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 422 {object} response.ErrorResponse "Import aborted"
// @Router /w/{workspace}/projects/{project_id}/issues/import [post]
func (h *ExcelHandler) ImportIssues(c *gin.Context) {
	pid, err := utils.ParseIDParam(c, "project_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cannot open uploaded file"})
		return
	}
	defer f.Close()

	created, warnings, err := h.svc.ImportIssues(pid, f)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.ImportResponse{
		Message:  fmt.Sprintf("Imported %d issue(s)", created),
		Created:  created,
		Warnings: warnings,
	})
}
