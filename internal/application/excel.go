package application

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/agily-hq/agily/internal/domain/issue"
	"github.com/agily-hq/agily/internal/repository"
)

// ExportColumns is the fixed spreadsheet layout, matching what external
// trackers expect back on import. Solutions deliberately stay internal.
var ExportColumns = []string{
	"id", "title", "description", "status", "severity",
	"project", "requester", "assignee", "created_at", "updated_at",
}

const exportSheet = "Issues"

const timestampLayout = "2006-01-02 15:04:05"

type ExcelService struct {
	Repos *repository.Repos
}

func NewExcelService(repos *repository.Repos) *ExcelService {
	return &ExcelService{
		Repos: repos,
	}
}

// ExportIssues renders the matching issues into a workbook, oldest first.
// A filter matching nothing still yields the header row.
func (s *ExcelService) ExportIssues(filter repository.ExportFilter) (*excelize.File, error) {
	if filter.PID != nil {
		if _, err := s.Repos.Project.GetProjectByID(*filter.PID); err != nil {
			return nil, ErrProjectNotFound
		}
	}

	rows, err := s.Repos.Issue.ListExportRows(filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", exportSheet)

	for col, name := range ExportColumns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(exportSheet, cell, name)
	}

	for idx, row := range rows {
		values := []interface{}{
			row.ID,
			row.Title,
			row.Description,
			row.Status,
			row.Severity,
			row.ProjectName,
			row.RequesterName,
			row.AssigneeName,
			row.CreatedAt.Format(timestampLayout),
			row.UpdatedAt.Format(timestampLayout),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, idx+2)
			f.SetCellValue(exportSheet, cell, v)
		}
	}

	return f, nil
}

// requiredImportColumns must all be present in the header row before any
// row is processed.
var requiredImportColumns = []string{"title", "description", "status", "severity", "requester"}

// ImportIssues reads a workbook and creates one issue per row. A header
// missing a required column aborts before anything is created. Rows with a
// blank title are skipped. A row whose requester cannot be resolved aborts
// the run citing that row's title; an unknown assignee only produces a
// warning and leaves the issue unassigned. Rows created before an abort
// remain, so a corrected re-upload should drop the rows that already landed.
func (s *ExcelService) ImportIssues(pid uint, r io.Reader) (int, []string, error) {
	if _, err := s.Repos.Project.GetProjectByID(pid); err != nil {
		return 0, nil, ErrProjectNotFound
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, nil, fmt.Errorf("cannot read workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, nil, err
	}
	if len(rows) == 0 {
		return 0, nil, fmt.Errorf("missing required columns: %s", strings.Join(requiredImportColumns, ", "))
	}

	col := headerIndex(rows[0])
	var missing []string
	for _, name := range requiredImportColumns {
		if _, ok := col[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return 0, nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	created := 0
	var warnings []string

	for _, row := range rows[1:] {
		title := strings.TrimSpace(cellValue(row, col, "title"))
		if title == "" {
			continue
		}

		requesterName := strings.TrimSpace(cellValue(row, col, "requester"))
		requester, err := s.Repos.User.GetUserByUsername(requesterName)
		if requesterName == "" || err != nil {
			return created, warnings, fmt.Errorf("unknown requester for issue %q", title)
		}

		i := issue.Issue{
			PID:         pid,
			Title:       title,
			Description: cellValue(row, col, "description"),
			Status:      normalizeChoice(cellValue(row, col, "status"), string(issue.StatusOpen)),
			Severity:    normalizeChoice(cellValue(row, col, "severity"), string(issue.SeverityMedium)),
			RequesterID: &requester.UID,
		}

		assigneeName := strings.TrimSpace(cellValue(row, col, "assignee"))
		if assigneeName != "" {
			assignee, err := s.Repos.User.GetUserByUsername(assigneeName)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("unknown assignee %q for issue %q, left unassigned", assigneeName, title))
			} else {
				i.AssigneeID = &assignee.UID
			}
		}

		if err := s.Repos.Issue.CreateIssue(&i); err != nil {
			return created, warnings, err
		}
		created++
	}

	return created, warnings, nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return idx
}

func cellValue(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func normalizeChoice(raw, fallback string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return fallback
	}
	return v
}
