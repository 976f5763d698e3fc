package application

import (
	"bytes"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/domain/issue"
	"github.com/agily-hq/agily/internal/domain/project"
	"github.com/agily-hq/agily/internal/domain/user"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/internal/repository/mock"
)

func setupExcelServiceMocks(t *testing.T) (*ExcelService, *mock.MockProjectRepo, *mock.MockIssueRepo, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock.NewMockProjectRepo(ctrl)
	mockIssue := mock.NewMockIssueRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		Project: mockProject,
		Issue:   mockIssue,
		User:    mockUser,
	}
	return NewExcelService(repos), mockProject, mockIssue, mockUser
}

func buildWorkbook(t *testing.T, header []string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for col, name := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		assert.NoError(t, f.SetCellValue(sheet, cell, name))
	}
	for r, row := range rows {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			assert.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, f.Write(&buf))
	return &buf
}

// --------------------- ExportIssues ---------------------
func TestExportIssues_EmptyProjectHeaderOnly(t *testing.T) {
	svc, mockProject, mockIssue, _ := setupExcelServiceMocks(t)

	mockProject.EXPECT().GetProjectByID(uint(3)).Return(project.Project{PID: 3}, nil)
	mockIssue.EXPECT().ListExportRows(repository.ExportFilter{PID: uintPtr(3)}).Return(nil, nil)

	f, err := svc.ExportIssues(repository.ExportFilter{PID: uintPtr(3)})
	assert.NoError(t, err)

	rows, err := f.GetRows("Issues")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, ExportColumns, rows[0])
}

func TestExportIssues_RowValues(t *testing.T) {
	svc, mockProject, mockIssue, _ := setupExcelServiceMocks(t)

	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	mockProject.EXPECT().GetProjectByID(uint(3)).Return(project.Project{PID: 3}, nil)
	mockIssue.EXPECT().ListExportRows(repository.ExportFilter{PID: uintPtr(3)}).Return([]repository.ExportRow{
		{
			ID: 12, Title: "crash on save", Status: "open", Severity: "critical",
			ProjectName: "Core", RequesterName: "tess", AssigneeName: "",
			CreatedAt: created, UpdatedAt: created,
		},
	}, nil)

	f, err := svc.ExportIssues(repository.ExportFilter{PID: uintPtr(3)})
	assert.NoError(t, err)

	rows, err := f.GetRows("Issues")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "12", rows[1][0])
	assert.Equal(t, "crash on save", rows[1][1])
	assert.Equal(t, "critical", rows[1][4])
	assert.Equal(t, "2026-03-14 09:30:00", rows[1][8])
}

func TestExportIssues_WorkspaceAndAssigneeScoped(t *testing.T) {
	svc, _, mockIssue, _ := setupExcelServiceMocks(t)

	// No project id means no existence check; the scoping goes straight
	// through to the query.
	filter := repository.ExportFilter{WID: uintPtr(2), AssigneeID: uintPtr(9)}
	mockIssue.EXPECT().ListExportRows(filter).Return(nil, nil)

	f, err := svc.ExportIssues(filter)
	assert.NoError(t, err)

	rows, err := f.GetRows("Issues")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExportIssues_ProjectNotFound(t *testing.T) {
	svc, mockProject, _, _ := setupExcelServiceMocks(t)

	mockProject.EXPECT().GetProjectByID(uint(99)).Return(project.Project{}, gorm.ErrRecordNotFound)

	_, err := svc.ExportIssues(repository.ExportFilter{PID: uintPtr(99)})
	assert.Equal(t, ErrProjectNotFound, err)
}

// --------------------- ImportIssues ---------------------
func TestImportIssues_MissingColumnsAbort(t *testing.T) {
	svc, mockProject, _, _ := setupExcelServiceMocks(t)

	buf := buildWorkbook(t,
		[]string{"title", "requester"},
		[][]interface{}{
			{"crash on save", "tess"},
		})

	mockProject.EXPECT().GetProjectByID(uint(3)).Return(project.Project{PID: 3}, nil)

	created, _, err := svc.ImportIssues(3, buf)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
	assert.Contains(t, err.Error(), "description")
	assert.Contains(t, err.Error(), "status")
	assert.Contains(t, err.Error(), "severity")
	assert.Zero(t, created)
}

func TestImportIssues_SkipsBlankTitles(t *testing.T) {
	svc, mockProject, mockIssue, mockUser := setupExcelServiceMocks(t)

	buf := buildWorkbook(t,
		[]string{"title", "description", "status", "severity", "requester"},
		[][]interface{}{
			{"", "", "", "high", "tess"},
			{"crash on save", "breaks on submit", "", "high", "tess"},
		})

	mockProject.EXPECT().GetProjectByID(uint(3)).Return(project.Project{PID: 3}, nil)
	mockUser.EXPECT().GetUserByUsername("tess").Return(user.User{UID: 11, Username: "tess"}, nil)
	mockIssue.EXPECT().CreateIssue(gomock.Any()).DoAndReturn(func(i *issue.Issue) error {
		assert.Equal(t, uint(3), i.PID)
		assert.Equal(t, "crash on save", i.Title)
		assert.Equal(t, "high", i.Severity)
		assert.Equal(t, "open", i.Status)
		return nil
	})

	created, warnings, err := svc.ImportIssues(3, buf)
	assert.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Empty(t, warnings)
}

func TestImportIssues_UnknownRequesterAborts(t *testing.T) {
	svc, mockProject, mockIssue, mockUser := setupExcelServiceMocks(t)

	buf := buildWorkbook(t,
		[]string{"title", "description", "status", "severity", "requester"},
		[][]interface{}{
			{"first issue", "", "", "", "tess"},
			{"second issue", "", "", "", "nobody"},
		})

	mockProject.EXPECT().GetProjectByID(uint(3)).Return(project.Project{PID: 3}, nil)
	mockUser.EXPECT().GetUserByUsername("tess").Return(user.User{UID: 11}, nil)
	mockUser.EXPECT().GetUserByUsername("nobody").Return(user.User{}, gorm.ErrRecordNotFound)
	mockIssue.EXPECT().CreateIssue(gomock.Any()).Return(nil)

	created, _, err := svc.ImportIssues(3, buf)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "second issue")
	// The row before the bad one already landed.
	assert.Equal(t, 1, created)
}

func TestImportIssues_UnknownAssigneeWarns(t *testing.T) {
	svc, mockProject, mockIssue, mockUser := setupExcelServiceMocks(t)

	buf := buildWorkbook(t,
		[]string{"title", "description", "status", "severity", "requester", "assignee"},
		[][]interface{}{
			{"crash on save", "", "", "", "tess", "nobody"},
		})

	mockProject.EXPECT().GetProjectByID(uint(3)).Return(project.Project{PID: 3}, nil)
	mockUser.EXPECT().GetUserByUsername("tess").Return(user.User{UID: 11}, nil)
	mockUser.EXPECT().GetUserByUsername("nobody").Return(user.User{}, gorm.ErrRecordNotFound)
	mockIssue.EXPECT().CreateIssue(gomock.Any()).DoAndReturn(func(i *issue.Issue) error {
		assert.Nil(t, i.AssigneeID)
		return nil
	})

	created, warnings, err := svc.ImportIssues(3, buf)
	assert.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "nobody")
}
