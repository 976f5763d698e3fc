package application

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/internal/config/db"
	"github.com/agily-hq/agily/internal/domain/project"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/pkg/utils"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectNameTaken = errors.New("project name already used in this workspace")
)

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{
		Repos: repos,
	}
}

func (s *ProjectService) GetProject(id uint) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	return &p, nil
}

func (s *ProjectService) ListProjectsByWorkspace(wid uint) ([]project.Project, error) {
	return s.Repos.Project.ListProjectsByWorkspace(wid)
}

func (s *ProjectService) CreateProject(c *gin.Context, input project.CreateProjectDTO) (*project.Project, error) {
	p := &project.Project{
		Name: input.Name,
		WID:  input.WID,
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.ProjectAdminID != nil {
		p.ProjectAdminID = input.ProjectAdminID
	}

	if err := s.Repos.Project.CreateProject(p); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrProjectNameTaken
		}
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "project", fmt.Sprintf("p_id=%d", p.PID), nil, p, "", s.Repos.Audit)

	return p, nil
}

func (s *ProjectService) UpdateProject(c *gin.Context, id uint, input project.UpdateProjectDTO) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	oldProject := p

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.ProjectAdminID != nil {
		p.ProjectAdminID = input.ProjectAdminID
	}

	if err := s.Repos.Project.UpdateProject(&p); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrProjectNameTaken
		}
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "project", fmt.Sprintf("p_id=%d", p.PID), oldProject, p, "", s.Repos.Audit)

	return &p, nil
}

func (s *ProjectService) DeleteProject(c *gin.Context, id uint) error {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return ErrProjectNotFound
	}
	if err := s.Repos.Project.DeleteProject(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "project", fmt.Sprintf("p_id=%d", id), p, nil, "", s.Repos.Audit)

	return nil
}
