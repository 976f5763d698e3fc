package application

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/config/db"
	"github.com/agily-hq/agily/internal/domain/workspace"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/pkg/utils"
)

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrSlugTaken         = errors.New("workspace slug already taken")
	ErrMemberNotFound    = errors.New("workspace member not found")
)

type WorkspaceService struct {
	Repos *repository.Repos
}

func NewWorkspaceService(repos *repository.Repos) *WorkspaceService {
	return &WorkspaceService{
		Repos: repos,
	}
}

func (s *WorkspaceService) GetWorkspace(id uint) (*workspace.Workspace, error) {
	w, err := s.Repos.Workspace.GetWorkspaceByID(id)
	if err != nil {
		return nil, ErrWorkspaceNotFound
	}
	return &w, nil
}

func (s *WorkspaceService) GetWorkspaceBySlug(slug string) (*workspace.Workspace, error) {
	w, err := s.Repos.Workspace.GetWorkspaceBySlug(slug)
	if err != nil {
		return nil, ErrWorkspaceNotFound
	}
	return &w, nil
}

func (s *WorkspaceService) ListWorkspaces() ([]workspace.Workspace, error) {
	return s.Repos.Workspace.ListWorkspaces()
}

// ListWorkspacesForUser returns workspaces the user belongs to, or all of
// them for superusers.
func (s *WorkspaceService) ListWorkspacesForUser(uid uint, superuser bool) ([]workspace.Workspace, error) {
	all, err := s.Repos.Workspace.ListWorkspaces()
	if err != nil {
		return nil, err
	}
	if superuser {
		return all, nil
	}
	var visible []workspace.Workspace
	for _, w := range all {
		if _, err := s.Repos.Workspace.GetMemberRole(w.WID, uid); err == nil {
			visible = append(visible, w)
		}
	}
	return visible, nil
}

func (s *WorkspaceService) CreateWorkspace(c *gin.Context, input workspace.CreateWorkspaceDTO, ownerID uint) (*workspace.Workspace, error) {
	w := &workspace.Workspace{
		Slug:    input.Slug,
		Name:    input.Name,
		OwnerID: &ownerID,
	}
	if input.Description != nil {
		w.Description = *input.Description
	}

	// Creating a workspace also enrolls the creator as its first admin.
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Workspace.CreateWorkspace(w); err != nil {
			return err
		}
		return tx.Workspace.AddMember(&workspace.Member{
			WID:  w.WID,
			UID:  ownerID,
			Role: workspace.RoleProjectAdmin,
		})
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "workspace", fmt.Sprintf("w_id=%d", w.WID), nil, w, "", s.Repos.Audit)

	return w, nil
}

func (s *WorkspaceService) UpdateWorkspace(c *gin.Context, id uint, input workspace.UpdateWorkspaceDTO) (*workspace.Workspace, error) {
	w, err := s.Repos.Workspace.GetWorkspaceByID(id)
	if err != nil {
		return nil, ErrWorkspaceNotFound
	}

	oldWorkspace := w

	if input.Name != nil {
		w.Name = *input.Name
	}
	if input.Description != nil {
		w.Description = *input.Description
	}
	if input.OwnerID != nil {
		w.OwnerID = input.OwnerID
	}

	if err := s.Repos.Workspace.UpdateWorkspace(&w); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "workspace", fmt.Sprintf("w_id=%d", w.WID), oldWorkspace, w, "", s.Repos.Audit)

	return &w, nil
}

func (s *WorkspaceService) DeleteWorkspace(c *gin.Context, id uint) error {
	w, err := s.Repos.Workspace.GetWorkspaceByID(id)
	if err != nil {
		return ErrWorkspaceNotFound
	}
	if err := s.Repos.Workspace.DeleteWorkspace(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "workspace", fmt.Sprintf("w_id=%d", id), w, nil, "", s.Repos.Audit)

	return nil
}

func (s *WorkspaceService) ListMembers(wid uint) ([]repository.MemberView, error) {
	return s.Repos.Workspace.ListMembers(wid)
}

func (s *WorkspaceService) AddMember(c *gin.Context, wid uint, input workspace.MemberInputDTO) error {
	if _, err := s.Repos.User.GetUserByID(input.UID); err != nil {
		return ErrUserNotFound
	}

	m := &workspace.Member{WID: wid, UID: input.UID, Role: input.Role}
	if err := s.Repos.Workspace.AddMember(m); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "create", "workspace_member", fmt.Sprintf("w_id=%d,u_id=%d", wid, input.UID), nil, m, "", s.Repos.Audit)

	return nil
}

func (s *WorkspaceService) UpdateMember(c *gin.Context, wid uint, input workspace.MemberInputDTO) error {
	oldRole, err := s.Repos.Workspace.GetMemberRole(wid, input.UID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrMemberNotFound
		}
		return err
	}

	m := &workspace.Member{WID: wid, UID: input.UID, Role: input.Role}
	if err := s.Repos.Workspace.UpdateMember(m); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "update", "workspace_member", fmt.Sprintf("w_id=%d,u_id=%d", wid, input.UID),
		map[string]string{"role": oldRole}, map[string]string{"role": input.Role}, "", s.Repos.Audit)

	return nil
}

func (s *WorkspaceService) RemoveMember(c *gin.Context, wid, uid uint) error {
	if _, err := s.Repos.Workspace.GetMemberRole(wid, uid); err != nil {
		return ErrMemberNotFound
	}
	if err := s.Repos.Workspace.RemoveMember(wid, uid); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "workspace_member", fmt.Sprintf("w_id=%d,u_id=%d", wid, uid), nil, nil, "", s.Repos.Audit)

	return nil
}
