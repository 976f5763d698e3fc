package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/internal/domain/story"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/internal/storage"
	"github.com/agily-hq/agily/pkg/utils"
)

var ErrStoryNotFound = errors.New("story not found")

type StoryService struct {
	Repos  *repository.Repos
	Rollup *RollupService
}

func NewStoryService(repos *repository.Repos, rollup *RollupService) *StoryService {
	return &StoryService{
		Repos:  repos,
		Rollup: rollup,
	}
}

func (s *StoryService) GetStory(id uint) (*story.Story, error) {
	st, err := s.Repos.Story.GetStoryByID(id)
	if err != nil {
		return nil, ErrStoryNotFound
	}
	return &st, nil
}

func (s *StoryService) ListStories(f repository.StoryFilter) ([]story.Story, error) {
	return s.Repos.Story.ListStories(f)
}

func (s *StoryService) ListStates() ([]story.StoryState, error) {
	return s.Repos.Story.ListStates()
}

func (s *StoryService) CreateStory(c *gin.Context, input story.CreateStoryDTO, requesterID uint) (*story.Story, error) {
	if _, err := s.Repos.Project.GetProjectByID(input.PID); err != nil {
		return nil, ErrProjectNotFound
	}

	st := &story.Story{
		PID:         input.PID,
		Title:       input.Title,
		RequesterID: &requesterID,
	}
	if input.Description != nil {
		st.Description = *input.Description
	}
	if input.EpicID != nil {
		st.EpicID = input.EpicID
	}
	if input.SprintID != nil {
		st.SprintID = input.SprintID
	}
	if input.RequesterID != nil {
		st.RequesterID = input.RequesterID
	}
	if input.AssigneeID != nil {
		st.AssigneeID = input.AssigneeID
	}
	if input.Priority != nil {
		st.Priority = *input.Priority
	}
	if input.Points != nil {
		st.Points = *input.Points
	}
	if input.State != nil {
		ss, err := s.Repos.Story.GetStateBySlug(*input.State)
		if err != nil {
			return nil, ErrStateNotFound
		}
		st.StateID = &ss.ID
		st.State = &ss
	}
	tags, err := tagsJSON(input.Tags)
	if err != nil {
		return nil, err
	}
	st.Tags = tags

	if st.IsDone() {
		now := time.Now()
		st.CompletedAt = &now
	}

	if err := s.Repos.Story.CreateStory(st); err != nil {
		return nil, err
	}

	if err := s.Rollup.RecalcForStory([]*uint{st.EpicID}, []*uint{st.SprintID}); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "story", fmt.Sprintf("id=%d", st.ID), nil, st, "", s.Repos.Audit)

	return st, nil
}

func (s *StoryService) UpdateStory(c *gin.Context, id uint, input story.UpdateStoryDTO) (*story.Story, error) {
	st, err := s.Repos.Story.GetStoryByID(id)
	if err != nil {
		return nil, ErrStoryNotFound
	}

	oldStory := st
	wasDone := st.IsDone()
	oldEpicID := st.EpicID
	oldSprintID := st.SprintID

	if input.EpicID != nil {
		st.EpicID = input.EpicID
	}
	if input.SprintID != nil {
		st.SprintID = input.SprintID
	}
	if input.Title != nil {
		st.Title = *input.Title
	}
	if input.Description != nil {
		st.Description = *input.Description
	}
	if input.RequesterID != nil {
		st.RequesterID = input.RequesterID
	}
	if input.AssigneeID != nil {
		st.AssigneeID = input.AssigneeID
	}
	if input.Priority != nil {
		st.Priority = *input.Priority
	}
	if input.Points != nil {
		st.Points = *input.Points
	}
	if input.State != nil {
		ss, err := s.Repos.Story.GetStateBySlug(*input.State)
		if err != nil {
			return nil, ErrStateNotFound
		}
		st.StateID = &ss.ID
		st.State = &ss
	}
	if input.Tags != nil {
		tags, err := tagsJSON(*input.Tags)
		if err != nil {
			return nil, err
		}
		st.Tags = tags
	}

	if !wasDone && st.IsDone() {
		now := time.Now()
		st.CompletedAt = &now
	} else if wasDone && !st.IsDone() {
		st.CompletedAt = nil
	}

	if err := s.Repos.Story.UpdateStory(&st); err != nil {
		return nil, err
	}

	if err := s.Rollup.RecalcForStory(
		[]*uint{oldEpicID, st.EpicID},
		[]*uint{oldSprintID, st.SprintID},
	); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "story", fmt.Sprintf("id=%d", st.ID), oldStory, st, "", s.Repos.Audit)

	return &st, nil
}

func (s *StoryService) DeleteStory(c *gin.Context, id uint) error {
	st, err := s.Repos.Story.GetStoryByID(id)
	if err != nil {
		return ErrStoryNotFound
	}

	attachments, err := s.Repos.Story.ListAttachments(id)
	if err != nil {
		return err
	}
	for _, a := range attachments {
		if err := storage.Delete(context.Background(), a.ObjectKey); err != nil {
			return err
		}
		if err := s.Repos.Story.DeleteAttachment(a.ID); err != nil {
			return err
		}
	}

	if err := s.Repos.Story.DeleteStory(id); err != nil {
		return err
	}

	if err := s.Rollup.RecalcForStory([]*uint{st.EpicID}, []*uint{st.SprintID}); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "story", fmt.Sprintf("id=%d", id), st, nil, "", s.Repos.Audit)

	return nil
}

// DuplicateStory clones a story into the same project with a fresh title
// marker. The clone starts detached from any sprint.
func (s *StoryService) DuplicateStory(id uint) (*story.Story, error) {
	st, err := s.Repos.Story.GetStoryByID(id)
	if err != nil {
		return nil, ErrStoryNotFound
	}

	clone := story.Story{
		PID:         st.PID,
		EpicID:      st.EpicID,
		Title:       st.Title + " (copy)",
		Description: st.Description,
		RequesterID: st.RequesterID,
		AssigneeID:  st.AssigneeID,
		Priority:    st.Priority,
		Points:      st.Points,
		StateID:     st.StateID,
		Tags:        st.Tags,
	}
	if err := s.Repos.Story.CreateStory(&clone); err != nil {
		return nil, err
	}

	if err := s.Rollup.RecalcForStory([]*uint{clone.EpicID}, nil); err != nil {
		return nil, err
	}
	return &clone, nil
}

func (s *StoryService) ListAttachments(storyID uint) ([]story.Attachment, error) {
	if _, err := s.Repos.Story.GetStoryByID(storyID); err != nil {
		return nil, ErrStoryNotFound
	}
	return s.Repos.Story.ListAttachments(storyID)
}

func (s *StoryService) UploadAttachment(c *gin.Context, storyID uint, header *multipart.FileHeader, description string, uploaderID uint) (*story.Attachment, error) {
	if _, err := s.Repos.Story.GetStoryByID(storyID); err != nil {
		return nil, ErrStoryNotFound
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	key := storage.ObjectKey("story_attachments", header.Filename)
	contentType := header.Header.Get("Content-Type")
	if err := storage.Upload(c.Request.Context(), key, file, header.Size, contentType); err != nil {
		return nil, err
	}

	a := &story.Attachment{
		StoryID:     storyID,
		FileName:    header.Filename,
		ObjectKey:   key,
		Size:        header.Size,
		ContentType: contentType,
		Description: description,
		UploaderID:  &uploaderID,
	}
	if err := s.Repos.Story.CreateAttachment(a); err != nil {
		_ = storage.Delete(context.Background(), key)
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "story_attachment", fmt.Sprintf("id=%d", a.ID), nil, a, "", s.Repos.Audit)

	return a, nil
}

func (s *StoryService) OpenAttachment(ctx context.Context, id uint) (*story.Attachment, io.ReadCloser, error) {
	a, err := s.Repos.Story.GetAttachmentByID(id)
	if err != nil {
		return nil, nil, ErrAttachmentNotFound
	}
	rc, err := storage.Download(ctx, a.ObjectKey)
	if err != nil {
		return nil, nil, err
	}
	return &a, rc, nil
}

func (s *StoryService) DeleteAttachment(c *gin.Context, id uint) error {
	a, err := s.Repos.Story.GetAttachmentByID(id)
	if err != nil {
		return ErrAttachmentNotFound
	}

	if err := storage.Delete(context.Background(), a.ObjectKey); err != nil {
		return err
	}
	if err := s.Repos.Story.DeleteAttachment(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "story_attachment", fmt.Sprintf("id=%d", id), a, nil, "", s.Repos.Audit)

	return nil
}
