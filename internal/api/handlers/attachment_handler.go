package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/pkg/response"
	"github.com/agily-hq/agily/pkg/utils"
)

// deleteTokenStore hands out single-use tokens for attachment deletion.
// A token is consumed on first use, so a double-submitted delete form
// results in one delete and one harmless no-op.
type deleteTokenStore struct {
	mu     sync.Mutex
	tokens map[string]uint
}

func newDeleteTokenStore() *deleteTokenStore {
	return &deleteTokenStore{tokens: make(map[string]uint)}
}

func (s *deleteTokenStore) Issue(attachmentID uint) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = attachmentID
	s.mu.Unlock()
	return token
}

func (s *deleteTokenStore) Consume(token string) (uint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.tokens[token]
	if ok {
		delete(s.tokens, token)
	}
	return id, ok
}

type AttachmentHandler struct {
	issues  *application.IssueService
	stories *application.StoryService

	issueTokens *deleteTokenStore
	storyTokens *deleteTokenStore
}

func NewAttachmentHandler(issues *application.IssueService, stories *application.StoryService) *AttachmentHandler {
	return &AttachmentHandler{
		issues:      issues,
		stories:     stories,
		issueTokens: newDeleteTokenStore(),
		storyTokens: newDeleteTokenStore(),
	}
}

// UploadIssueAttachment godoc
// @Summary Upload issue attachment
// @Tags attachments
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Issue ID"
// @Param file formData file true "File to attach"
// @Param description formData string false "Attachment description"
// @Success 201 {object} issue.Attachment
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/issues/{id}/attachments [post]
func (h *AttachmentHandler) UploadIssueAttachment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid issue id"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	att, err := h.issues.UploadAttachment(c, id, header, c.PostForm("description"), uid)
	if err != nil {
		if errors.Is(err, application.ErrIssueNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, att)
}

// ListIssueAttachments godoc
// @Summary List issue attachments
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Issue ID"
// @Success 200 {array} issue.Attachment
// @Failure 400 {object} response.ErrorResponse "Invalid issue id"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/issues/{id}/attachments [get]
func (h *AttachmentHandler) ListIssueAttachments(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid issue id"})
		return
	}

	atts, err := h.issues.ListAttachments(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, atts)
}

// DownloadIssueAttachment godoc
// @Summary Download issue attachment
// @Description Streams the stored object as a forced download.
// @Tags attachments
// @Security BearerAuth
// @Produce octet-stream
// @Param workspace path string true "Workspace slug"
// @Param attachment_id path int true "Attachment ID"
// @Success 200 {file} binary
// @Failure 400 {object} response.ErrorResponse "Invalid attachment id"
// @Failure 404 {object} response.ErrorResponse "Attachment not found"
// @Router /w/{workspace}/attachments/{attachment_id} [get]
func (h *AttachmentHandler) DownloadIssueAttachment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "attachment_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid attachment id"})
		return
	}

	att, obj, err := h.issues.OpenAttachment(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Attachment not found"})
		return
	}
	defer obj.Close()

	streamDownload(c, att.FileName, att.ContentType, att.Size, obj)
}

// IssueDeleteToken godoc
// @Summary Issue a single-use delete token for an issue attachment
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param attachment_id path int true "Attachment ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.ErrorResponse "Invalid attachment id"
// @Router /w/{workspace}/attachments/{attachment_id}/delete-token [post]
func (h *AttachmentHandler) IssueDeleteToken(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "attachment_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid attachment id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"delete_token": h.issueTokens.Issue(id)})
}

// DeleteIssueAttachment godoc
// @Summary Delete issue attachment
// @Description Consumes the delete token. A token seen before is a no-op, not an error.
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param token path string true "Delete token"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Attachment not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/attachments/delete/{token} [delete]
func (h *AttachmentHandler) DeleteIssueAttachment(c *gin.Context) {
	id, ok := h.issueTokens.Consume(c.Param("token"))
	if !ok {
		c.JSON(http.StatusOK, response.MessageResponse{Message: "Attachment already deleted"})
		return
	}

	if err := h.issues.DeleteAttachment(c, id); err != nil {
		if errors.Is(err, application.ErrAttachmentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Attachment not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Attachment deleted"})
}

// UploadStoryAttachment godoc
// @Summary Upload story attachment
// @Tags attachments
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Story ID"
// @Param file formData file true "File to attach"
// @Param description formData string false "Attachment description"
// @Success 201 {object} story.Attachment
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Story not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/stories/{id}/attachments [post]
func (h *AttachmentHandler) UploadStoryAttachment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid story id"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	att, err := h.stories.UploadAttachment(c, id, header, c.PostForm("description"), uid)
	if err != nil {
		if errors.Is(err, application.ErrStoryNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Story not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, att)
}

// ListStoryAttachments godoc
// @Summary List story attachments
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param id path int true "Story ID"
// @Success 200 {array} story.Attachment
// @Failure 400 {object} response.ErrorResponse "Invalid story id"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/stories/{id}/attachments [get]
func (h *AttachmentHandler) ListStoryAttachments(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid story id"})
		return
	}

	atts, err := h.stories.ListAttachments(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, atts)
}

// DownloadStoryAttachment godoc
// @Summary Download story attachment
// @Tags attachments
// @Security BearerAuth
// @Produce octet-stream
// @Param workspace path string true "Workspace slug"
// @Param attachment_id path int true "Attachment ID"
// @Success 200 {file} binary
// @Failure 400 {object} response.ErrorResponse "Invalid attachment id"
// @Failure 404 {object} response.ErrorResponse "Attachment not found"
// @Router /w/{workspace}/story-attachments/{attachment_id} [get]
func (h *AttachmentHandler) DownloadStoryAttachment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "attachment_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid attachment id"})
		return
	}

	att, obj, err := h.stories.OpenAttachment(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Attachment not found"})
		return
	}
	defer obj.Close()

	streamDownload(c, att.FileName, att.ContentType, att.Size, obj)
}

// IssueStoryDeleteToken godoc
// @Summary Issue a single-use delete token for a story attachment
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param attachment_id path int true "Attachment ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.ErrorResponse "Invalid attachment id"
// @Router /w/{workspace}/story-attachments/{attachment_id}/delete-token [post]
func (h *AttachmentHandler) IssueStoryDeleteToken(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "attachment_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid attachment id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"delete_token": h.storyTokens.Issue(id)})
}

// DeleteStoryAttachment godoc
// @Summary Delete story attachment
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param workspace path string true "Workspace slug"
// @Param token path string true "Delete token"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Attachment not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /w/{workspace}/story-attachments/delete/{token} [delete]
func (h *AttachmentHandler) DeleteStoryAttachment(c *gin.Context) {
	id, ok := h.storyTokens.Consume(c.Param("token"))
	if !ok {
		c.JSON(http.StatusOK, response.MessageResponse{Message: "Attachment already deleted"})
		return
	}

	if err := h.stories.DeleteAttachment(c, id); err != nil {
		if errors.Is(err, application.ErrAttachmentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Attachment not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Attachment deleted"})
}

// streamDownload forces the browser to save the object instead of rendering it.
func streamDownload(c *gin.Context, fileName, contentType string, size int64, r io.Reader) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Header("Cache-Control", "no-store")
	c.DataFromReader(http.StatusOK, size, contentType, r, nil)
}
