package service

import (
	"context"
	"strings"

	"github.com/owlpost/lumos/internal/model"
)

// CommentRepository defines the interface for comment storage.
type CommentRepository interface {
	Create(ctx context.Context, ref model.CommentRef, comment *model.Comment) error
	ListByParent(ctx context.Context, ref model.CommentRef) ([]*model.Comment, error)
	GetByID(ctx context.Context, id string) (*model.Comment, error)
	UpdateContent(ctx context.Context, id, content string) (*model.Comment, error)
	Delete(ctx context.Context, id string) error
}

// CommentService handles comment business logic: parent-reference
// validation on writes and author-only mutation. The repository stores what
// it is given; the invariants live here.
type CommentService struct {
	repo CommentRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(repo CommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

func validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if len(content) < model.MinCommentLength {
		return "", ErrCommentEmpty
	}
	if len(content) > model.MaxCommentLength {
		return "", ErrCommentTooLong
	}
	return content, nil
}

// Add creates a comment under exactly one parent entity. A reference that
// names no parent, or an unknown kind, is rejected with ErrInvalidParentRef.
// Created and updated timestamps are server-assigned and equal at creation.
func (s *CommentService) Add(ctx context.Context, ref model.CommentRef, userID, content string) (*model.Comment, error) {
	if !ref.Valid() {
		return nil, ErrInvalidParentRef
	}
	if userID == "" {
		return nil, ErrNotCommentAuthor
	}

	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		UserID:  userID,
		Content: content,
	}
	if err := s.repo.Create(ctx, ref, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// List returns the comments for one parent entity, newest first. An absent
// or empty reference yields an empty list rather than an error.
func (s *CommentService) List(ctx context.Context, ref model.CommentRef) ([]*model.Comment, error) {
	if !ref.Valid() {
		return []*model.Comment{}, nil
	}
	return s.repo.ListByParent(ctx, ref)
}

// Update overwrites a comment's content and bumps its updated timestamp.
// Only the author may update; the created timestamp and parent reference
// are never altered.
func (s *CommentService) Update(ctx context.Context, commentID, actorID, content string) (*model.Comment, error) {
	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCommentNotFound
	}
	if existing.UserID != actorID {
		return nil, ErrNotCommentAuthor
	}

	return s.repo.UpdateContent(ctx, commentID, content)
}

// Remove hard-deletes a comment. Only the author may delete; there is no
// tombstone and no undo.
func (s *CommentService) Remove(ctx context.Context, commentID, actorID string) error {
	existing, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCommentNotFound
	}
	if existing.UserID != actorID {
		return ErrNotCommentAuthor
	}

	return s.repo.Delete(ctx, commentID)
}
