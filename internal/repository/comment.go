package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/owlpost/lumos/internal/database"
	"github.com/owlpost/lumos/internal/model"
)

// CommentRepository handles comment data access.
type CommentRepository struct {
	db database.Database
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db database.Database) *CommentRepository {
	return &CommentRepository{db: db}
}

// parentField maps a reference kind to its column.
func parentField(kind model.RefKind) (string, error) {
	switch kind {
	case model.RefCharacter:
		return "character_id", nil
	case model.RefPotion:
		return "potion_id", nil
	}
	return "", fmt.Errorf("unknown reference kind %q", kind)
}

// Create persists a new comment with server-assigned timestamps and fills
// in the generated id and timestamps on the passed comment. Which parent
// column is set follows the reference; the other stays absent.
func (r *CommentRepository) Create(ctx context.Context, ref model.CommentRef, comment *model.Comment) error {
	field, err := parentField(ref.Kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`CREATE comment SET
		%s = $parent_id,
		user_id = $user_id,
		content = $content,
		created_on = time::now(),
		updated_on = time::now()`, field)
	vars := map[string]interface{}{
		"parent_id": ref.ID,
		"user_id":   comment.UserID,
		"content":   comment.Content,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	records := recordList(result)
	if len(records) == 0 {
		return errors.New("create returned no record")
	}

	created, err := parseComment(records[0])
	if err != nil {
		return err
	}

	comment.ID = created.ID
	comment.CharacterID = created.CharacterID
	comment.PotionID = created.PotionID
	comment.CreatedOn = created.CreatedOn
	comment.UpdatedOn = created.UpdatedOn
	return nil
}

// ListByParent returns all comments for one parent entity, newest first.
// An unknown reference kind or empty id yields an empty list, not an error.
func (r *CommentRepository) ListByParent(ctx context.Context, ref model.CommentRef) ([]*model.Comment, error) {
	field, err := parentField(ref.Kind)
	if err != nil || ref.ID == "" {
		return []*model.Comment{}, nil
	}

	query := fmt.Sprintf(`SELECT * FROM comment WHERE %s = $parent_id ORDER BY created_on DESC`, field)
	vars := map[string]interface{}{"parent_id": ref.ID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	comments := make([]*model.Comment, 0)
	for _, record := range recordList(result) {
		comment, err := parseComment(record)
		if err != nil {
			continue
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

// GetByID retrieves a single comment.
func (r *CommentRepository) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := recordData(result)
	if err != nil {
		return nil, err
	}
	return parseComment(data)
}

// UpdateContent overwrites the comment body and bumps updated_on. The
// created timestamp and parent reference are never touched.
func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string) (*model.Comment, error) {
	query := `UPDATE type::record($id) SET
		content = $content,
		updated_on = time::now()
		RETURN AFTER`
	vars := map[string]interface{}{
		"id":      id,
		"content": content,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	data, err := recordData(result)
	if err != nil {
		return nil, err
	}
	return parseComment(data)
}

// Delete removes a comment permanently. No tombstone is kept.
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

// parseComment decodes a raw record map into a Comment.
func parseComment(data map[string]interface{}) (*model.Comment, error) {
	comment := &model.Comment{
		ID:        extractRecordID(data["id"]),
		UserID:    getString(data, "user_id"),
		Content:   getString(data, "content"),
		CreatedOn: parseTime(data["created_on"]),
		UpdatedOn: parseTime(data["updated_on"]),
	}
	if comment.ID == "" {
		return nil, errors.New("comment record missing id")
	}

	if s := getString(data, "character_id"); s != "" {
		comment.CharacterID = &s
	}
	if s := getString(data, "potion_id"); s != "" {
		comment.PotionID = &s
	}
	return comment, nil
}
