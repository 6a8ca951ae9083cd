package model

import "time"

// Comment length constraints enforced at write time.
const (
	MinCommentLength = 1
	MaxCommentLength = 2000
)

// RefKind identifies which entity type a comment is attached to.
type RefKind string

const (
	RefCharacter RefKind = "character"
	RefPotion    RefKind = "potion"
)

// CommentRef identifies the single parent entity of a comment. The zero
// value is invalid; construct through ForCharacter or ForPotion so the
// "both or neither" state is unrepresentable.
type CommentRef struct {
	Kind RefKind
	ID   string
}

// ForCharacter returns a reference to a character page.
func ForCharacter(id string) CommentRef {
	return CommentRef{Kind: RefCharacter, ID: id}
}

// ForPotion returns a reference to a potion page.
func ForPotion(id string) CommentRef {
	return CommentRef{Kind: RefPotion, ID: id}
}

// Valid reports whether the reference names exactly one existing kind with a
// non-empty id.
func (r CommentRef) Valid() bool {
	if r.ID == "" {
		return false
	}
	return r.Kind == RefCharacter || r.Kind == RefPotion
}

// Comment is a user comment on a character or potion page. Exactly one of
// CharacterID/PotionID is set, derived from the CommentRef supplied at
// creation; a comment is never reparented.
type Comment struct {
	ID          string    `json:"id"`
	CharacterID *string   `json:"character_id,omitempty"`
	PotionID    *string   `json:"potion_id,omitempty"`
	UserID      string    `json:"user_id"`
	Content     string    `json:"content"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// Ref reconstructs the parent reference of a stored comment.
func (c Comment) Ref() CommentRef {
	if c.CharacterID != nil {
		return ForCharacter(*c.CharacterID)
	}
	if c.PotionID != nil {
		return ForPotion(*c.PotionID)
	}
	return CommentRef{}
}
