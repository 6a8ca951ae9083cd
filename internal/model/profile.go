package model

import "time"

// QuidditchPosition is the set of positions a profile may declare.
type QuidditchPosition string

const (
	PositionChaser QuidditchPosition = "Chaser"
	PositionKeeper QuidditchPosition = "Keeper"
	PositionBeater QuidditchPosition = "Beater"
	PositionSeeker QuidditchPosition = "Seeker"
)

// ValidQuidditchPosition reports whether p is one of the four positions.
func ValidQuidditchPosition(p QuidditchPosition) bool {
	switch p {
	case PositionChaser, PositionKeeper, PositionBeater, PositionSeeker:
		return true
	}
	return false
}

// Profile field constraints enforced at write time.
const (
	MaxNicknameLength  = 50
	MaxBiographyLength = 1000
	MinHogwartsYear    = 1
	MaxHogwartsYear    = 7
)

// UserProfile is the per-user fan profile, keyed by the authenticated
// identity. Created lazily with every optional field null on first
// authentication; thereafter only ever partially updated by its owner.
type UserProfile struct {
	UID               string             `json:"uid"`
	Email             *string            `json:"email"`
	Nickname          *string            `json:"nickname"`
	ProfilePicture    *string            `json:"profile_picture"`
	FavoriteHouse     *string            `json:"favorite_house"`
	FavoriteSpell     *string            `json:"favorite_spell"`
	FavoriteCharacter *string            `json:"favorite_character"`
	FavoritePotion    *string            `json:"favorite_potion"`
	WandCore          *string            `json:"wand_core"`
	WandWood          *string            `json:"wand_wood"`
	WandLength        *float64           `json:"wand_length"`
	Patronus          *string            `json:"patronus"`
	QuidditchPosition *QuidditchPosition `json:"quidditch_position"`
	HogwartsYear      *int               `json:"hogwarts_year"`
	Biography         *string            `json:"biography"`
	CreatedOn         time.Time          `json:"created_on"`
	UpdatedOn         time.Time          `json:"updated_on"`
}

// ProfilePatch is an explicit partial update. Nil fields are left untouched;
// non-nil fields overwrite the stored value. Applied field-by-field so merge
// semantics do not depend on a store-level merge primitive.
type ProfilePatch struct {
	Nickname          *string            `json:"nickname,omitempty"`
	ProfilePicture    *string            `json:"profile_picture,omitempty"`
	FavoriteHouse     *string            `json:"favorite_house,omitempty"`
	FavoriteSpell     *string            `json:"favorite_spell,omitempty"`
	FavoriteCharacter *string            `json:"favorite_character,omitempty"`
	FavoritePotion    *string            `json:"favorite_potion,omitempty"`
	WandCore          *string            `json:"wand_core,omitempty"`
	WandWood          *string            `json:"wand_wood,omitempty"`
	WandLength        *float64           `json:"wand_length,omitempty"`
	Patronus          *string            `json:"patronus,omitempty"`
	QuidditchPosition *QuidditchPosition `json:"quidditch_position,omitempty"`
	HogwartsYear      *int               `json:"hogwarts_year,omitempty"`
	Biography         *string            `json:"biography,omitempty"`
}

// Fields flattens the patch into a column→value map containing only the
// supplied fields, ready for a merge write.
func (p ProfilePatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Nickname != nil {
		fields["nickname"] = *p.Nickname
	}
	if p.ProfilePicture != nil {
		fields["profile_picture"] = *p.ProfilePicture
	}
	if p.FavoriteHouse != nil {
		fields["favorite_house"] = *p.FavoriteHouse
	}
	if p.FavoriteSpell != nil {
		fields["favorite_spell"] = *p.FavoriteSpell
	}
	if p.FavoriteCharacter != nil {
		fields["favorite_character"] = *p.FavoriteCharacter
	}
	if p.FavoritePotion != nil {
		fields["favorite_potion"] = *p.FavoritePotion
	}
	if p.WandCore != nil {
		fields["wand_core"] = *p.WandCore
	}
	if p.WandWood != nil {
		fields["wand_wood"] = *p.WandWood
	}
	if p.WandLength != nil {
		fields["wand_length"] = *p.WandLength
	}
	if p.Patronus != nil {
		fields["patronus"] = *p.Patronus
	}
	if p.QuidditchPosition != nil {
		fields["quidditch_position"] = string(*p.QuidditchPosition)
	}
	if p.HogwartsYear != nil {
		fields["hogwarts_year"] = *p.HogwartsYear
	}
	if p.Biography != nil {
		fields["biography"] = *p.Biography
	}
	return fields
}

// Validate checks the patch against profile constraints. Only supplied
// fields are checked.
func (p ProfilePatch) Validate() []FieldError {
	var errs []FieldError
	if p.Nickname != nil && len(*p.Nickname) > MaxNicknameLength {
		errs = append(errs, FieldError{Field: "nickname", Message: "exceeds maximum length"})
	}
	if p.Biography != nil && len(*p.Biography) > MaxBiographyLength {
		errs = append(errs, FieldError{Field: "biography", Message: "exceeds maximum length"})
	}
	if p.HogwartsYear != nil && (*p.HogwartsYear < MinHogwartsYear || *p.HogwartsYear > MaxHogwartsYear) {
		errs = append(errs, FieldError{Field: "hogwarts_year", Message: "must be between 1 and 7"})
	}
	if p.QuidditchPosition != nil && !ValidQuidditchPosition(*p.QuidditchPosition) {
		errs = append(errs, FieldError{Field: "quidditch_position", Message: "unknown position"})
	}
	if p.WandLength != nil && (*p.WandLength <= 0 || *p.WandLength > 50) {
		errs = append(errs, FieldError{Field: "wand_length", Message: "implausible wand length"})
	}
	return errs
}
