package model

// Spell is a catalog record from the wizarding API. Immutable once fetched.
type Spell struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
