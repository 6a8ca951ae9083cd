package model

import "strings"

// PotionAttributes carries the descriptive payload of a potion record.
// Ingredients arrive as a single comma-joined string from the upstream API.
type PotionAttributes struct {
	Name            string `json:"name"`
	Effect          string `json:"effect"`
	Ingredients     string `json:"ingredients"`
	Characteristics string `json:"characteristics"`
	Difficulty      string `json:"difficulty"`
	Image           string `json:"image,omitempty"`
}

// Potion is a catalog record from the potions API. Immutable once fetched.
type Potion struct {
	ID         string           `json:"id"`
	Attributes PotionAttributes `json:"attributes"`
}

// IngredientList splits the comma-joined ingredients string into trimmed
// entries, dropping empties.
func (p Potion) IngredientList() []string {
	if p.Attributes.Ingredients == "" {
		return nil
	}
	parts := strings.Split(p.Attributes.Ingredients, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
