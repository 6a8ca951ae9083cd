package model

// Wand describes a character's wand as reported by the wizarding API.
type Wand struct {
	Wood   string  `json:"wood"`
	Core   string  `json:"core"`
	Length float64 `json:"length"`
}

// Character is a catalog record from the wizarding API. Immutable once
// fetched; the empty-image characters are excluded from daily-feature
// candidacy but kept in the cached collection.
type Character struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	AlternateNames  []string `json:"alternate_names,omitempty"`
	Species         string   `json:"species"`
	Gender          string   `json:"gender"`
	House           string   `json:"house"`
	DateOfBirth     string   `json:"dateOfBirth"`
	YearOfBirth     int      `json:"yearOfBirth"`
	Wizard          bool     `json:"wizard"`
	Ancestry        string   `json:"ancestry"`
	EyeColour       string   `json:"eyeColour"`
	HairColour      string   `json:"hairColour"`
	Wand            Wand     `json:"wand"`
	Patronus        string   `json:"patronus"`
	HogwartsStudent bool     `json:"hogwartsStudent"`
	HogwartsStaff   bool     `json:"hogwartsStaff"`
	Actor           string   `json:"actor"`
	Alive           bool     `json:"alive"`
	Image           string   `json:"image"`
}

// HasImage reports whether the character carries a portrait and is therefore
// eligible for daily-feature selection.
func (c Character) HasImage() bool {
	return c.Image != ""
}
