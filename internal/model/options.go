package model

// Options is the single document of selectable values backing the profile
// form. Stored at a fixed key and read far more often than written.
type Options struct {
	WandCores          []string `json:"wand_cores"`
	WandWoods          []string `json:"wand_woods"`
	Patronuses         []string `json:"patronuses"`
	QuidditchPositions []string `json:"quidditch_positions"`
	HogwartsYears      []int    `json:"hogwarts_years"`
	Houses             []string `json:"houses"`
}

// DefaultOptions returns the seed values written when no options document
// exists yet.
func DefaultOptions() Options {
	return Options{
		WandCores: []string{
			"Phoenix feather", "Dragon heartstring", "Unicorn hair",
			"Thestral tail hair", "Veela hair",
		},
		WandWoods: []string{
			"Holly", "Vine", "Ash", "Elder", "Hawthorn", "Willow",
			"Yew", "Cherry", "Walnut", "Elm",
		},
		Patronuses: []string{
			"Stag", "Otter", "Jack Russell terrier", "Hare", "Doe",
			"Phoenix", "Wolf", "Horse", "Swan", "Lynx",
		},
		QuidditchPositions: []string{
			string(PositionChaser), string(PositionKeeper),
			string(PositionBeater), string(PositionSeeker),
		},
		HogwartsYears: []int{1, 2, 3, 4, 5, 6, 7},
		Houses: []string{
			"Gryffindor", "Hufflepuff", "Ravenclaw", "Slytherin",
		},
	}
}
