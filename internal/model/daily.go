package model

// DailyDateFormat is the layout of DailyFeature.Date and of the record id
// the feature document is stored under. Dates are computed in UTC.
const DailyDateFormat = "2006-01-02"

// DailyFeature is the character/spell/potion triple pinned for one calendar
// date. Created once per date and never mutated afterwards; re-requests for
// the same date return the stored document verbatim.
type DailyFeature struct {
	Character Character `json:"character"`
	Spell     Spell     `json:"spell"`
	Potion    Potion    `json:"potion"`
	Date      string    `json:"date"`
}
