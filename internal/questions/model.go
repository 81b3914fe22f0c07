package questions

// Category is the closed set of question categories.
type Category string

const (
	CategoryMood       Category = "mood"
	CategoryGenre      Category = "genre"
	CategoryCooking    Category = "cooking"
	CategorySituation  Category = "situation"
	CategoryTime       Category = "time"
	CategoryPreference Category = "preference"
)

// Question is a single yes/no question presented to the user. Questions are
// immutable once created and are not persisted; only answers are.
type Question struct {
	ID               string   `json:"id"`
	Text             string   `json:"text"`
	Category         Category `json:"category"`
	Priority         int      `json:"priority"`
	IsSystemQuestion bool     `json:"isSystemQuestion"`
	QuestionIndex    int      `json:"questionIndex"`
}
