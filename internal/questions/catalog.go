package questions

// systemQuestions is the fixed catalog asked at the start of every session.
// Catalog order IS the priority order; the first unanswered entry wins.
var systemQuestions = []Question{
	{
		ID:               "11111111-1111-1111-1111-111111111111",
		Text:             "今日は何か特別な気分ですか？",
		Category:         CategoryMood,
		Priority:         1,
		IsSystemQuestion: true,
		QuestionIndex:    1,
	},
	{
		ID:               "22222222-2222-2222-2222-222222222222",
		Text:             "辛い料理は好きですか？",
		Category:         CategoryPreference,
		Priority:         2,
		IsSystemQuestion: true,
		QuestionIndex:    2,
	},
	{
		ID:               "33333333-3333-3333-3333-333333333333",
		Text:             "今日は軽めの食事がいいですか？",
		Category:         CategoryPreference,
		Priority:         3,
		IsSystemQuestion: true,
		QuestionIndex:    3,
	},
	{
		ID:               "44444444-4444-4444-4444-444444444444",
		Text:             "温かい料理を食べたいですか？",
		Category:         CategoryPreference,
		Priority:         4,
		IsSystemQuestion: true,
		QuestionIndex:    4,
	},
	{
		ID:               "55555555-5555-5555-5555-555555555555",
		Text:             "外食気分ですか？",
		Category:         CategorySituation,
		Priority:         5,
		IsSystemQuestion: true,
		QuestionIndex:    5,
	},
}

// CatalogSize is the number of predetermined system questions.
var CatalogSize = len(systemQuestions)

// NextUnanswered returns the first catalog question whose id is not in
// answeredIDs, preserving catalog order, or nil when all have been answered.
func NextUnanswered(answeredIDs map[string]struct{}) *Question {
	for i := range systemQuestions {
		if _, done := answeredIDs[systemQuestions[i].ID]; !done {
			q := systemQuestions[i]
			return &q
		}
	}
	return nil
}
