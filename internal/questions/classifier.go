package questions

import "strings"

// Classifier assigns a category to generated question text. It is a pluggable
// strategy so the heuristic can be replaced without touching generation.
type Classifier interface {
	Categorize(text string) Category
}

// KeywordClassifier categorizes Japanese question text by keyword families,
// checked in priority order. The default for unmatched text is preference.
type KeywordClassifier struct{}

// Categorize implements Classifier.
func (KeywordClassifier) Categorize(text string) Category {
	if strings.Contains(text, "辛い") || strings.Contains(text, "味") {
		return CategoryPreference
	}
	if strings.Contains(text, "気分") || strings.Contains(text, "今日") {
		return CategoryMood
	}
	if strings.Contains(text, "アレルギー") || strings.Contains(text, "食べられない") {
		return CategoryPreference
	}
	if strings.Contains(text, "場所") || strings.Contains(text, "外食") {
		return CategorySituation
	}
	return CategoryPreference
}
