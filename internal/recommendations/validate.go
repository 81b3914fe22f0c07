package recommendations

import (
	"encoding/json"

	"github.com/takumines/meal-finder/internal/profiles"
)

const (
	defaultName        = "おすすめ料理"
	defaultDescription = "美味しい料理です"
	defaultReasoning   = "ユーザーの好みに基づいて選択しました"

	minCookingTime     = 5
	maxCookingTime     = 180
	defaultCookingTime = 30

	minConfidence     = 0.1
	maxConfidence     = 1.0
	defaultConfidence = 0.5
)

// rawGenerated mirrors Generated with loose typing so malformed model output
// can be inspected field by field before clamping.
type rawGenerated struct {
	Name               string
	Description        string
	CuisineGenre       string
	SpiceLevel         string
	EstimatedPrice     float64
	CookingTimeMinutes float64
	Ingredients        []string
	Instructions       []string
	MealSource         string
	ConfidenceScore    float64
	Reasoning          string
}

// decodeGenerated parses model output field by field. A mistyped field
// degrades to its zero value so validate can substitute the default; only a
// structurally unparseable document is an error.
func decodeGenerated(data []byte) (rawGenerated, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return rawGenerated{}, err
	}
	return rawGenerated{
		Name:               jsonString(fields["name"]),
		Description:        jsonString(fields["description"]),
		CuisineGenre:       jsonString(fields["cuisine_genre"]),
		SpiceLevel:         jsonString(fields["spice_level"]),
		EstimatedPrice:     jsonNumber(fields["estimated_price"]),
		CookingTimeMinutes: jsonNumber(fields["cooking_time_minutes"]),
		Ingredients:        jsonStringList(fields["ingredients"]),
		Instructions:       jsonStringList(fields["instructions"]),
		MealSource:         jsonString(fields["meal_source"]),
		ConfidenceScore:    jsonNumber(fields["confidence_score"]),
		Reasoning:          jsonString(fields["reasoning"]),
	}, nil
}

func jsonString(raw json.RawMessage) string {
	var val string
	if raw == nil || json.Unmarshal(raw, &val) != nil {
		return ""
	}
	return val
}

func jsonNumber(raw json.RawMessage) float64 {
	var val float64
	if raw == nil || json.Unmarshal(raw, &val) != nil {
		return 0
	}
	return val
}

func jsonStringList(raw json.RawMessage) []string {
	var val []string
	if raw == nil || json.Unmarshal(raw, &val) != nil {
		return nil
	}
	return val
}

// validate clamps every field of a parsed model response into its valid
// range, substituting profile-derived or generic defaults where needed.
func validate(raw rawGenerated, profile profiles.UserProfile) Generated {
	return Generated{
		Name:               defaultIfEmpty(raw.Name, defaultName),
		Description:        defaultIfEmpty(raw.Description, defaultDescription),
		CuisineGenre:       profiles.ParseCuisineGenre(raw.CuisineGenre),
		SpiceLevel:         validateSpiceLevel(raw.SpiceLevel, profile),
		EstimatedPrice:     clampPrice(int(raw.EstimatedPrice), profile.BudgetRange),
		CookingTimeMinutes: clampCookingTime(int(raw.CookingTimeMinutes)),
		Ingredients:        orEmpty(raw.Ingredients),
		Instructions:       orEmpty(raw.Instructions),
		MealSource:         ParseMealSource(raw.MealSource),
		ConfidenceScore:    clampConfidence(raw.ConfidenceScore),
		Reasoning:          defaultIfEmpty(raw.Reasoning, defaultReasoning),
	}
}

func validateSpiceLevel(raw string, profile profiles.UserProfile) profiles.SpiceLevel {
	if lvl, ok := profiles.ParseSpiceLevel(raw); ok {
		return lvl
	}
	return profile.SpicePreference
}

// clampPrice forces price into the yen band of the user's budget range. A
// missing price defaults to half the band's cap; a negative price clamps to
// the band floor like any other out-of-range value.
func clampPrice(price int, budget profiles.BudgetRange) int {
	band := budget.Band()
	if price == 0 {
		price = band.Max / 2
	}
	if price < band.Min {
		return band.Min
	}
	if price > band.Max {
		return band.Max
	}
	return price
}

func clampCookingTime(minutes int) int {
	if minutes == 0 {
		minutes = defaultCookingTime
	}
	if minutes < minCookingTime {
		return minCookingTime
	}
	if minutes > maxCookingTime {
		return maxCookingTime
	}
	return minutes
}

func clampConfidence(score float64) float64 {
	if score == 0 {
		score = defaultConfidence
	}
	if score < minConfidence {
		return minConfidence
	}
	if score > maxConfidence {
		return maxConfidence
	}
	return score
}

func defaultIfEmpty(val, def string) string {
	if val == "" {
		return def
	}
	return val
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
