package recommendations

import "github.com/takumines/meal-finder/internal/profiles"

const (
	fallbackConfidence = 0.6
	fallbackPrice      = 800
	fallbackReasoning  = "基本的な推薦を提供しました"
)

type fallbackMeal struct {
	name               string
	description        string
	cuisineGenre       profiles.CuisineGenre
	cookingTimeMinutes int
	ingredients        []string
	instructions       []string
}

// fallbackMeals is the canned recommendation per time slot, used whenever the
// AI path fails. This path never fails.
var fallbackMeals = map[profiles.TimeSlot]fallbackMeal{
	profiles.TimeBreakfast: {
		name:               "和風朝食セット",
		description:        "ご飯、味噌汁、焼き魚の定番朝食",
		cuisineGenre:       profiles.GenreJapanese,
		cookingTimeMinutes: 20,
		ingredients:        []string{"ご飯", "味噌", "魚", "野菜"},
		instructions:       []string{"ご飯を炊く", "味噌汁を作る", "魚を焼く"},
	},
	profiles.TimeLunch: {
		name:               "カレーライス",
		description:        "野菜たっぷりのカレーライス",
		cuisineGenre:       profiles.GenreAmerican,
		cookingTimeMinutes: 40,
		ingredients:        []string{"ご飯", "カレールー", "玉ねぎ", "にんじん", "じゃがいも"},
		instructions:       []string{"野菜を切る", "炒める", "煮込む", "ご飯にかける"},
	},
	profiles.TimeDinner: {
		name:               "焼き魚定食",
		description:        "魚の塩焼きと小鉢の定食",
		cuisineGenre:       profiles.GenreJapanese,
		cookingTimeMinutes: 25,
		ingredients:        []string{"魚", "ご飯", "野菜", "味噌"},
		instructions:       []string{"魚を焼く", "ご飯を炊く", "味噌汁を作る"},
	},
	profiles.TimeSnack: {
		name:               "フルーツサラダ",
		description:        "季節のフルーツを使ったサラダ",
		cuisineGenre:       profiles.GenreOther,
		cookingTimeMinutes: 10,
		ingredients:        []string{"季節のフルーツ", "ヨーグルト", "ナッツ"},
		instructions:       []string{"フルーツを切る", "ヨーグルトと混ぜる", "ナッツをトッピング"},
	},
}

// fallbackRecommendation builds the canned recommendation for the time slot,
// filling spice from the user's own preference and clamping price to their
// budget band.
func fallbackRecommendation(profile profiles.UserProfile, timeOfDay profiles.TimeSlot) Generated {
	meal, ok := fallbackMeals[timeOfDay]
	if !ok {
		meal = fallbackMeals[profiles.TimeLunch]
	}

	return Generated{
		Name:               meal.name,
		Description:        meal.description,
		CuisineGenre:       meal.cuisineGenre,
		SpiceLevel:         profile.SpicePreference,
		EstimatedPrice:     clampPrice(fallbackPrice, profile.BudgetRange),
		CookingTimeMinutes: meal.cookingTimeMinutes,
		Ingredients:        meal.ingredients,
		Instructions:       meal.instructions,
		MealSource:         SourceRecommendation,
		ConfidenceScore:    fallbackConfidence,
		Reasoning:          fallbackReasoning,
	}
}
