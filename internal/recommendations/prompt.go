package recommendations

import (
	"fmt"
	"strings"

	"github.com/takumines/meal-finder/internal/profiles"
)

const generateSystemInstruction = `あなたは日本の食事推薦エキスパートです。ユーザーの回答に基づいて最適な食事を推薦してください。

回答は以下のJSON形式で返してください:
{
  "name": "料理名",
  "description": "料理の説明（50文字以内）",
  "cuisine_genre": "japanese|chinese|korean|italian|french|american|indian|thai|mexican|other",
  "spice_level": "none|mild|medium|hot|very_hot",
  "estimated_price": 価格（円）,
  "cooking_time_minutes": 調理時間（分）,
  "ingredients": ["材料1", "材料2", ...],
  "instructions": ["手順1", "手順2", ...],
  "meal_source": "recommendation|manual_entry",
  "confidence_score": 0.8,
  "reasoning": "推薦理由"
}`

// buildPrompt enumerates the profile fields and the numbered question/answer
// pairs for the recommendation request.
func buildPrompt(profile profiles.UserProfile, answers []AnswerInput, timeOfDay profiles.TimeSlot, location *profiles.Location) string {
	var b strings.Builder

	b.WriteString("食事推薦を生成してください。\n\n")
	b.WriteString("ユーザー情報:\n")
	fmt.Fprintf(&b, "- 好みのジャンル: %s\n", joinGenres(profile.PreferredGenres))
	fmt.Fprintf(&b, "- アレルギー: %s\n", joinOrNone(profile.Allergies))
	fmt.Fprintf(&b, "- 辛さの好み: %s\n", profile.SpicePreference)
	fmt.Fprintf(&b, "- 予算: %s\n", profile.BudgetRange)
	fmt.Fprintf(&b, "\n時間帯: %s", timeOfDay)

	if location != nil {
		fmt.Fprintf(&b, "\n場所: %s%s", location.Prefecture, location.City)
	}

	if len(answers) > 0 {
		b.WriteString("\n\n質問への回答:")
		for i, answer := range answers {
			fmt.Fprintf(&b, "\n%d. 質問ID: %s, 回答: %s", i+1, answer.QuestionID, yesNo(answer.Response))
		}
	}

	b.WriteString("\n\n上記の情報に基づいて、最適な食事を1つ推薦してください。料理は具体的で実現可能なものにしてください。")

	return b.String()
}

func yesNo(response bool) string {
	if response {
		return "はい"
	}
	return "いいえ"
}

func joinGenres(genres []profiles.CuisineGenre) string {
	if len(genres) == 0 {
		return ""
	}
	parts := make([]string, 0, len(genres))
	for _, g := range genres {
		parts = append(parts, string(g))
	}
	return strings.Join(parts, ", ")
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "なし"
	}
	return strings.Join(items, ", ")
}
