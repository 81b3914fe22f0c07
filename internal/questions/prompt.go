package questions

import (
	"fmt"
	"strings"

	"github.com/takumines/meal-finder/internal/profiles"
)

const generateSystemInstruction = "あなたは日本の食事推薦システムのエキスパートです。" +
	"ユーザーの好みを理解するための効果的な質問を1つ生成してください。" +
	"質問は自然で親しみやすい日本語で、はい/いいえで答えられる形式にしてください。"

// buildPrompt summarizes the profile, time of day, optional location and
// prior answer count for the question-generation request.
func buildPrompt(profile profiles.UserProfile, answerCount int, timeOfDay profiles.TimeSlot, location *profiles.Location) string {
	var b strings.Builder

	b.WriteString("ユーザーの食事推薦のための質問を生成してください。\n\n")
	b.WriteString("ユーザー情報:\n")
	fmt.Fprintf(&b, "- 好みのジャンル: %s\n", joinGenres(profile.PreferredGenres))
	fmt.Fprintf(&b, "- アレルギー: %s\n", joinOrNone(profile.Allergies))
	fmt.Fprintf(&b, "- 辛さの好み: %s\n", profile.SpicePreference)
	fmt.Fprintf(&b, "- 予算: %s\n", profile.BudgetRange)
	fmt.Fprintf(&b, "\n時間帯: %s", timeOfDay)

	if location != nil {
		fmt.Fprintf(&b, "\n場所: %s%s", location.Prefecture, location.City)
	}

	if answerCount > 0 {
		fmt.Fprintf(&b, "\n\n過去の回答数: %d件", answerCount)
	}

	b.WriteString("\n\n効果的な質問を1つ生成してください。質問は具体的で、ユーザーの食事選択に役立つものにしてください。")

	return b.String()
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
