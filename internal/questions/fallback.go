package questions

import "github.com/google/uuid"

// fallbackTexts is the canned rotation used when AI generation fails. The
// rotation is indexed by answer count modulo its length, so consecutive
// failures within one session walk it in order.
var fallbackTexts = []string{
	"今日は新しい料理に挑戦したい気分ですか？",
	"おなかはどのくらい空いていますか？",
	"一人で食事をする予定ですか？",
	"野菜をたくさん食べたい気分ですか？",
	"お米やパンなどの主食は必要ですか？",
}

// FallbackQuestion builds the canned question for the given answer count.
func FallbackQuestion(answerCount int) Question {
	return Question{
		ID:               uuid.NewString(),
		Text:             fallbackTexts[answerCount%len(fallbackTexts)],
		Category:         CategoryPreference,
		Priority:         20 + answerCount,
		IsSystemQuestion: false,
		QuestionIndex:    answerCount + 1,
	}
}
