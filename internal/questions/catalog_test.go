package questions

import "testing"

func TestNextUnansweredWalksCatalogInOrder(t *testing.T) {
	answered := map[string]struct{}{}

	for i := 0; i < CatalogSize; i++ {
		q := NextUnanswered(answered)
		if q == nil {
			t.Fatalf("expected question at step %d, got nil", i)
		}
		if !q.IsSystemQuestion {
			t.Fatalf("expected system question at step %d", i)
		}
		if q.Priority != i+1 {
			t.Fatalf("expected priority %d at step %d, got %d", i+1, i, q.Priority)
		}
		if q.QuestionIndex != i+1 {
			t.Fatalf("expected questionIndex %d, got %d", i+1, q.QuestionIndex)
		}
		answered[q.ID] = struct{}{}
	}

	if q := NextUnanswered(answered); q != nil {
		t.Fatalf("expected nil after full catalog, got %q", q.Text)
	}
}

func TestNextUnansweredSkipsAnswered(t *testing.T) {
	answered := map[string]struct{}{
		systemQuestions[0].ID: {},
		systemQuestions[1].ID: {},
	}

	q := NextUnanswered(answered)
	if q == nil {
		t.Fatal("expected a question, got nil")
	}
	if q.ID != systemQuestions[2].ID {
		t.Fatalf("expected third catalog question, got %q", q.ID)
	}
}

func TestFallbackQuestionRotation(t *testing.T) {
	seen := map[string]int{}
	for count := 0; count < 2*len(fallbackTexts); count++ {
		q := FallbackQuestion(count)
		if q.ID == "" {
			t.Fatalf("expected generated id at count %d", count)
		}
		if q.IsSystemQuestion {
			t.Fatalf("fallback must not be a system question")
		}
		if q.Priority != 20+count {
			t.Fatalf("expected priority %d, got %d", 20+count, q.Priority)
		}
		if q.QuestionIndex != count+1 {
			t.Fatalf("expected questionIndex %d, got %d", count+1, q.QuestionIndex)
		}
		seen[q.Text]++
	}

	// Two full passes over the rotation use every canned text exactly twice.
	if len(seen) != len(fallbackTexts) {
		t.Fatalf("expected %d distinct texts, got %d", len(fallbackTexts), len(seen))
	}
	for text, n := range seen {
		if n != 2 {
			t.Fatalf("expected text %q twice, got %d", text, n)
		}
	}
}
