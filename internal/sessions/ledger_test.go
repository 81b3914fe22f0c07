package sessions

import "testing"

func TestProgressFor(t *testing.T) {
	cases := []struct {
		answered   int
		percentage float64
	}{
		{0, 0},
		{3, 30},
		{5, 50},
		{10, 100},
	}

	for _, tc := range cases {
		p := ProgressFor(tc.answered)
		if p.Current != tc.answered {
			t.Errorf("ProgressFor(%d).Current = %d", tc.answered, p.Current)
		}
		if p.Total != MaxQuestions {
			t.Errorf("ProgressFor(%d).Total = %d, want %d", tc.answered, p.Total, MaxQuestions)
		}
		if p.Percentage != tc.percentage {
			t.Errorf("ProgressFor(%d).Percentage = %f, want %f", tc.answered, p.Percentage, tc.percentage)
		}
	}
}

func TestProgressForCapsAtQuestionLimit(t *testing.T) {
	p := ProgressFor(12)
	if p.Current != MaxQuestions {
		t.Fatalf("expected current capped at %d, got %d", MaxQuestions, p.Current)
	}
	if p.Percentage != 100 {
		t.Fatalf("expected 100%%, got %f", p.Percentage)
	}
}

func TestLedgerThresholds(t *testing.T) {
	if !CanContinue(9) {
		t.Fatal("expected CanContinue at 9 answers")
	}
	if CanContinue(10) {
		t.Fatal("expected no continuation at the question limit")
	}

	if ShouldOfferRecommendation(2) {
		t.Fatal("2 answers must not be enough for a recommendation")
	}
	if !ShouldOfferRecommendation(3) {
		t.Fatal("3 answers must be enough for a recommendation")
	}

	if IsComplete(9) {
		t.Fatal("9 answers is not complete")
	}
	if !IsComplete(10) {
		t.Fatal("10 answers is complete")
	}
}

func TestParseStatus(t *testing.T) {
	if s, ok := ParseStatus("  Active "); !ok || s != StatusActive {
		t.Fatalf("expected active, got %q ok=%v", s, ok)
	}
	if _, ok := ParseStatus("paused"); ok {
		t.Fatal("expected unknown status to be rejected")
	}
}
