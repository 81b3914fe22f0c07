package profiles

import "testing"

func TestParseCuisineGenreUnknownMapsToOther(t *testing.T) {
	if got := ParseCuisineGenre("klingon"); got != GenreOther {
		t.Fatalf("expected other, got %q", got)
	}
	if got := ParseCuisineGenre(" Japanese "); got != GenreJapanese {
		t.Fatalf("expected japanese, got %q", got)
	}
}

func TestParseTimeSlotNormalizesCase(t *testing.T) {
	if got, ok := ParseTimeSlot("BREAKFAST"); !ok || got != TimeBreakfast {
		t.Fatalf("expected breakfast, got %q ok=%v", got, ok)
	}
	if _, ok := ParseTimeSlot("brunch"); ok {
		t.Fatal("expected brunch to be rejected")
	}
}

func TestBudgetBands(t *testing.T) {
	cases := []struct {
		budget   BudgetRange
		min, max int
	}{
		{BudgetBudget, 0, 500},
		{BudgetModerate, 500, 1000},
		{BudgetPremium, 1000, 2000},
		{BudgetLuxury, 2000, 10000},
	}

	for _, tc := range cases {
		band := tc.budget.Band()
		if band.Min != tc.min || band.Max != tc.max {
			t.Errorf("%s band = [%d, %d], want [%d, %d]", tc.budget, band.Min, band.Max, tc.min, tc.max)
		}
	}

	// Unknown bands fall back to moderate.
	if band := BudgetRange("unknown").Band(); band.Max != 1000 {
		t.Fatalf("expected moderate fallback, got max %d", band.Max)
	}
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile("guest:u1")
	if p.ID != "guest:u1" {
		t.Fatalf("expected id to match, got %q", p.ID)
	}
	if p.SpicePreference != SpiceMedium {
		t.Fatalf("expected medium spice default, got %q", p.SpicePreference)
	}
	if p.BudgetRange != BudgetModerate {
		t.Fatalf("expected moderate budget default, got %q", p.BudgetRange)
	}
	if p.PreferredGenres == nil || p.Allergies == nil {
		t.Fatal("expected empty slices, not nil")
	}
}
