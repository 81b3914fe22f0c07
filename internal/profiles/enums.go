package profiles

import "strings"

// CuisineGenre is the closed set of cuisine genres.
type CuisineGenre string

const (
	GenreJapanese CuisineGenre = "japanese"
	GenreChinese  CuisineGenre = "chinese"
	GenreKorean   CuisineGenre = "korean"
	GenreItalian  CuisineGenre = "italian"
	GenreFrench   CuisineGenre = "french"
	GenreAmerican CuisineGenre = "american"
	GenreIndian   CuisineGenre = "indian"
	GenreThai     CuisineGenre = "thai"
	GenreMexican  CuisineGenre = "mexican"
	GenreOther    CuisineGenre = "other"
)

// CuisineGenres lists every known genre.
var CuisineGenres = []CuisineGenre{
	GenreJapanese, GenreChinese, GenreKorean, GenreItalian, GenreFrench,
	GenreAmerican, GenreIndian, GenreThai, GenreMexican, GenreOther,
}

// ParseCuisineGenre normalizes raw input; unknown values map to "other".
func ParseCuisineGenre(raw string) CuisineGenre {
	val := CuisineGenre(strings.ToLower(strings.TrimSpace(raw)))
	for _, g := range CuisineGenres {
		if g == val {
			return g
		}
	}
	return GenreOther
}

// SpiceLevel is the ordered set of spice tolerance levels.
type SpiceLevel string

const (
	SpiceNone    SpiceLevel = "none"
	SpiceMild    SpiceLevel = "mild"
	SpiceMedium  SpiceLevel = "medium"
	SpiceHot     SpiceLevel = "hot"
	SpiceVeryHot SpiceLevel = "very_hot"
)

// SpiceLevels lists levels in ascending order.
var SpiceLevels = []SpiceLevel{SpiceNone, SpiceMild, SpiceMedium, SpiceHot, SpiceVeryHot}

// ParseSpiceLevel normalizes raw input, reporting whether it is a known level.
func ParseSpiceLevel(raw string) (SpiceLevel, bool) {
	val := SpiceLevel(strings.ToLower(strings.TrimSpace(raw)))
	for _, s := range SpiceLevels {
		if s == val {
			return s, true
		}
	}
	return "", false
}

// BudgetRange is the ordered set of budget bands.
type BudgetRange string

const (
	BudgetBudget   BudgetRange = "budget"
	BudgetModerate BudgetRange = "moderate"
	BudgetPremium  BudgetRange = "premium"
	BudgetLuxury   BudgetRange = "luxury"
)

// BudgetRanges lists bands in ascending order.
var BudgetRanges = []BudgetRange{BudgetBudget, BudgetModerate, BudgetPremium, BudgetLuxury}

// ParseBudgetRange normalizes raw input, reporting whether it is a known band.
func ParseBudgetRange(raw string) (BudgetRange, bool) {
	val := BudgetRange(strings.ToLower(strings.TrimSpace(raw)))
	for _, b := range BudgetRanges {
		if b == val {
			return b, true
		}
	}
	return "", false
}

// PriceBand is a yen price range.
type PriceBand struct {
	Min int
	Max int
}

var priceBands = map[BudgetRange]PriceBand{
	BudgetBudget:   {Min: 0, Max: 500},
	BudgetModerate: {Min: 500, Max: 1000},
	BudgetPremium:  {Min: 1000, Max: 2000},
	BudgetLuxury:   {Min: 2000, Max: 10000},
}

// Band returns the yen price band for the budget range. Unknown ranges get
// the moderate band.
func (b BudgetRange) Band() PriceBand {
	if band, ok := priceBands[b]; ok {
		return band
	}
	return priceBands[BudgetModerate]
}

// TimeSlot is the closed set of meal time contexts. The canonical casing is
// lower-case; inbound values are normalized by ParseTimeSlot.
type TimeSlot string

const (
	TimeBreakfast TimeSlot = "breakfast"
	TimeLunch     TimeSlot = "lunch"
	TimeDinner    TimeSlot = "dinner"
	TimeSnack     TimeSlot = "snack"
)

// TimeSlots lists every known time slot.
var TimeSlots = []TimeSlot{TimeBreakfast, TimeLunch, TimeDinner, TimeSnack}

// ParseTimeSlot normalizes raw input, reporting whether it is a known slot.
func ParseTimeSlot(raw string) (TimeSlot, bool) {
	val := TimeSlot(strings.ToLower(strings.TrimSpace(raw)))
	for _, t := range TimeSlots {
		if t == val {
			return t, true
		}
	}
	return "", false
}

// Location is an optional coordinate with human-readable locality names.
type Location struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Prefecture string  `json:"prefecture,omitempty"`
	City       string  `json:"city,omitempty"`
}
