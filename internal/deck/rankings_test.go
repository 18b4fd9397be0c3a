package deck

import "testing"

func card(s string) Card {
	return MustParseCards(s)[0]
}

func TestBowers(t *testing.T) {
	tests := []struct {
		name      string
		card      Card
		trump     Suit
		wantRight bool
		wantLeft  bool
	}{
		{"trump jack is right bower", card("Jh"), Hearts, true, false},
		{"same color jack is left bower", card("Jd"), Hearts, false, true},
		{"off color jack is neither", card("Js"), Hearts, false, false},
		{"black right bower", card("Js"), Spades, true, false},
		{"black left bower", card("Jc"), Spades, false, true},
		{"non-jack trump is neither", card("Ah"), Hearts, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRightBower(tt.card, tt.trump); got != tt.wantRight {
				t.Errorf("IsRightBower(%v, %v) = %v, want %v", tt.card, tt.trump, got, tt.wantRight)
			}
			if got := IsLeftBower(tt.card, tt.trump); got != tt.wantLeft {
				t.Errorf("IsLeftBower(%v, %v) = %v, want %v", tt.card, tt.trump, got, tt.wantLeft)
			}
		})
	}
}

func TestEffectiveSuit(t *testing.T) {
	tests := []struct {
		name  string
		card  Card
		trump Suit
		want  Suit
	}{
		{"left bower counts as trump", card("Jd"), Hearts, Hearts},
		{"right bower keeps its suit", card("Jh"), Hearts, Hearts},
		{"off color jack keeps its suit", card("Js"), Hearts, Spades},
		{"plain card keeps its suit", card("Ad"), Hearts, Diamonds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveSuit(tt.card, tt.trump); got != tt.want {
				t.Errorf("EffectiveSuit(%v, %v) = %v, want %v", tt.card, tt.trump, got, tt.want)
			}
		})
	}
}

func TestIsTrump(t *testing.T) {
	trump := Clubs
	for _, tt := range []struct {
		card Card
		want bool
	}{
		{card("Jc"), true},
		{card("Js"), true}, // left bower
		{card("9c"), true},
		{card("Jh"), false},
		{card("As"), false},
	} {
		if got := IsTrump(tt.card, trump); got != tt.want {
			t.Errorf("IsTrump(%v, clubs) = %v, want %v", tt.card, got, tt.want)
		}
	}
}

func TestRankValue(t *testing.T) {
	tests := []struct {
		name  string
		card  Card
		trump Suit
		lead  Suit
		want  int
	}{
		{"right bower", card("Jh"), Hearts, Spades, 100},
		{"left bower", card("Jd"), Hearts, Spades, 99},
		{"trump ace", card("Ah"), Hearts, Spades, 64},
		{"trump nine", card("9h"), Hearts, Spades, 59},
		{"lead suit ace", card("As"), Hearts, Spades, 14},
		{"lead suit nine", card("9s"), Hearts, Spades, 9},
		{"off suit ace is worthless", card("Ac"), Hearts, Spades, 0},
		{"off color jack follows its printed suit", card("Js"), Hearts, Spades, 11},
		{"lead equals trump", card("Kh"), Hearts, Hearts, 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RankValue(tt.card, tt.trump, tt.lead); got != tt.want {
				t.Errorf("RankValue(%v, %v, %v) = %d, want %d", tt.card, tt.trump, tt.lead, got, tt.want)
			}
		})
	}
}

// Any trump beats any non-trump, and every card in a trick has a
// distinct value, so strict comparison always finds a single winner.
func TestRankValueOrdering(t *testing.T) {
	trump, lead := Hearts, Spades

	lowestTrump := RankValue(card("9h"), trump, lead)
	highestLead := RankValue(card("As"), trump, lead)
	if lowestTrump <= highestLead {
		t.Errorf("lowest trump (%d) should beat highest lead card (%d)", lowestTrump, highestLead)
	}

	trick := MustParseCards("JhJdAh9s")
	seen := make(map[int]bool)
	for _, c := range trick {
		v := RankValue(c, trump, lead)
		if seen[v] {
			t.Errorf("duplicate rank value %d for %v", v, c)
		}
		seen[v] = true
	}
}
