package deck

import "testing"

func cardsEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "trump run",
			input: "AhKhQhJhTh",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Hearts, Rank: Queen},
				{Suit: Hearts, Rank: Jack},
				{Suit: Hearts, Rank: Ten},
			},
		},
		{
			name:  "mixed suits",
			input: "AhKdQcJs9s",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: King},
				{Suit: Clubs, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Nine},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "rank below nine",
			input:   "5hKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !cardsEqual(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{Card{Suit: Hearts, Rank: Jack}, "Jh"},
		{Card{Suit: Diamonds, Rank: Nine}, "9d"},
		{Card{Suit: Clubs, Rank: Ten}, "Tc"},
		{Card{Suit: Spades, Rank: Ace}, "As"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("Card.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseSuit(t *testing.T) {
	tests := []struct {
		input   string
		want    Suit
		wantErr bool
	}{
		{"hearts", Hearts, false},
		{"Diamonds", Diamonds, false},
		{"CLUBS", Clubs, false},
		{"spades", Spades, false},
		{"swords", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSuit(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSuit(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseSuit(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSuitColors(t *testing.T) {
	if !Hearts.SameColor(Diamonds) {
		t.Error("Hearts and Diamonds should share a color")
	}
	if !Clubs.SameColor(Spades) {
		t.Error("Clubs and Spades should share a color")
	}
	if Hearts.SameColor(Spades) {
		t.Error("Hearts and Spades should not share a color")
	}
	if !Hearts.IsRed() || !Diamonds.IsRed() {
		t.Error("Hearts and Diamonds should be red")
	}
	if Clubs.IsRed() || Spades.IsRed() {
		t.Error("Clubs and Spades should not be red")
	}
}
