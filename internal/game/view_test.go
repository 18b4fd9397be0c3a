package game

import "testing"

func TestViewHidesOtherHands(t *testing.T) {
	g := newTestGame(t, 42)

	view, ok := g.View("p1")
	if !ok {
		t.Fatal("View failed for seated player")
	}

	if view.PlayerID != "p1" || view.PlayerPosition != 1 {
		t.Errorf("viewer identity = %s/%d, want p1/1", view.PlayerID, view.PlayerPosition)
	}
	if len(view.Hand) != 5 {
		t.Errorf("own hand has %d cards, want 5", len(view.Hand))
	}
	if len(view.Players) != 4 {
		t.Fatalf("view shows %d seats, want 4", len(view.Players))
	}
	for _, seat := range view.Players {
		if seat.HandSize != 5 {
			t.Errorf("seat %s hand size = %d, want 5", seat.ID, seat.HandSize)
		}
	}

	if view.TrumpSuit != nil {
		t.Error("trump suit should be absent before trump is set")
	}
	if view.TrumpCard == nil {
		t.Error("turned card should be visible during trump selection")
	}
	if view.Phase != "trump_selection" {
		t.Errorf("phase = %q, want trump_selection", view.Phase)
	}
}

func TestViewUnknownPlayer(t *testing.T) {
	g := newTestGame(t, 1)
	if _, ok := g.View("ghost"); ok {
		t.Error("View should fail for an unseated player")
	}
}

func TestViewTrumpVisibleOnceSet(t *testing.T) {
	g := newTestGame(t, 42)
	g.HandleBid(g.Bidder().ID, OrderUp, 0)

	view, _ := g.View("p1")
	if view.TrumpSuit == nil {
		t.Fatal("trump suit should be visible after order up")
	}
	if *view.TrumpSuit != g.TrumpSuit {
		t.Errorf("view trump = %v, want %v", *view.TrumpSuit, g.TrumpSuit)
	}
}

func TestViewIsACopy(t *testing.T) {
	g := newTestGame(t, 42)
	view, _ := g.View("p0")

	orig := g.Player("p0").Hand[0]
	replacement := card("9h")
	if orig == replacement {
		replacement = card("9d")
	}
	view.Hand[0] = replacement

	if g.Player("p0").Hand[0] != orig {
		t.Error("mutating a view's hand must not touch the game")
	}
}
