package bridge

import "testing"

func TestParseHand(t *testing.T) {
	hand, err := ParseHand("AKQJT3.5.Q.A9872")
	if err != nil {
		t.Fatal(err)
	}
	if hand.Shape() != [4]int{6, 1, 1, 5} {
		t.Fatalf("shape = %v", hand.Shape())
	}
	if hand.Points() != 16 {
		t.Fatalf("points = %d, want 16", hand.Points())
	}
	if hand.Len() != 13 {
		t.Fatalf("len = %d", hand.Len())
	}
	want := "♠AKQJT3  ♥5  ♦Q  ♣A9872"
	if hand.String() != want {
		t.Fatalf("string = %q, want %q", hand.String(), want)
	}
}

func TestParseHand_Empty(t *testing.T) {
	hand, err := ParseHand("...")
	if err != nil {
		t.Fatal(err)
	}
	if hand.Len() != 0 || hand.Points() != 0 {
		t.Fatalf("empty hand has %d cards, %d points", hand.Len(), hand.Points())
	}
}

func TestParseHand_Invalid(t *testing.T) {
	cases := []string{
		"AKQ.JT9.876",           // only three suits
		"AKQ.JT9.876.5432.1",    // five suits
		"AXQ.JT9.876.5432",      // bad rank character
		"AAKQJT98765432...",     // duplicated card
		"AKQJT98765432.A..",     // fourteen cards
	}
	for _, s := range cases {
		if _, err := ParseHand(s); err == nil {
			t.Fatalf("expected error for hand %q", s)
		}
	}
}

func TestNewHand_RejectsDuplicates(t *testing.T) {
	ace, _ := ParseCard("AS")
	if _, err := NewHand([]Card{ace, ace}); err == nil {
		t.Fatal("expected error for duplicated card")
	}
}

func TestHandHas(t *testing.T) {
	hand, err := ParseHand("AK.QJ.T9.87")
	if err != nil {
		t.Fatal(err)
	}
	queen, _ := ParseCard("QH")
	king, _ := ParseCard("KD")
	if !hand.Has(queen) {
		t.Fatalf("%s should hold QH", hand)
	}
	if hand.Has(king) {
		t.Fatalf("%s should not hold KD", hand)
	}
}

func TestHandKeycards(t *testing.T) {
	hand, err := ParseHand("AK32.A54.K87.962")
	if err != nil {
		t.Fatal(err)
	}
	if got := hand.Keycards(NoTrump); got != 2 {
		t.Fatalf("keycards(NT) = %d, want 2", got)
	}
	if got := hand.Keycards(StrainSpades); got != 3 {
		t.Fatalf("keycards(S) = %d, want 3", got)
	}
	if got := hand.Keycards(StrainHearts); got != 2 {
		t.Fatalf("keycards(H) = %d, want 2", got)
	}
}
