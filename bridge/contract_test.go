package bridge

import "testing"

func mustContract(t *testing.T, s string, vul bool) Contract {
	t.Helper()
	c, err := ParseContract(s, vul)
	if err != nil {
		t.Fatalf("ParseContract(%q): %v", s, err)
	}
	return c
}

func TestParseContract(t *testing.T) {
	c := mustContract(t, "2D", false)
	if c.Level() != 2 || c.Strain() != StrainDiamonds || c.Doubles() != 0 || c.Target() != 8 || c.Vulnerable() {
		t.Fatalf("2D parsed as %+v", c)
	}
	c = mustContract(t, "4HX", false)
	if c.Level() != 4 || c.Strain() != StrainHearts || c.Doubles() != 1 || c.Target() != 10 {
		t.Fatalf("4HX parsed as %+v", c)
	}
	c = mustContract(t, "1NTXX", true)
	if c.Level() != 1 || c.Strain() != NoTrump || c.Doubles() != 2 || c.Target() != 7 || !c.Vulnerable() {
		t.Fatalf("1NTXX parsed as %+v", c)
	}
}

func TestParseContract_Invalid(t *testing.T) {
	for _, s := range []string{"8NT", "1X", "4HXXX", "0C", "NT", "3", ""} {
		if _, err := ParseContract(s, false); err == nil {
			t.Fatalf("expected error for contract %q", s)
		}
	}
}

func TestContractString_RoundTrip(t *testing.T) {
	for _, s := range []string{"2D", "4HX", "1NTXX", "3NT", "7CXX"} {
		c := mustContract(t, s, false)
		if c.String() != s {
			t.Fatalf("round trip of %q gave %q", s, c.String())
		}
	}
}

func TestContractEqual(t *testing.T) {
	plain := mustContract(t, "3NT", false)
	doubled := mustContract(t, "3NTX", true)
	other := mustContract(t, "4NT", false)
	if !plain.Equal(doubled) {
		t.Fatal("doubling should not affect contract identity")
	}
	if plain.Equal(other) {
		t.Fatal("3NT should not equal 4NT")
	}
}

func TestUndertricks_Undoubled(t *testing.T) {
	if got := mustContract(t, "1NT", false).Score(6); got != -50 {
		t.Fatalf("1NT-1 = %d, want -50", got)
	}
	if got := mustContract(t, "1NT", true).Score(4); got != -300 {
		t.Fatalf("1NT-3 vul = %d, want -300", got)
	}
}

func TestUndertricks_Doubled(t *testing.T) {
	if got := mustContract(t, "2CX", false).Score(7); got != -100 {
		t.Fatalf("2CX-1 = %d, want -100", got)
	}
	if got := mustContract(t, "4HX", false).Score(8); got != -300 {
		t.Fatalf("4HX-2 = %d, want -300", got)
	}
	if got := mustContract(t, "5DX", false).Score(6); got != -1100 {
		t.Fatalf("5DX-5 = %d, want -1100", got)
	}
	if got := mustContract(t, "5SX", true).Score(6); got != -1400 {
		t.Fatalf("5SX-5 vul = %d, want -1400", got)
	}
}

func TestUndertricks_Redoubled(t *testing.T) {
	if got := mustContract(t, "2CXX", false).Score(7); got != -200 {
		t.Fatalf("2CXX-1 = %d, want -200", got)
	}
	if got := mustContract(t, "4HXX", false).Score(8); got != -600 {
		t.Fatalf("4HXX-2 = %d, want -600", got)
	}
	if got := mustContract(t, "5DXX", false).Score(8); got != -1000 {
		t.Fatalf("5DXX-3 = %d, want -1000", got)
	}
	if got := mustContract(t, "5SXX", true).Score(7); got != -2200 {
		t.Fatalf("5SXX-4 vul = %d, want -2200", got)
	}
}

func TestOvertricks_Undoubled(t *testing.T) {
	if got := mustContract(t, "3C", false).overtricksScore(10); got != 20 {
		t.Fatalf("3C+1 overtricks = %d, want 20", got)
	}
	if got := mustContract(t, "4H", false).overtricksScore(12); got != 60 {
		t.Fatalf("4H+2 overtricks = %d, want 60", got)
	}
	if got := mustContract(t, "6NT", false).overtricksScore(13); got != 30 {
		t.Fatalf("6NT+1 overtricks = %d, want 30", got)
	}
}

func TestOvertricks_Doubled(t *testing.T) {
	if got := mustContract(t, "1HX", false).overtricksScore(10); got != 300 {
		t.Fatalf("1HX+3 overtricks = %d, want 300", got)
	}
	if got := mustContract(t, "3DX", true).overtricksScore(11); got != 400 {
		t.Fatalf("3DX+2 vul overtricks = %d, want 400", got)
	}
	if got := mustContract(t, "1HXX", false).overtricksScore(10); got != 600 {
		t.Fatalf("1HXX+3 overtricks = %d, want 600", got)
	}
	if got := mustContract(t, "3DXX", true).overtricksScore(11); got != 800 {
		t.Fatalf("3DXX+2 vul overtricks = %d, want 800", got)
	}
}

func TestContractScore_PartScoreAndGame(t *testing.T) {
	if got := mustContract(t, "2D", false).contractScore(); got != 90 {
		t.Fatalf("2D = %d, want 90", got)
	}
	if got := mustContract(t, "2H", false).contractScore(); got != 110 {
		t.Fatalf("2H = %d, want 110", got)
	}
	if got := mustContract(t, "1NT", false).contractScore(); got != 90 {
		t.Fatalf("1NT = %d, want 90", got)
	}
	if got := mustContract(t, "5C", false).contractScore(); got != 400 {
		t.Fatalf("5C = %d, want 400", got)
	}
	if got := mustContract(t, "4S", false).contractScore(); got != 420 {
		t.Fatalf("4S = %d, want 420", got)
	}
	if got := mustContract(t, "3NT", true).contractScore(); got != 600 {
		t.Fatalf("3NT vul = %d, want 600", got)
	}
}

func TestContractScore_Slams(t *testing.T) {
	if got := mustContract(t, "6C", false).contractScore(); got != 920 {
		t.Fatalf("6C = %d, want 920", got)
	}
	if got := mustContract(t, "6NT", true).contractScore(); got != 1440 {
		t.Fatalf("6NT vul = %d, want 1440", got)
	}
	if got := mustContract(t, "7NT", true).contractScore(); got != 2220 {
		t.Fatalf("7NT vul = %d, want 2220", got)
	}
	if got := mustContract(t, "7C", false).contractScore(); got != 1440 {
		t.Fatalf("7C = %d, want 1440", got)
	}
}

func TestScore_SpecCases(t *testing.T) {
	if got := mustContract(t, "2D", false).Score(7); got != -50 {
		t.Fatalf("2D with 7 tricks = %d, want -50", got)
	}
	if got := mustContract(t, "2HX", false).Score(10); got != 670 {
		t.Fatalf("2HX with 10 tricks = %d, want 670", got)
	}
	if got := mustContract(t, "1NTXX", true).Score(9); got != 1560 {
		t.Fatalf("1NTXX vul with 9 tricks = %d, want 1560", got)
	}
	if got := mustContract(t, "4HX", false).Score(8); got != -300 {
		t.Fatalf("4HX with 8 tricks = %d, want -300", got)
	}
}
