package bridge

import (
	"fmt"
	"strings"
)

// Contract is a bid contract together with its doubling state and the
// declaring side's vulnerability. Immutable once built.
type Contract struct {
	level   int
	strain  Strain
	doubles int
	vul     bool
}

// NewContract creates a Contract, validating level (1-7) and doubles (0-2).
func NewContract(level int, strain Strain, doubles int, vul bool) (Contract, error) {
	if level < 1 || level > 7 {
		return Contract{}, fmt.Errorf("invalid contract level %d", level)
	}
	if strain < StrainSpades || strain > NoTrump {
		return Contract{}, fmt.Errorf("invalid contract strain %d", strain)
	}
	if doubles < 0 || doubles > 2 {
		return Contract{}, fmt.Errorf("invalid contract doubles %d", doubles)
	}
	return Contract{level: level, strain: strain, doubles: doubles, vul: vul}, nil
}

// ParseContract parses the notation "<level><strain>[X[X]]", e.g. "2D",
// "4HX" or "1NTXX". vul is the declaring side's vulnerability, carried
// separately from the contract string.
func ParseContract(s string, vul bool) (Contract, error) {
	if len(s) < 2 {
		return Contract{}, fmt.Errorf("invalid contract %q", s)
	}
	body := strings.TrimRight(s, "X")
	doubles := len(s) - len(body)
	if len(body) < 2 {
		return Contract{}, fmt.Errorf("invalid contract %q", s)
	}
	level := int(body[0] - '0')
	strain, err := ParseStrain(body[1:])
	if err != nil {
		return Contract{}, fmt.Errorf("contract %q: %w", s, err)
	}
	return NewContract(level, strain, doubles, vul)
}

// Level returns the contract level, 1 through 7.
func (c Contract) Level() int { return c.level }

// Strain returns the contract strain.
func (c Contract) Strain() Strain { return c.strain }

// Doubles returns 0, 1 or 2 for undoubled, doubled and redoubled.
func (c Contract) Doubles() int { return c.doubles }

// Vulnerable reports the declaring side's vulnerability.
func (c Contract) Vulnerable() bool { return c.vul }

// Target returns the number of tricks needed to make the contract.
func (c Contract) Target() int { return c.level + 6 }

// Equal reports whether two contracts name the same bid. Doubling and
// vulnerability are not part of contract identity.
func (c Contract) Equal(other Contract) bool {
	return c.level == other.level && c.strain == other.strain
}

// String returns the contract notation, the inverse of ParseContract.
func (c Contract) String() string {
	return fmt.Sprintf("%d%s%s", c.level, c.strain, strings.Repeat("X", c.doubles))
}

func (c Contract) minor() bool {
	return c.strain == StrainClubs || c.strain == StrainDiamonds
}

// undertricksScore is the (negative) score when tricks fall short of the
// target. Undoubled undertricks cost 50 each non-vulnerable, 100
// vulnerable. Doubled non-vulnerable: 100 for one off, 300 for two, then
// 300 per trick; doubled vulnerable: 200 for the first and 300 for each
// further trick. Redoubled doubles the doubled penalty.
func (c Contract) undertricksScore(tricks int) int {
	down := tricks - c.Target()
	if c.doubles == 0 {
		if c.vul {
			return down * 100
		}
		return down * 50
	}
	if c.vul {
		return (down*300 + 100) * c.doubles
	}
	switch down {
	case -1:
		return -100 * c.doubles
	case -2:
		return -300 * c.doubles
	default:
		return ((down+1)*300 + 100) * c.doubles
	}
}

// overtricksScore is the score for tricks beyond the target, excluding the
// score for the contract itself. Undoubled overtricks score 20 in the
// minors and 30 otherwise; doubled overtricks score 100 non-vulnerable and
// 200 vulnerable, twice that redoubled.
func (c Contract) overtricksScore(tricks int) int {
	over := tricks - c.Target()
	if c.doubles != 0 {
		if c.vul {
			return over * 200 * c.doubles
		}
		return over * 100 * c.doubles
	}
	if c.minor() {
		return over * 20
	}
	return over * 30
}

// contractScore is the score for making the contract exactly: the trick
// score (20/level in the minors, 30/level in the majors, 30/level+10 in no
// trumps, doubled and redoubled multiplying by 2 and 4), the part-score or
// game bonus, any slam bonus, and the insult bonus for a made doubled
// contract.
func (c Contract) contractScore() int {
	var trickScore int
	switch {
	case c.minor():
		trickScore = 20 * c.level
	case c.strain == NoTrump:
		trickScore = 30*c.level + 10
	default:
		trickScore = 30 * c.level
	}
	trickScore <<= c.doubles

	score := trickScore
	switch {
	case trickScore < 100:
		score += 50
	case c.vul:
		score += 500
	default:
		score += 300
	}
	if c.level == 6 {
		if c.vul {
			score += 750
		} else {
			score += 500
		}
	}
	if c.level == 7 {
		if c.vul {
			score += 1500
		} else {
			score += 1000
		}
	}
	return score + 50*c.doubles
}

// Score returns the duplicate score for the declaring side given the
// number of tricks taken: the undertrick penalty when short of the target,
// otherwise the contract score plus overtricks.
func (c Contract) Score(tricks int) int {
	if tricks < c.Target() {
		return c.undertricksScore(tricks)
	}
	return c.contractScore() + c.overtricksScore(tricks)
}
